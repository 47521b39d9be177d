package game

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/dxball/internal/core"
)

func TestWallBounce(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(5, 300)
	s.ball.Vel = core.V(-100, 50)

	s.Step(0.1)

	if s.ball.Pos.X < BallRadius {
		t.Errorf("ball x = %v, want >= %v", s.ball.Pos.X, BallRadius)
	}
	if s.ball.Vel.X <= 0 {
		t.Errorf("vx = %v, want positive", s.ball.Vel.X)
	}
}

func TestTopAndRightWalls(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(895, 695)
	s.ball.Vel = core.V(100, 100)

	s.Step(0.01)

	if s.ball.Pos.X != s.width-BallRadius || s.ball.Vel.X >= 0 {
		t.Errorf("right wall: pos %v vel %v", s.ball.Pos, s.ball.Vel)
	}
	if s.ball.Pos.Y != s.height-BallRadius || s.ball.Vel.Y >= 0 {
		t.Errorf("top wall: pos %v vel %v", s.ball.Pos, s.ball.Vel)
	}
}

func TestBallLostBelowBottom(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(50, 10)
	s.ball.Vel = core.V(0, -300)
	s.perks = append(s.perks, Perk{Pos: core.V(600, 300), Vel: core.V(0, -PerkFallSpeed), Size: PerkSize, Alive: true})

	s.Step(0.01)

	if s.Lives() != StartLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives(), StartLives-1)
	}
	if !s.ball.Stuck {
		t.Error("ball should be reset onto the paddle")
	}
	if s.perks[0].Pos.Y != 300 {
		t.Error("rest of the frame should be skipped after a lost life")
	}
}

func TestBrickClearScoring(t *testing.T) {
	brick := Brick{Pos: core.V(450, 400), W: 60, H: 22, Alive: true, HP: 2, Score: 70}
	s, _ := newPlaySession(t, []Brick{brick, farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(450, 400)
	s.ball.Vel = core.V(0, 1)
	s.ball.Through = true
	s.ball.ThroughTimer = 10

	s.Step(0.001)
	s.Step(0.001)

	if s.Score() != 140 {
		t.Errorf("score = %d, want 140", s.Score())
	}
	if s.bricks[0].Alive {
		t.Error("brick should be destroyed")
	}
	if s.bricks[0].HP != 0 {
		t.Errorf("hp = %d, want 0", s.bricks[0].HP)
	}
}

func TestBrickBounceWithoutThrough(t *testing.T) {
	brick := Brick{Pos: core.V(450, 400), W: 60, H: 22, Alive: true, HP: 2, Score: 50}
	s, _ := newPlaySession(t, []Brick{brick, farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(450, 385)
	s.ball.Vel = core.V(0, 320)

	s.Step(0.001)

	if s.ball.Vel.Y >= 0 {
		t.Errorf("vy = %v, want downward after hitting the brick's underside", s.ball.Vel.Y)
	}
	if !approx(s.ball.Vel.Len(), s.ball.Speed) {
		t.Errorf("speed %v does not match ball speed %v", s.ball.Vel.Len(), s.ball.Speed)
	}
	if c, hit := CircleVsBox(s.bricks[0].Box(), s.ball.Pos, s.ball.Radius); hit && c.Penetration > 1e-6 {
		t.Errorf("ball still inside the brick by %v", c.Penetration)
	}
}

func TestBallHitsEveryOverlappingBrick(t *testing.T) {
	left := Brick{Pos: core.V(440, 400), W: 20, H: 22, Alive: true, HP: 1, Score: 10}
	right := Brick{Pos: core.V(460, 400), W: 20, H: 22, Alive: true, HP: 1, Score: 20}
	s, _ := newPlaySession(t, []Brick{left, right, farBrick()})
	s.ball.Stuck = false
	s.ball.Pos = core.V(450, 383)
	s.ball.Vel = core.V(0, 100)
	s.ball.Through = true
	s.ball.ThroughTimer = 5

	s.Step(0.001)

	if s.bricks[0].Alive || s.bricks[1].Alive {
		t.Error("both overlapping bricks should be hit in the same frame")
	}
	if s.Score() != 30 {
		t.Errorf("score = %d, want 30", s.Score())
	}
}

func TestBulletFirstHitOnly(t *testing.T) {
	a := Brick{Pos: core.V(450, 300), W: 60, H: 22, Alive: true, HP: 1, Score: 10}
	b := Brick{Pos: core.V(452, 302), W: 60, H: 22, Alive: true, HP: 1, Score: 10}
	s, _ := newPlaySession(t, []Brick{a, b, farBrick()})
	s.bullets = append(s.bullets, Bullet{Pos: core.V(450, 295), Vel: core.V(0, BulletSpeed), W: BulletWidth, H: BulletHeight, Alive: true})

	s.Step(0.01)

	hits := 0
	for _, br := range s.bricks[:2] {
		if br.HP == 0 {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("bricks hit = %d, want 1", hits)
	}
	if len(s.bullets) != 0 {
		t.Error("bullet should be spent")
	}
}

func TestBulletDespawnsAboveTop(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.bullets = append(s.bullets, Bullet{Pos: core.V(20, 719), Vel: core.V(0, BulletSpeed), Alive: true})

	s.Step(0.01)

	if len(s.bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(s.bullets))
	}
}

func TestFire(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})

	s.Fire()
	if len(s.bullets) != 0 {
		t.Fatal("fired without the shooting effect")
	}

	s.applyPerk(PerkShootingPaddle)
	s.Fire()
	if len(s.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(s.bullets))
	}
	want := core.V(s.paddle.Pos.X, PaddleY+PaddleHeight/2+BulletOffset)
	if s.bullets[0].Pos != want || s.bullets[0].Vel.Y != BulletSpeed {
		t.Errorf("bullet = %+v", s.bullets[0])
	}
}

func TestWinDetection(t *testing.T) {
	dead := Brick{Pos: core.V(100, 600), W: 60, H: 22, HP: 0}
	last := Brick{Pos: core.V(450, 400), W: 60, H: 22, Alive: true, HP: 1, Score: 60}
	s, hist := newPlaySession(t, []Brick{dead, last})
	s.ball.Stuck = false
	s.ball.Pos = core.V(450, 385)
	s.ball.Vel = core.V(0, 320)

	s.Step(0.001)

	if s.Mode() != ModeWin {
		t.Fatalf("mode = %v, want win", s.Mode())
	}
	if s.CanResume() {
		t.Error("won session should not be resumable")
	}
	runs, _ := hist.Runs()
	if len(runs) != 1 || runs[0].Score != 60 {
		t.Errorf("runs = %+v, want one run scoring 60", runs)
	}

	s.Step(0.01)
	if runs, _ := hist.Runs(); len(runs) != 1 {
		t.Errorf("steps after a win recorded %d runs", len(runs))
	}
}

func TestPaddleClamp(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	r := rand.New(rand.NewPCG(7, 11))

	for i := range 2000 {
		s.MoveLeftHeld(r.IntN(2) == 0)
		s.MoveRightHeld(r.IntN(3) == 0)
		if i%97 == 0 {
			s.applyPerk(PerkWidePaddle)
		}
		if i%131 == 0 {
			s.applyPerk(PerkShrinkPaddle)
		}
		s.Step(r.Float64() * MaxStep)

		half := s.paddle.W/2 + PaddleMargin
		if s.paddle.Pos.X < half-1e-9 || s.paddle.Pos.X > s.width-half+1e-9 {
			t.Fatalf("step %d: paddle x = %v outside [%v, %v]", i, s.paddle.Pos.X, half, s.width-half)
		}
		if s.paddle.W < PaddleMinWidth || s.paddle.W > PaddleMaxWidth {
			t.Fatalf("step %d: paddle w = %v", i, s.paddle.W)
		}
	}
}

func TestPointerXClamps(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})

	s.PointerX(-500)
	if want := PaddleWidth/2 + PaddleMargin; s.paddle.Pos.X != want {
		t.Errorf("x = %v, want %v", s.paddle.Pos.X, want)
	}
	s.PointerX(300)
	if s.paddle.Pos.X != 300 {
		t.Errorf("x = %v, want 300", s.paddle.Pos.X)
	}
}

func TestBothDirectionsHeldCancel(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	x := s.paddle.Pos.X
	s.MoveLeftHeld(true)
	s.MoveRightHeld(true)

	s.Step(0.02)

	if s.paddle.Pos.X != x {
		t.Errorf("paddle moved to %v", s.paddle.Pos.X)
	}
}

func TestSpeedMonotonic(t *testing.T) {
	s := New(Options{Seed: 99})
	s.NewGame()
	s.Launch()

	prev := s.ball.Speed
	lives := s.Lives()
	for i := range 3000 {
		s.PointerX(s.ball.Pos.X + 15)
		s.Step(0.016)
		if s.Mode() != ModePlay {
			break
		}
		if s.ball.Stuck {
			s.Launch()
		}
		if s.Lives() == lives && s.ball.Speed < prev {
			t.Fatalf("step %d: speed dropped from %v to %v", i, prev, s.ball.Speed)
		}
		prev, lives = s.ball.Speed, s.Lives()
	}
}

func TestTimersExpire(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.applyPerk(PerkFireball)
	s.applyPerk(PerkWidePaddle)
	s.applyPerk(PerkShootingPaddle)

	for range 1000 {
		s.Step(MaxStep)
	}

	if s.ball.Through || s.ball.Fireball {
		t.Error("ball effects should expire")
	}
	if s.paddle.W != PaddleWidth || s.paddle.WidthTimer != 0 {
		t.Errorf("paddle width = %v timer = %v", s.paddle.W, s.paddle.WidthTimer)
	}
	if s.paddle.Shooting {
		t.Error("shooting should expire")
	}
}

func TestPerkPickup(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.perks = append(s.perks,
		Perk{Pos: core.V(s.paddle.Pos.X, 60), Vel: core.V(0, -PerkFallSpeed), Size: PerkSize, Type: PerkExtraLife, Alive: true},
		Perk{Pos: core.V(20, -29), Vel: core.V(0, -PerkFallSpeed), Size: PerkSize, Type: PerkExtraLife, Alive: true},
	)

	s.Step(0.01)

	if s.Lives() != StartLives+1 {
		t.Errorf("lives = %d, want %d", s.Lives(), StartLives+1)
	}
	if len(s.perks) != 0 {
		t.Errorf("perks = %d, want 0 (one collected, one despawned)", len(s.perks))
	}
}

func TestInstantDeathPickup(t *testing.T) {
	s, hist := newPlaySession(t, []Brick{farBrick()})
	s.perks = append(s.perks, Perk{Pos: core.V(s.paddle.Pos.X, 60), Vel: core.V(0, -PerkFallSpeed), Size: PerkSize, Type: PerkInstantDeath, Alive: true})

	s.Step(0.01)

	if s.Lives() != 0 || s.Mode() != ModeGameOver {
		t.Errorf("lives = %d mode = %v", s.Lives(), s.Mode())
	}
	if runs, _ := hist.Runs(); len(runs) != 1 {
		t.Errorf("runs = %d, want 1", len(runs))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New(Options{Seed: 2024})
		s.NewGame()
		for i := range 1500 {
			frame := core.NewInputFrame()
			switch {
			case i == 5:
				frame.Set(core.IntentLaunch)
			case i%40 < 20:
				frame.LeftHeld = true
			default:
				frame.RightHeld = true
			}
			if i%200 == 0 {
				frame.Set(core.IntentFire)
			}
			s.Apply(&frame)
			if s.ball.Stuck {
				s.Launch()
			}
			s.Advance(1.0 / 60)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.PlayTime != b.PlayTime {
		t.Errorf("runs differ: %d/%v vs %d/%v", a.Score, a.PlayTime, b.Score, b.PlayTime)
	}
}
