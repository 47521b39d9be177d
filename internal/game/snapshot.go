package game

import (
	"math"
	"slices"

	"github.com/vovakirdan/dxball/internal/core"
)

// BrickView is a living brick as seen by a renderer.
type BrickView struct {
	Pos   core.Vec2
	W, H  float64
	HP    int
	Color core.Color
	Score int
}

// PerkView is a falling perk as seen by a renderer.
type PerkView struct {
	Pos  core.Vec2
	Size float64
	Type PerkType
}

// BulletView is a bullet in flight.
type BulletView struct {
	Pos  core.Vec2
	W, H float64
}

// BallView describes the ball and its active effects.
type BallView struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Speed    float64
	Stuck    bool
	Through  bool
	Fireball bool
}

// PaddleView describes the paddle.
type PaddleView struct {
	Pos      core.Vec2
	W, H     float64
	Shooting bool
}

// Timers holds the remaining seconds of each timed effect. Zero means inactive.
type Timers struct {
	Through  float64
	Fireball float64
	Width    float64
	Shooting float64
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the session.
type Snapshot struct {
	Mode          Mode
	Width, Height float64

	Bricks  []BrickView
	Perks   []PerkView
	Bullets []BulletView
	Ball    BallView
	Paddle  PaddleView

	Score    int
	Lives    int
	PlayTime float64
	Timers   Timers

	MenuItems  []MenuItem
	MenuIndex  int
	PauseIndex int
	CanResume  bool

	HighScores []Run // Best first
	Best       Run
	HasBest    bool
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:   s.mode,
		Width:  s.width,
		Height: s.height,

		Ball: BallView{
			Pos:      s.ball.Pos,
			Vel:      s.ball.Vel,
			Radius:   s.ball.Radius,
			Speed:    s.ball.Speed,
			Stuck:    s.ball.Stuck,
			Through:  s.ball.Through,
			Fireball: s.ball.Fireball,
		},
		Paddle: PaddleView{
			Pos:      s.paddle.Pos,
			W:        s.paddle.W,
			H:        s.paddle.H,
			Shooting: s.paddle.Shooting,
		},

		Score:    s.score,
		Lives:    s.lives,
		PlayTime: s.playTime,

		MenuItems:  s.MenuItems(),
		MenuIndex:  s.menuIndex,
		PauseIndex: s.pauseIndex,
		CanResume:  s.canResume,
	}

	if s.ball.Through {
		snap.Timers.Through = s.ball.ThroughTimer
	}
	if s.ball.Fireball {
		snap.Timers.Fireball = s.ball.FireballTimer
	}
	snap.Timers.Width = s.paddle.WidthTimer
	if s.paddle.Shooting {
		snap.Timers.Shooting = s.paddle.ShootingTimer
	}

	for i := range s.bricks {
		b := &s.bricks[i]
		if b.Alive {
			snap.Bricks = append(snap.Bricks, BrickView{Pos: b.Pos, W: b.W, H: b.H, HP: b.HP, Color: b.Color, Score: b.Score})
		}
	}
	for i := range s.perks {
		p := &s.perks[i]
		if p.Alive {
			snap.Perks = append(snap.Perks, PerkView{Pos: p.Pos, Size: p.Size, Type: p.Type})
		}
	}
	for i := range s.bullets {
		b := &s.bullets[i]
		if b.Alive {
			snap.Bullets = append(snap.Bullets, BulletView{Pos: b.Pos, W: b.W, H: b.H})
		}
	}

	sc := s.rankedScores()
	snap.HighScores = slices.Clone(sc.ranked)
	snap.Best, snap.HasBest = sc.best, sc.hasBest

	return snap
}

// Hash returns a hash of the simulation state for determinism testing.
// Menu and history fields are not included.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Mode) //#nosec G115 -- hash computation
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation
	mixV := func(v core.Vec2) { mixF(v.X); mixF(v.Y) }

	mixI(snap.Score)
	mixI(snap.Lives)
	mixF(snap.PlayTime)

	mixV(snap.Ball.Pos)
	mixV(snap.Ball.Vel)
	mixF(snap.Ball.Speed)
	mixV(snap.Paddle.Pos)
	mixF(snap.Paddle.W)

	mixF(snap.Timers.Through)
	mixF(snap.Timers.Fireball)
	mixF(snap.Timers.Width)
	mixF(snap.Timers.Shooting)

	mixI(len(snap.Bricks))
	for _, b := range snap.Bricks {
		mixV(b.Pos)
		mixI(b.HP)
	}
	mixI(len(snap.Perks))
	for _, p := range snap.Perks {
		mixV(p.Pos)
		mixI(int(p.Type))
	}
	mixI(len(snap.Bullets))
	for _, b := range snap.Bullets {
		mixV(b.Pos)
	}
	return h
}
