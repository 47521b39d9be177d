package game

import (
	"testing"

	"github.com/vovakirdan/dxball/internal/core"
)

func TestSnapshotLivingEntitiesOnly(t *testing.T) {
	alive := Brick{Pos: core.V(450, 400), W: 60, H: 22, Alive: true, HP: 2, Score: 50, Color: core.ColorRed}
	dead := Brick{Pos: core.V(100, 400), W: 60, H: 22}
	s, _ := newPlaySession(t, []Brick{alive, dead})
	s.perks = []Perk{
		{Pos: core.V(10, 300), Size: PerkSize, Type: PerkFireball, Alive: true},
		{Pos: core.V(20, 300), Size: PerkSize},
	}
	s.bullets = []Bullet{{Pos: core.V(30, 100), W: BulletWidth, H: BulletHeight, Alive: true}}

	snap := s.Snapshot()

	if snap.Mode != ModePlay || snap.Width != DefaultWidth || snap.Height != DefaultHeight {
		t.Errorf("mode/size = %v %vx%v", snap.Mode, snap.Width, snap.Height)
	}
	if len(snap.Bricks) != 1 || snap.Bricks[0].HP != 2 || snap.Bricks[0].Color != core.ColorRed {
		t.Errorf("bricks = %+v", snap.Bricks)
	}
	if len(snap.Perks) != 1 || snap.Perks[0].Type != PerkFireball {
		t.Errorf("perks = %+v", snap.Perks)
	}
	if len(snap.Bullets) != 1 {
		t.Errorf("bullets = %d, want 1", len(snap.Bullets))
	}
	if !snap.Ball.Stuck || snap.Paddle.W != PaddleWidth {
		t.Errorf("ball/paddle = %+v %+v", snap.Ball, snap.Paddle)
	}
}

func TestSnapshotTimers(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.applyPerk(PerkFireball)
	s.applyPerk(PerkShrinkPaddle)

	snap := s.Snapshot()

	want := Timers{Through: FireballDuration, Fireball: FireballDuration, Width: ShrinkDuration}
	if snap.Timers != want {
		t.Errorf("timers = %+v, want %+v", snap.Timers, want)
	}
}

func TestSnapshotHighScores(t *testing.T) {
	hist := NewMemoryHistory()
	for _, r := range []Run{{Score: 10, Time: 5}, {Score: 30, Time: 9}, {Score: 20, Time: 1}} {
		_ = hist.Append(r)
	}
	s := New(Options{History: hist, HighScoreLimit: 2})

	snap := s.Snapshot()

	if len(snap.HighScores) != 2 || snap.HighScores[0].Score != 30 || snap.HighScores[1].Score != 20 {
		t.Errorf("high scores = %+v", snap.HighScores)
	}
	if !snap.HasBest || snap.Best.Score != 30 {
		t.Errorf("best = %+v %v", snap.Best, snap.HasBest)
	}
	if len(snap.MenuItems) != 4 || snap.MenuIndex != 0 {
		t.Errorf("menu = %v at %d", snap.MenuItems, snap.MenuIndex)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	snap := s.Snapshot()

	snap.Bricks[0].HP = 99
	if s.bricks[0].HP == 99 {
		t.Error("snapshot shares brick memory with the session")
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	s, _ := newPlaySession(t, []Brick{farBrick()})
	s.Launch()
	a := s.Snapshot()
	s.Step(0.01)
	b := s.Snapshot()

	if a.Hash() == b.Hash() {
		t.Error("hash did not change after the ball moved")
	}
}

// countingHistory counts reads of the wrapped history.
type countingHistory struct {
	*MemoryHistory
	reads int
}

func (h *countingHistory) Runs() ([]Run, error) {
	h.reads++
	return h.MemoryHistory.Runs()
}

func TestSnapshotReadsHistoryOnlyWhenStale(t *testing.T) {
	hist := &countingHistory{MemoryHistory: NewMemoryHistory()}
	s := New(Options{Random: &scriptedRandom{}, History: hist})
	s.NewGame()
	s.bricks = []Brick{farBrick()}

	for range 120 {
		s.Advance(1.0 / 60)
		_ = s.Snapshot()
	}
	if hist.reads != 1 {
		t.Fatalf("history read %d times during play, want 1", hist.reads)
	}

	// A run recorded by another session sharing the history.
	_ = hist.Append(Run{Score: 999, Time: 3})

	s.lives = 1
	s.LoseLife()
	snap := s.Snapshot()
	if hist.reads != 2 {
		t.Errorf("history read %d times after game over, want 2", hist.reads)
	}
	if len(snap.HighScores) != 2 || snap.Best.Score != 999 {
		t.Errorf("high scores = %+v best = %+v", snap.HighScores, snap.Best)
	}

	s.Confirm()
	_ = s.Snapshot()
	_ = s.Snapshot()
	if hist.reads != 3 {
		t.Errorf("history read %d times after returning to the menu, want 3", hist.reads)
	}
}
