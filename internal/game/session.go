package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dxball/internal/core"
)

// Options configures a new Session. Zero fields take defaults.
type Options struct {
	Width  float64 // Playfield width, default 900
	Height float64 // Playfield height, default 700

	Seed   int64        // Seed for the default random source
	Random RandomSource // Overrides Seed when set

	History        History // Default is a fresh MemoryHistory
	HighScoreLimit int     // Entries in Snapshot.HighScores, default 10

	Logger *log.Logger // Default discards output
}

// Session owns all game state: entities, the random stream, the screen mode
// and the run history. It is not safe for concurrent use; the host drives it
// from a single loop.
type Session struct {
	width, height float64

	rng       RandomSource
	history   History
	hsLimit   int
	logger    *log.Logger
	mode      Mode
	canResume bool
	exit      bool

	menuIndex  int
	pauseIndex int

	bricks  []Brick
	perks   []Perk
	bullets []Bullet
	ball    Ball
	paddle  Paddle

	scores scoreCache

	lives     int
	score     int
	playTime  float64
	speedGain float64 // Baseline ball speed gain, kept across life loss
	leftHeld  bool
	rightHeld bool
}

// New creates a session sitting at the main menu.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Random == nil {
		opts.Random = NewRandom(opts.Seed)
	}
	if opts.History == nil {
		opts.History = NewMemoryHistory()
	}
	if opts.HighScoreLimit <= 0 {
		opts.HighScoreLimit = 10
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		width:   opts.Width,
		height:  opts.Height,
		rng:     opts.Random,
		history: opts.History,
		hsLimit: opts.HighScoreLimit,
		logger:  opts.Logger,
		mode:    ModeMenu,
		scores:  scoreCache{stale: true},
	}
	s.resetPlayState()
	return s
}

// resetPlayState restores score, lives, paddle and ball to their starting
// values and drops every perk and bullet in flight.
func (s *Session) resetPlayState() {
	s.score = 0
	s.lives = StartLives
	s.speedGain = 0
	s.playTime = 0
	s.perks = s.perks[:0]
	s.bullets = s.bullets[:0]

	s.paddle = Paddle{
		Pos:   core.V(s.width/2, PaddleY),
		W:     PaddleWidth,
		H:     PaddleHeight,
		Speed: PaddleSpeed,
	}
	s.ball = Ball{Radius: BallRadius, Speed: BallBaseSpeed}
	s.ResetBallOnPaddle()
}

// NewGame starts a fresh session: new bricks sized to the current playfield,
// full lives, zero score, and the ball on the paddle.
func (s *Session) NewGame() {
	s.resetPlayState()
	s.bricks = BuildBricks(s.width, s.height, BrickRows, BrickCols)
	s.canResume = true
	s.setMode(ModePlay)
}

// ExitToMenu abandons the current session without recording it.
func (s *Session) ExitToMenu() {
	s.bricks = s.bricks[:0]
	s.resetPlayState()
	s.canResume = false
	s.pauseIndex = 0
	s.setMode(ModeMenu)
}

// ResetBallOnPaddle parks the ball on the paddle with all ball effects
// cleared and speed set to the baseline plus accumulated global gain.
func (s *Session) ResetBallOnPaddle() {
	s.ball.Stuck = true
	s.ball.Through = false
	s.ball.ThroughTimer = 0
	s.ball.Fireball = false
	s.ball.FireballTimer = 0
	s.ball.Speed = BallBaseSpeed + s.speedGain
	s.ball.Pos = s.stuckBallPos()
	s.ball.Vel = core.V(0, 1)
}

func (s *Session) stuckBallPos() core.Vec2 {
	return core.V(s.paddle.Pos.X, s.paddle.Pos.Y+s.paddle.H/2+s.ball.Radius+1)
}

// LoseLife handles the ball dropping past the bottom edge. It does nothing
// outside play.
func (s *Session) LoseLife() {
	if s.mode != ModePlay {
		return
	}
	if s.lives > 0 {
		s.lives--
	}
	if s.lives <= 0 {
		s.lives = 0
		s.finish(ModeGameOver)
		return
	}

	s.logger.Debug("life lost", "lives", s.lives)
	s.paddle.Pos.X = s.width / 2
	s.paddle.W = PaddleWidth
	s.paddle.WidthTimer = 0
	s.paddle.Shooting = false
	s.paddle.ShootingTimer = 0
	s.ResetBallOnPaddle()
}

// finish ends the session in a terminal mode and records the run once.
func (s *Session) finish(m Mode) {
	s.setMode(m)
	s.canResume = false

	run := Run{Time: s.playTime, Score: s.score}
	if err := s.history.Append(run); err != nil {
		s.logger.Warn("could not record run", "error", err)
	}
	s.scores.stale = true
	s.logger.Info("session finished", "result", m.String(), "score", run.Score, "time", run.Time)
}

// Resize changes the playfield. Bricks keep their positions; only the paddle
// is re-clamped to the new bounds.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.clampPaddle()
	if s.ball.Stuck {
		s.ball.Pos = s.stuckBallPos()
	}
}

func (s *Session) clampPaddle() {
	half := s.paddle.W/2 + PaddleMargin
	s.paddle.Pos.X = core.ClampF(s.paddle.Pos.X, half, s.width-half)
}

// Advance runs one host frame: dt is clamped to [0, MaxStep], playtime
// accumulates while playing, and the simulation steps.
func (s *Session) Advance(dt float64) {
	dt = core.ClampF(dt, 0, MaxStep)
	if s.mode != ModePlay {
		return
	}
	s.playTime += dt
	s.Step(dt)
}

// Mode returns the current screen mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// CanResume reports whether the menu offers to resume a session.
func (s *Session) CanResume() bool {
	return s.canResume
}

// ExitRequested reports whether the player chose to leave the program.
func (s *Session) ExitRequested() bool {
	return s.exit
}

// Width returns the playfield width.
func (s *Session) Width() float64 {
	return s.width
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Best returns the best recorded run.
func (s *Session) Best() (Run, bool) {
	sc := s.rankedScores()
	return sc.best, sc.hasBest
}

// scoreCache holds the ranked history between refreshes. It goes stale when
// this session records a run and when the menu or high score screen opens.
type scoreCache struct {
	ranked  []Run
	best    Run
	hasBest bool
	stale   bool
}

func (s *Session) rankedScores() *scoreCache {
	if s.scores.stale {
		s.scores.stale = false
		runs, err := s.history.Runs()
		if err != nil {
			s.logger.Warn("could not read run history", "error", err)
		}
		s.scores.ranked = Ranked(runs, s.hsLimit)
		s.scores.best, s.scores.hasBest = Best(runs)
	}
	return &s.scores
}
