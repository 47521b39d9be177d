package game

import (
	"github.com/vovakirdan/dxball/internal/core"
)

// Mode is the current screen.
type Mode int

const (
	ModeMenu Mode = iota // Initial screen
	ModePlay
	ModePause
	ModeHelp
	ModeHighScores
	ModeWin
	ModeGameOver
)

// String returns a lowercase name for logs.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModePause:
		return "pause"
	case ModeHelp:
		return "help"
	case ModeHighScores:
		return "highscores"
	case ModeWin:
		return "win"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Terminal reports whether m ends a session.
func (m Mode) Terminal() bool {
	return m == ModeWin || m == ModeGameOver
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuResume MenuItem = iota
	MenuNewGame
	MenuHighScores
	MenuHelp
	MenuExit
)

// String returns the menu label.
func (i MenuItem) String() string {
	switch i {
	case MenuResume:
		return "Resume"
	case MenuNewGame:
		return "New Game"
	case MenuHighScores:
		return "High Scores"
	case MenuHelp:
		return "Help"
	case MenuExit:
		return "Exit"
	default:
		return "?"
	}
}

// Pause menu entries.
const (
	PauseResume = iota
	PauseExitToMenu
	pauseItemCount
)

// PauseItems are the pause menu labels in display order.
var PauseItems = []string{"Resume", "Exit to Menu"}

// MenuItems returns the visible main menu entries. Resume is listed only when
// a session can be resumed.
func (s *Session) MenuItems() []MenuItem {
	items := make([]MenuItem, 0, 5)
	if s.canResume {
		items = append(items, MenuResume)
	}
	return append(items, MenuNewGame, MenuHighScores, MenuHelp, MenuExit)
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.logger.Debug("mode change", "from", s.mode.String(), "to", m.String())
	s.mode = m
	if m == ModeMenu || m == ModeHighScores {
		s.scores.stale = true
	}
}

func (s *Session) pause() {
	s.canResume = true
	s.pauseIndex = PauseResume
	s.setMode(ModePause)
}

func (s *Session) confirmMenu() {
	items := s.MenuItems()
	if s.menuIndex < 0 || s.menuIndex >= len(items) {
		return
	}

	switch items[s.menuIndex] {
	case MenuResume:
		s.setMode(ModePlay)
	case MenuNewGame:
		s.NewGame()
	case MenuHighScores:
		s.setMode(ModeHighScores)
	case MenuHelp:
		s.setMode(ModeHelp)
	case MenuExit:
		s.exit = true
	}
	// The visible list changes length when Resume appears or vanishes.
	s.menuIndex = 0
}

// Apply dispatches one frame of host input to the session.
func (s *Session) Apply(frame *core.InputFrame) {
	frame.Dispatch(s)
}

// MoveLeftHeld sets the level-triggered left movement state.
func (s *Session) MoveLeftHeld(held bool) {
	s.leftHeld = held
}

// MoveRightHeld sets the level-triggered right movement state.
func (s *Session) MoveRightHeld(held bool) {
	s.rightHeld = held
}

// PointerX moves the paddle center to x, clamped to the playfield.
func (s *Session) PointerX(x float64) {
	if s.mode != ModePlay {
		return
	}
	s.paddle.Pos.X = x
	s.clampPaddle()
}

// Launch releases a stuck ball.
func (s *Session) Launch() {
	if s.mode != ModePlay || !s.ball.Stuck {
		return
	}
	s.ball.Stuck = false
	s.ball.Vel = core.V(0.2, 1).Normalize().Scale(s.ball.Speed)
}

// Fire spawns a bullet above the paddle while the shooting effect is active.
func (s *Session) Fire() {
	if s.mode != ModePlay || !s.paddle.Shooting {
		return
	}
	s.bullets = append(s.bullets, Bullet{
		Pos:   core.V(s.paddle.Pos.X, s.paddle.Pos.Y+s.paddle.H/2+BulletOffset),
		Vel:   core.V(0, BulletSpeed),
		W:     BulletWidth,
		H:     BulletHeight,
		Alive: true,
	})
}

// PauseToggle switches between play and pause.
func (s *Session) PauseToggle() {
	switch s.mode {
	case ModePlay:
		s.pause()
	case ModePause:
		s.setMode(ModePlay)
	}
}

// Confirm activates the highlighted entry or dismisses the current screen.
func (s *Session) Confirm() {
	switch s.mode {
	case ModeMenu:
		s.confirmMenu()
	case ModePause:
		if s.pauseIndex == PauseExitToMenu {
			s.ExitToMenu()
			return
		}
		s.setMode(ModePlay)
	case ModeHelp, ModeHighScores, ModeWin, ModeGameOver:
		s.setMode(ModeMenu)
	}
}

// Cancel pauses a running game, leaves the pause menu with the session kept
// resumable, and closes the help and high score screens.
func (s *Session) Cancel() {
	switch s.mode {
	case ModePlay:
		s.pause()
	case ModePause, ModeHelp, ModeHighScores:
		s.setMode(ModeMenu)
	}
}

// NavigateUp moves the highlight up, wrapping around.
func (s *Session) NavigateUp() {
	s.navigate(-1)
}

// NavigateDown moves the highlight down, wrapping around.
func (s *Session) NavigateDown() {
	s.navigate(1)
}

func (s *Session) navigate(delta int) {
	switch s.mode {
	case ModeMenu:
		n := len(s.MenuItems())
		s.menuIndex = ((s.menuIndex+delta)%n + n) % n
	case ModePause:
		s.pauseIndex = ((s.pauseIndex+delta)%pauseItemCount + pauseItemCount) % pauseItemCount
	}
}

// Exit requests program termination. Only the main menu honors it.
func (s *Session) Exit() {
	if s.mode == ModeMenu {
		s.exit = true
	}
}

// compile-time check
var _ core.IntentHandler = (*Session)(nil)
