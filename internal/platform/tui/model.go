package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dxball/internal/core"
	"github.com/vovakirdan/dxball/internal/game"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press. Terminals report repeats, not releases.
const DefaultHoldWindow = 150 * time.Millisecond

// ModelOptions configures a Model. Zero fields take defaults.
type ModelOptions struct {
	Session    *game.Session // Required
	Config     core.RuntimeConfig
	HoldWindow time.Duration
	Clock      core.Clock         // Default is a system clock
	Renderer   *lipgloss.Renderer // Default renders to stdout
	Logger     *log.Logger
}

// Model is the Bubble Tea model hosting a game session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	renderer   *Renderer
	keys       KeyMap
	help       help.Model
	clock      core.Clock
	timer      *core.FrameTimer
	inputFrame core.InputFrame
	config     core.RuntimeConfig
	logger     *log.Logger

	holdWindow float64 // Seconds
	leftUntil  float64
	rightUntil float64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = game.MaxStep
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    opts.Session,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		renderer:   NewRenderer(opts.Renderer, keys),
		keys:       keys,
		help:       h,
		clock:      opts.Clock,
		timer:      core.NewFrameTimer(opts.Clock, cfg.MaxStep),
		inputFrame: core.NewInputFrame(),
		config:     cfg,
		logger:     opts.Logger,
		holdWindow: opts.HoldWindow.Seconds(),
	}
}

// playRows reserves the bottom terminal row for the help line.
func playRows(termRows int) int {
	return core.Max(termRows-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records intents for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	now := m.clock.Now()
	switch m.keys.Movement(msg) {
	case -1:
		m.leftUntil = now + m.holdWindow
		m.rightUntil = 0
	case 1:
		m.rightUntil = now + m.holdWindow
		m.leftUntil = 0
	}

	return m, nil
}

// handleMouse maps pointer motion over the playfield to a paddle target.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cols := m.screen.Width()
	if cols <= 0 || m.session.Mode() != game.ModePlay {
		return m, nil
	}
	x := (float64(msg.X) + 0.5) / float64(cols) * m.session.Width()
	m.inputFrame.SetPointer(x)
	return m, nil
}

// handleResize processes window resize events. The world playfield keeps its
// size; only the projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	m.inputFrame.LeftHeld = now < m.leftUntil
	m.inputFrame.RightHeld = now < m.rightUntil

	m.session.Apply(&m.inputFrame)
	m.inputFrame.Clear()

	if m.session.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	m.session.Advance(m.timer.Next())

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	m.renderer.Draw(m.screen, &snap)

	bindings := m.keys.ShortHelp()
	if snap.Mode != game.ModePlay {
		bindings = m.keys.MenuHelp()
	}
	return m.renderer.RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(bindings)
}

// Quitting reports whether the model has asked the program to stop.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model options.
func Run(opts ModelOptions) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
