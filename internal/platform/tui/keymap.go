package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dxball/internal/core"
)

// KeyMap defines the key bindings for the game.
// A key may belong to several bindings; space both launches and confirms.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Up      key.Binding
	Down    key.Binding
	Exit    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Fire},
		{k.Pause, k.Cancel, k.Confirm},
		{k.Up, k.Down, k.Exit, k.Quit},
	}
}

// MenuHelp returns the bindings shown on menu screens.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel, k.Exit}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f/x", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "exit (menu)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Movement reports which direction a key moves the paddle: -1, +1 or 0.
func (k KeyMap) Movement(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, k.Left):
		return -1
	case key.Matches(msg, k.Right):
		return 1
	default:
		return 0
	}
}

// MapKeyToFrame records the edge intents bound to msg in frame.
// Returns true if the key was a force-quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		return true
	}

	bindings := []struct {
		binding key.Binding
		intent  core.Intent
	}{
		{k.Launch, core.IntentLaunch},
		{k.Fire, core.IntentFire},
		{k.Pause, core.IntentPauseToggle},
		{k.Confirm, core.IntentConfirm},
		{k.Cancel, core.IntentCancel},
		{k.Up, core.IntentNavigateUp},
		{k.Down, core.IntentNavigateDown},
		{k.Exit, core.IntentExit},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			frame.Set(b.intent)
		}
	}
	return false
}
