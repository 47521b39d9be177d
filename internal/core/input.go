package core

// Intent represents an edge-triggered player intent, abstracted from physical
// key presses. Level-triggered movement is carried separately in InputFrame.
type Intent int

const (
	IntentNone         Intent = iota
	IntentLaunch              // Release a ball stuck to the paddle
	IntentFire                // Fire a bullet while the paddle can shoot
	IntentPauseToggle         // Toggle between play and pause
	IntentConfirm             // Activate the highlighted menu item
	IntentCancel              // Back out of the current screen
	IntentNavigateUp          // Move menu highlight up
	IntentNavigateDown        // Move menu highlight down
	IntentExit                // Leave the program from the main menu
	intentCount
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentLaunch:
		return "Launch"
	case IntentFire:
		return "Fire"
	case IntentPauseToggle:
		return "PauseToggle"
	case IntentConfirm:
		return "Confirm"
	case IntentCancel:
		return "Cancel"
	case IntentNavigateUp:
		return "NavigateUp"
	case IntentNavigateDown:
		return "NavigateDown"
	case IntentExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IntentHandler consumes player intents. The game session implements it.
type IntentHandler interface {
	MoveLeftHeld(held bool)
	MoveRightHeld(held bool)
	PointerX(x float64)
	Launch()
	Fire()
	PauseToggle()
	Confirm()
	Cancel()
	NavigateUp()
	NavigateDown()
	Exit()
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Intents maps edge-triggered intents to whether they fired this tick.
	Intents map[Intent]bool

	LeftHeld  bool
	RightHeld bool

	// Pointer is an absolute playfield x-coordinate, valid when HasPointer.
	Pointer    float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as triggered for this frame.
func (f *InputFrame) Set(i Intent) {
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// SetPointer records an absolute pointer position.
func (f *InputFrame) SetPointer(x float64) {
	f.Pointer = x
	f.HasPointer = true
}

// Clear resets edge intents and the pointer for the next frame.
// Held movement state persists until explicitly released.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
	f.HasPointer = false
}

// Dispatch delivers the frame to h: held state first, then the pointer,
// then edge intents in declaration order so replays are deterministic.
func (f InputFrame) Dispatch(h IntentHandler) {
	h.MoveLeftHeld(f.LeftHeld)
	h.MoveRightHeld(f.RightHeld)
	if f.HasPointer {
		h.PointerX(f.Pointer)
	}

	for i := IntentLaunch; i < intentCount; i++ {
		if !f.Has(i) {
			continue
		}
		switch i {
		case IntentLaunch:
			h.Launch()
		case IntentFire:
			h.Fire()
		case IntentPauseToggle:
			h.PauseToggle()
		case IntentConfirm:
			h.Confirm()
		case IntentCancel:
			h.Cancel()
		case IntentNavigateUp:
			h.NavigateUp()
		case IntentNavigateDown:
			h.NavigateDown()
		case IntentExit:
			h.Exit()
		}
	}
}
