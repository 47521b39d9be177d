package core

import (
	"reflect"
	"testing"
)

// recorder is an IntentHandler that logs every call in order.
type recorder struct {
	calls []string
}

func (r *recorder) MoveLeftHeld(held bool) {
	if held {
		r.calls = append(r.calls, "left")
	}
}

func (r *recorder) MoveRightHeld(held bool) {
	if held {
		r.calls = append(r.calls, "right")
	}
}

func (r *recorder) PointerX(float64) { r.calls = append(r.calls, "pointer") }
func (r *recorder) Launch()          { r.calls = append(r.calls, "launch") }
func (r *recorder) Fire()            { r.calls = append(r.calls, "fire") }
func (r *recorder) PauseToggle()     { r.calls = append(r.calls, "pause") }
func (r *recorder) Confirm()         { r.calls = append(r.calls, "confirm") }
func (r *recorder) Cancel()          { r.calls = append(r.calls, "cancel") }
func (r *recorder) NavigateUp()      { r.calls = append(r.calls, "up") }
func (r *recorder) NavigateDown()    { r.calls = append(r.calls, "down") }
func (r *recorder) Exit()            { r.calls = append(r.calls, "exit") }

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(IntentLaunch) {
		t.Error("New frame should have no intents")
	}

	f.Set(IntentLaunch)
	f.SetPointer(120)
	f.LeftHeld = true
	if !f.Has(IntentLaunch) || !f.HasPointer {
		t.Error("Set intent and pointer should be visible")
	}

	f.Clear()
	if f.Has(IntentLaunch) || f.HasPointer {
		t.Error("Clear should reset edge intents and pointer")
	}
	if !f.LeftHeld {
		t.Error("Clear should keep held movement state")
	}

	var zero InputFrame
	if zero.Has(IntentFire) {
		t.Error("Zero frame should report no intents")
	}
	zero.Set(IntentFire)
	if !zero.Has(IntentFire) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameDispatchOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(IntentExit)
	f.Set(IntentFire)
	f.Set(IntentLaunch)
	f.RightHeld = true
	f.SetPointer(10)

	r := &recorder{}
	f.Dispatch(r)

	expected := []string{"right", "pointer", "launch", "fire", "exit"}
	if !reflect.DeepEqual(r.calls, expected) {
		t.Errorf("Dispatch order = %v, expected %v", r.calls, expected)
	}
}

func TestIntentString(t *testing.T) {
	if IntentPauseToggle.String() != "PauseToggle" {
		t.Errorf("String() = %q", IntentPauseToggle.String())
	}
	if Intent(99).String() != "Unknown" {
		t.Errorf("Unknown intent String() = %q", Intent(99).String())
	}
}
