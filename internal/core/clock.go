package core

import "time"

// Clock reports monotonic time in seconds.
type Clock interface {
	Now() float64
}

// SystemClock is a Clock backed by the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns seconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// FrameTimer turns successive clock readings into bounded frame deltas.
type FrameTimer struct {
	clock   Clock
	maxStep float64
	last    float64
	started bool
}

// NewFrameTimer creates a timer that never reports a delta above maxStep.
func NewFrameTimer(clock Clock, maxStep float64) *FrameTimer {
	return &FrameTimer{clock: clock, maxStep: maxStep}
}

// Next returns the clamped seconds since the previous call.
// The first call returns 0.
func (t *FrameTimer) Next() float64 {
	now := t.clock.Now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	dt := now - t.last
	t.last = now
	return ClampF(dt, 0, t.maxStep)
}
