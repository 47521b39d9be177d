package core

import "testing"

type fakeClock struct {
	readings []float64
	i        int
}

func (c *fakeClock) Now() float64 {
	v := c.readings[c.i]
	if c.i < len(c.readings)-1 {
		c.i++
	}
	return v
}

func TestFrameTimer(t *testing.T) {
	clock := &fakeClock{readings: []float64{10, 10.016, 10.5, 10.5, 10.2}}
	timer := NewFrameTimer(clock, 0.03)

	expected := []float64{0, 0.016, 0.03, 0, 0}
	for i, want := range expected {
		got := timer.Next()
		if !approx(got, want) {
			t.Errorf("Next() #%d = %v, expected %v", i, got, want)
		}
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Errorf("Now() went backwards: %v then %v", a, b)
	}
}
