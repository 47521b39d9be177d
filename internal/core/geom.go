// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// normalizeEpsilon is the length below which a vector is treated as zero.
const normalizeEpsilon = 1e-6

// Vec2 is an immutable 2D vector. All operations return new values.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v.
// Vectors shorter than 1e-6 normalize to (1, 0).
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l <= normalizeEpsilon {
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned rectangle described by its center and size.
type Box struct {
	Center Vec2
	W, H   float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.W/2
}

// Bottom returns the y-coordinate of the bottom edge (y grows upward).
func (b Box) Bottom() float64 {
	return b.Center.Y - b.H/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y + b.H/2
}

// Overlaps compares half-extent sums on each axis independently.
// Touching edges count as overlap.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) <= (b.W+o.W)/2 &&
		math.Abs(b.Center.Y-o.Center.Y) <= (b.H+o.H)/2
}

// Contains returns true if p lies inside or on the edge of the box.
func (b Box) Contains(p Vec2) bool {
	return math.Abs(p.X-b.Center.X) <= b.W/2 && math.Abs(p.Y-b.Center.Y) <= b.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
