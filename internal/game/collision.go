package game

import (
	"math"

	"github.com/vovakirdan/dxball/internal/core"
)

// Contact describes a circle-vs-box overlap.
type Contact struct {
	Normal      core.Vec2 // Unit vector from the box surface toward the circle center
	Penetration float64   // Radius minus distance to the nearest box point
}

// CircleVsBox tests a circle against an axis-aligned box.
//
// The circle center is clamped into the box to find the nearest point; the
// shapes collide when the squared distance is at most radius². When the
// center lies inside the box the distance is ~0 and the normal is fixed to
// (0, 1). That tie-break is arbitrary and can produce odd-looking bounces.
func CircleVsBox(box core.Box, center core.Vec2, radius float64) (Contact, bool) {
	nearest := core.V(
		core.ClampF(center.X, box.Left(), box.Right()),
		core.ClampF(center.Y, box.Bottom(), box.Top()),
	)
	delta := center.Sub(nearest)
	d2 := delta.Dot(delta)
	if d2 > radius*radius {
		return Contact{}, false
	}

	d := math.Sqrt(d2)
	normal := core.V(0, 1)
	if d > 1e-4 {
		normal = delta.Scale(1 / d)
	}
	return Contact{Normal: normal, Penetration: radius - d}, true
}

// Reflect mirrors vel about normal and rescales the result to speed.
// Near-zero velocities are returned unchanged.
func Reflect(vel, normal core.Vec2, speed float64) core.Vec2 {
	sp := vel.Len()
	if sp < 1e-6 {
		return vel
	}
	dir := vel.Scale(1 / sp)
	r := dir.Sub(normal.Scale(2 * dir.Dot(normal)))
	return r.Normalize().Scale(speed)
}

// paddleBounce computes the post-hit velocity from where the ball struck the
// paddle. The y component is forced upward so the ball can never be driven
// back into the paddle.
func paddleBounce(ballX float64, p *Paddle, speed float64) core.Vec2 {
	rel := core.ClampF((ballX-p.Pos.X)/(p.W/2), -1, 1)
	v := core.V(rel, 1.2).Normalize().Scale(speed)
	v.Y = math.Abs(v.Y)
	return v
}
