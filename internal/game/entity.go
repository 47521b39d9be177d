// Package game implements the brick-breaking simulation: entities, collision,
// power-ups, the per-frame step and the screen state machine. Coordinates are
// y-up: the paddle sits near y=0 and bricks near the top of the playfield.
package game

import "github.com/vovakirdan/dxball/internal/core"

// Rule constants. These are fixed; only host settings are configurable.
const (
	MaxLives      = 5
	StartLives    = 3
	DefaultWidth  = 900.0
	DefaultHeight = 700.0

	PaddleWidth    = 120.0
	PaddleHeight   = 16.0
	PaddleY        = 48.0
	PaddleSpeed    = 630.0
	PaddleMargin   = 6.0
	PaddleMinWidth = 60.0
	PaddleMaxWidth = 320.0

	BallRadius    = 9.0
	BallBaseSpeed = 320.0
	BallGrowth    = 4.0 // speed gained per second of play
	GlobalGain    = 2.0 // baseline gain per second, survives life loss

	BulletSpeed  = 640.0
	BulletWidth  = 4.0
	BulletHeight = 10.0
	BulletOffset = 8.0
	BulletMargin = 20.0

	MaxStep = 0.03
)

// Brick is a destructible block. Position is its center.
type Brick struct {
	Pos   core.Vec2
	W, H  float64
	Alive bool
	HP    int
	Color core.Color
	Score int
}

// Box returns the brick's bounding box.
func (b *Brick) Box() core.Box {
	return core.Box{Center: b.Pos, W: b.W, H: b.H}
}

// hit removes one hit point and reports whether this hit destroyed the brick.
func (b *Brick) hit() bool {
	before := b.HP
	b.HP--
	if before > 0 && b.HP <= 0 {
		b.Alive = false
		return true
	}
	return false
}

// Paddle is the player's paddle. Position is its center.
type Paddle struct {
	Pos           core.Vec2
	W, H          float64
	Speed         float64
	WidthTimer    float64 // seconds until width returns to default
	Shooting      bool
	ShootingTimer float64
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.Box{Center: p.Pos, W: p.W, H: p.H}
}

// Ball is the single ball in play.
type Ball struct {
	Pos           core.Vec2
	Vel           core.Vec2
	Speed         float64
	Radius        float64
	Stuck         bool // Riding on the paddle until launched
	Through       bool
	ThroughTimer  float64
	Fireball      bool
	FireballTimer float64
}

// passesThrough reports whether the ball skips brick bounces.
func (b *Ball) passesThrough() bool {
	return b.Through || b.Fireball
}

// Perk is a falling power-up pickup. Position is its center.
type Perk struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Type  PerkType
	Alive bool
}

// Box returns the perk's square bounding box.
func (p *Perk) Box() core.Box {
	return core.Box{Center: p.Pos, W: p.Size, H: p.Size}
}

// Bullet is a projectile fired upward by a shooting paddle.
type Bullet struct {
	Pos   core.Vec2
	Vel   core.Vec2
	W, H  float64
	Alive bool
}
