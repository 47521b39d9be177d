package game

import (
	"math/rand/v2"

	"github.com/vovakirdan/dxball/internal/core"
)

// PerkType enumerates power-up kinds.
type PerkType int

const (
	PerkExtraLife PerkType = iota
	PerkSpeedUp
	PerkWidePaddle
	PerkShrinkPaddle
	PerkThroughBall
	PerkFireball
	PerkInstantDeath
	PerkShootingPaddle
	perkTypeCount
)

// Perk tuning.
const (
	PerkSpawnChance = 0.22
	PerkSize        = 18.0
	PerkFallSpeed   = 150.0
	PerkDespawnY    = -30.0

	SpeedUpFactor = 1.18
	WideFactor    = 1.35
	ShrinkFactor  = 0.7

	WideDuration     = 14.0
	ShrinkDuration   = 12.0
	ThroughDuration  = 10.0
	FireballDuration = 8.0
	ShootingDuration = 12.0
)

// perkBins are cumulative upper bounds for the type roll. SHOOTING_PADDLE and
// INSTANT_DEATH appear in the opposite order of their declaration; the
// probabilities are tied to the bin position, not the enum value.
var perkBins = []struct {
	upper float64
	typ   PerkType
}{
	{0.18, PerkExtraLife},
	{0.36, PerkSpeedUp},
	{0.52, PerkWidePaddle},
	{0.66, PerkShrinkPaddle},
	{0.78, PerkThroughBall},
	{0.90, PerkFireball},
	{0.96, PerkShootingPaddle},
	{1.00, PerkInstantDeath},
}

// String returns the display name of the perk type.
func (p PerkType) String() string {
	switch p {
	case PerkExtraLife:
		return "Extra Life"
	case PerkSpeedUp:
		return "Speed Up"
	case PerkWidePaddle:
		return "Wide Paddle"
	case PerkShrinkPaddle:
		return "Shrink Paddle"
	case PerkThroughBall:
		return "Through Ball"
	case PerkFireball:
		return "Fireball"
	case PerkInstantDeath:
		return "Instant Death"
	case PerkShootingPaddle:
		return "Shooting Paddle"
	default:
		return "?"
	}
}

// Glyph returns the display character for a perk type.
func (p PerkType) Glyph() rune {
	switch p {
	case PerkExtraLife:
		return '♥'
	case PerkSpeedUp:
		return '+'
	case PerkWidePaddle:
		return 'W'
	case PerkShrinkPaddle:
		return 'S'
	case PerkThroughBall:
		return 'T'
	case PerkFireball:
		return 'F'
	case PerkInstantDeath:
		return '☠'
	case PerkShootingPaddle:
		return 'G'
	default:
		return '?'
	}
}

// Color returns the display color for a perk type.
func (p PerkType) Color() core.Color {
	switch p {
	case PerkExtraLife:
		return core.ColorGreen
	case PerkInstantDeath:
		return core.ColorRed
	case PerkFireball:
		return core.ColorOrange
	case PerkShrinkPaddle, PerkSpeedUp:
		return core.ColorYellow
	default:
		return core.ColorCyan
	}
}

// PerkTypeFor maps a uniform draw in [0, 1) onto a perk type.
func PerkTypeFor(r float64) PerkType {
	for _, bin := range perkBins {
		if r < bin.upper {
			return bin.typ
		}
	}
	return PerkInstantDeath
}

// RandomSource yields uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

// defaultSeed gives a fixed stream when no seed is given.
const defaultSeed = 1234567

// NewRandom returns a PCG-backed source for the given seed.
func NewRandom(seed int64) RandomSource {
	if seed == 0 {
		seed = defaultSeed
	}
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// maybeSpawnPerk rolls for a pickup at a destroyed brick's position.
// The type roll is only drawn when the spawn roll succeeds.
func (s *Session) maybeSpawnPerk(b *Brick) {
	if s.rng.Float64() >= PerkSpawnChance {
		return
	}
	s.perks = append(s.perks, Perk{
		Pos:   b.Pos,
		Vel:   core.V(0, -PerkFallSpeed),
		Size:  PerkSize,
		Type:  PerkTypeFor(s.rng.Float64()),
		Alive: true,
	})
}

// applyPerk applies a collected perk's effect.
func (s *Session) applyPerk(t PerkType) {
	s.logger.Debug("perk collected", "perk", t.String())

	switch t {
	case PerkExtraLife:
		s.lives = min(s.lives+1, MaxLives)
	case PerkSpeedUp:
		s.ball.Speed *= SpeedUpFactor
	case PerkWidePaddle:
		s.paddle.W = min(s.paddle.W*WideFactor, PaddleMaxWidth)
		s.paddle.WidthTimer = WideDuration
		s.clampPaddle()
	case PerkShrinkPaddle:
		s.paddle.W = max(s.paddle.W*ShrinkFactor, PaddleMinWidth)
		s.paddle.WidthTimer = ShrinkDuration
	case PerkThroughBall:
		s.ball.Through = true
		s.ball.ThroughTimer = ThroughDuration
	case PerkFireball:
		s.ball.Fireball = true
		s.ball.FireballTimer = FireballDuration
		s.ball.Through = true
		s.ball.ThroughTimer = max(s.ball.ThroughTimer, FireballDuration)
	case PerkInstantDeath:
		s.lives = 0
		s.finish(ModeGameOver)
	case PerkShootingPaddle:
		s.paddle.Shooting = true
		s.paddle.ShootingTimer = ShootingDuration
	}
}
