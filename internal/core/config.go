package core

// RuntimeConfig contains host settings passed to a game session at start.
type RuntimeConfig struct {
	ScreenW  int     // Terminal width in characters
	ScreenH  int     // Terminal height in characters
	FieldW   float64 // Playfield width in world units
	FieldH   float64 // Playfield height in world units
	TickRate int     // Host ticks per second (default 60)
	MaxStep  float64 // Largest simulation step in seconds
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FieldW:   900,
		FieldH:   700,
		TickRate: 60,
		MaxStep:  0.03,
		Seed:     0, // 0 means use the default seed
	}
}
