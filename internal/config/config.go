// Package config provides YAML-based host configuration for dxball.
// Game rules are fixed; only the playfield, timing, input, logging, history
// backend and SSH server settings can be changed.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dxball/internal/core"
)

// Config contains all host settings.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Timing    TimingConfig    `yaml:"timing"`
	Seed      int64           `yaml:"seed"` // 0 selects the fixed default seed
	Input     InputConfig     `yaml:"input"`
	Log       LogConfig       `yaml:"log"`
	History   HistoryConfig   `yaml:"history"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// PlayfieldConfig is the world size in game units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig controls the host frame loop.
type TimingConfig struct {
	TickRate int     `yaml:"tick_rate"` // Frames per second
	MaxStep  float64 `yaml:"max_step"`  // Largest simulation step in seconds
}

// InputConfig tunes terminal input emulation.
type InputConfig struct {
	// HoldWindow is how long a movement key counts as held after its last
	// press. Terminals report presses and repeats, never releases.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Prefix string `yaml:"prefix"`
}

// HistoryConfig selects where completed runs are kept.
type HistoryConfig struct {
	Backend string `yaml:"backend"` // "memory" or "sqlite"
	Limit   int    `yaml:"limit"`   // Entries on the high score screen
}

// SSHConfig configures `dxball serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// History backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Validation errors.
var (
	ErrPlayfield = errors.New("config: playfield must be positive")
	ErrTiming    = errors.New("config: tick rate and max step must be positive")
	ErrBackend   = errors.New("config: unknown history backend")
	ErrLogLevel  = errors.New("config: unknown log level")
)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrPlayfield, c.Playfield.Width, c.Playfield.Height)
	}
	if c.Timing.TickRate <= 0 || c.Timing.MaxStep <= 0 {
		return fmt.Errorf("%w: tick_rate=%d max_step=%v", ErrTiming, c.Timing.TickRate, c.Timing.MaxStep)
	}
	switch c.History.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrBackend, c.History.Backend)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}
	return nil
}

// Runtime converts the config to the runtime settings handed to a session
// host running on a screenW×screenH terminal.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		FieldW:   c.Playfield.Width,
		FieldH:   c.Playfield.Height,
		TickRate: c.Timing.TickRate,
		MaxStep:  c.Timing.MaxStep,
		Seed:     c.Seed,
	}
}
