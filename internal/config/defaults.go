package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dxball.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  900,
			Height: 700,
		},
		Timing: TimingConfig{
			TickRate: 60,
			MaxStep:  0.03,
		},
		Seed: 0,
		Input: InputConfig{
			HoldWindow: 150 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "dxball",
		},
		History: HistoryConfig{
			Backend: BackendMemory,
			Limit:   10,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
