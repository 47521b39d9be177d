// dxball is a brick-breaking arcade game for the terminal.
//
// Usage:
//
//	dxball                   - Play in this terminal (same as play)
//	dxball play              - Play in this terminal
//	dxball serve             - Start SSH server for remote play
//	dxball config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dxball/config.yaml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--history <backend> - Run history backend: memory or sqlite
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dxball/internal/config"
	"github.com/vovakirdan/dxball/internal/game"
	"github.com/vovakirdan/dxball/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
	flagHistory  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dxball",
	Short: "DX-Ball - Break bricks in your terminal",
	Long: `DX-Ball is a brick-breaking arcade game played in the terminal,
locally or over SSH.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  dxball
  dxball play --seed 42
  dxball serve --ssh :2222
  dxball config --history sqlite`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = default seed)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagHistory, "history", config.BackendMemory, "Run history backend: memory or sqlite")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("history") {
		cfg.History.Backend = flagHistory
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Output goes to --log-file
// when set, otherwise to fallback. The returned closer releases the file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Log.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openHistory creates the configured run history. The closer is a no-op for
// the memory backend.
func openHistory(cfg config.Config) (game.History, io.Closer, error) {
	switch cfg.History.Backend {
	case config.BackendSQLite:
		store, err := storage.Open()
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return game.NewMemoryHistory(), io.NopCloser(nil), nil
	}
}
