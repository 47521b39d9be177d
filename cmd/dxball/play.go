package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dxball/internal/game"
	"github.com/vovakirdan/dxball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start DX-Ball in the current terminal.

Controls:
  ←/→ A/D    - Move paddle (or move the mouse)
  Space      - Launch ball / select
  F/X        - Fire (with the shooting paddle)
  P          - Pause
  Esc/B      - Pause, back
  ↑/↓ W/S    - Navigate menus
  Enter      - Select
  Q          - Exit (main menu)
  Ctrl+C     - Quit

Examples:
  dxball play
  dxball play --seed 42
  dxball play --history sqlite --log-file dxball.log
  dxball play --config ./my-dxball.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns stdout, so logs go to --log-file or nowhere.
	logger, logCloser, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	history, histCloser, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer histCloser.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := cfg.Runtime(width, height)
	session := game.New(game.Options{
		Width:          rc.FieldW,
		Height:         rc.FieldH,
		Seed:           rc.Seed,
		History:        history,
		HighScoreLimit: cfg.History.Limit,
		Logger:         logger,
	})

	logger.Info("starting game", "seed", rc.Seed, "fps", rc.TickRate, "history", cfg.History.Backend)

	if err := tui.Run(tui.ModelOptions{
		Session:    session,
		Config:     rc,
		HoldWindow: cfg.Input.HoldWindow,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
