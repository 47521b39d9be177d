package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dxball/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the DX-Ball SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session. All users share the same
run history, which lives only as long as the server process.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dxball/host_key

Examples:
  dxball serve                           # Listen on :23234 with auto-generated key
  dxball serve --ssh :2222               # Listen on port 2222
  dxball serve --host-key ./my_host_key  # Use specific host key
  dxball serve --history sqlite          # Keep runs in SQLite

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, logCloser, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	history, histCloser, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer histCloser.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:        cfg.SSH.Address,
		HostKeyPath:    cfg.SSH.HostKey,
		IdleTimeout:    cfg.SSH.IdleTimeout,
		Runtime:        cfg.Runtime(0, 0),
		HoldWindow:     cfg.Input.HoldWindow,
		HighScoreLimit: cfg.History.Limit,
	}, history, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting DX-Ball SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
