package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/dxball/internal/core"
	"github.com/vovakirdan/dxball/internal/game"
	"github.com/vovakirdan/dxball/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dxball/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Runtime holds the playfield and timing shared by every session.
	// Screen size comes from each client's PTY. A zero Seed gives every
	// connection its own time-based seed.
	Runtime core.RuntimeConfig

	HoldWindow     time.Duration
	HighScoreLimit int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Runtime:     core.DefaultConfig(),
		HoldWindow:  DefaultHoldWindow,
	}
}

// SSHServer wraps a Wish SSH server. All connections share one run history.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	history  game.History
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil history falls back to an in-memory one.
func NewSSHServer(cfg SSHServerConfig, history game.History, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dxball-ssh",
		})
	}
	if history == nil {
		history = game.NewMemoryHistory()
	}

	srv := &SSHServer{
		config:  cfg,
		history: history,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dxball", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game session and Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := s.logger.With("user", sshSession.User())
	session := game.New(game.Options{
		Width:          cfg.FieldW,
		Height:         cfg.FieldH,
		Seed:           cfg.Seed,
		History:        s.history,
		HighScoreLimit: s.config.HighScoreLimit,
		Logger:         logger,
	})

	model := NewModel(ModelOptions{
		Session:    session,
		Config:     cfg,
		HoldWindow: s.config.HoldWindow,
		Renderer:   bubbletea.MakeRenderer(sshSession),
		Logger:     logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		active := s.sessions.Add(1)
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", active,
		)
		next(sshSession)
		active = s.sessions.Add(-1)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", active,
		)
	}
}

// Serve starts the SSH server and blocks until ctx is cancelled or the
// listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and reports history statistics.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.logStats()
	return err
}

func (s *SSHServer) logStats() {
	if store, ok := s.history.(*storage.Store); ok {
		st, err := store.Stats()
		if err != nil {
			s.logger.Warn("could not read run stats", "error", err)
			return
		}
		s.logger.Info("run stats", "runs", st.Runs, "best", st.BestScore, "avg", st.AvgScore, "time", st.TotalTime)
		return
	}

	runs, err := s.history.Runs()
	if err != nil {
		s.logger.Warn("could not read runs", "error", err)
		return
	}
	best, _ := game.Best(runs)
	s.logger.Info("run stats", "runs", len(runs), "best", best.Score)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of connected clients.
func (s *SSHServer) ActiveSessions() int64 {
	return s.sessions.Load()
}
