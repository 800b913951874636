package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH front end.
type SSHServerConfig struct {
	// Address is the host:port to listen on, e.g. ":23234".
	Address string

	// HostKeyPath is the server's private key. Empty means
	// ~/.gridsnake/host_key; a missing key is generated on first start.
	HostKeyPath string

	// IdleTimeout closes sessions that send nothing for this long.
	IdleTimeout time.Duration

	// Game is copied into every session. Screen size and seed are set per
	// session.
	Game core.RuntimeConfig
}

// DefaultSSHServerConfig returns the settings used by "gridsnake serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        core.DefaultConfig(),
	}
}

// SSHServer gives every SSH session its own game. Sessions share nothing
// but the configuration and the logger.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	active atomic.Int64
	total  atomic.Int64
}

// NewSSHServer prepares the server and its host key directory. It does not
// listen until Serve is called.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "gridsnake-ssh",
		})
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: logger}

	// Middleware runs last to first: log, require a terminal, then play.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			s.trackSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	return s, nil
}

// resolveHostKeyPath applies the default key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate home directory: %w", err)
		}
		path = filepath.Join(home, ".gridsnake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// sessionConfig returns the game settings for a new session with the
// given terminal size.
func (s *SSHServer) sessionConfig(width, height int) core.RuntimeConfig {
	cfg := s.config.Game
	cfg.ScreenW = width
	cfg.ScreenH = height
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano() + s.total.Load()
	}
	return cfg
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logger := s.logger.With("user", sess.User())
	m := NewModel(s.sessionConfig(pty.Window.Width, pty.Window.Height), logger)
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// trackSessions logs session start and end with live counters.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.total.Add(1)
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"session", n,
			"active", s.active.Add(1),
		)
		start := time.Now()
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"session", n,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ActiveSessions returns the number of sessions currently connected.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// Serve listens until ctx is cancelled, the listener fails or Shutdown is
// called, then shuts the server down, giving open sessions a short grace
// period.
func (s *SSHServer) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("tui: ssh listen: %w", err)
	}
	s.logger.Info("listening", "address", ln.Addr().String())

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A direct Shutdown ends Serve without touching ctx.
		defer stop()
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("tui: ssh serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", "active", s.ActiveSessions())
		err := s.Shutdown()
		// Serve may not have registered ln yet, in which case Shutdown
		// could not close it.
		_ = ln.Close()
		return err
	})
	return g.Wait()
}

// Shutdown stops accepting connections and waits up to shutdownGrace for
// sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: ssh shutdown: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
