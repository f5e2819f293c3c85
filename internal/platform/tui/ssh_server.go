package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
)

// ClipResolver returns a fresh clip for a name. Each SSH session gets its
// own instance since clip animations hold per-size state.
type ClipResolver func(name string) (Clip, error)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.cliprect/host_key.
	HostKeyPath string

	// DefaultClip is previewed when the session names no clip.
	DefaultClip string

	// TickRate and Repeat apply to every session's preview.
	TickRate int
	Repeat   bool

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DefaultClip: "reveal",
		TickRate:    DefaultTickRate,
		Repeat:      true,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves clip previews.
// Clients pick a clip with the session command: ssh -p 23235 host iris
type SSHServer struct {
	config  SSHServerConfig
	resolve ClipResolver
	server  *ssh.Server
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, resolve ClipResolver, logger *log.Logger) (*SSHServer, error) {
	if resolve == nil {
		return nil, errors.New("tui: nil clip resolver")
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cliprect-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		resolve: resolve,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".cliprect", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

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

// clipName returns the clip requested by the session command.
func (s *SSHServer) clipName(sess ssh.Session) string {
	if cmd := sess.Command(); len(cmd) > 0 && cmd[0] != "" {
		return cmd[0]
	}
	return s.config.DefaultClip
}

// teaHandler creates a preview program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	name := s.clipName(sess)
	clip, err := s.resolve(name)
	if err == nil {
		var model PreviewModel
		model, err = NewPreviewModel(clip, PreviewOptions{
			TickRate: s.config.TickRate,
			Repeat:   s.config.Repeat,
			Width:    pty.Window.Width,
			Height:   pty.Window.Height,
			Logger:   s.logger,
		})
		if err == nil {
			s.logger.Debug("preview", "user", sess.User(), "clip", name)
			return model, []tea.ProgramOption{tea.WithAltScreen()}
		}
	}

	s.logger.Warn("cannot preview clip", "user", sess.User(), "clip", name, "error", err)
	fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
	sess.Exit(1) //nolint:errcheck // session is closing anyway
	return nil, nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "default_clip", s.config.DefaultClip)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
