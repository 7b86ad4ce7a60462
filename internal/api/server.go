package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"wallview/internal/config"
	"wallview/internal/logging"
	"wallview/internal/player"
	"wallview/internal/project"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logging.NewComponentLogger(logger, "api-server")
		}
	}
}

// WithLauncher replaces the configured video launcher.
func WithLauncher(launcher player.Launcher) Option {
	return func(s *Server) {
		s.launcher = launcher
	}
}

// WithBind overrides the configured listen address.
func WithBind(bind string) Option {
	return func(s *Server) {
		if trimmed := strings.TrimSpace(bind); trimmed != "" {
			s.bind = trimmed
		}
	}
}

// Server runs the HTTP bridge.
type Server struct {
	bind     string
	logger   *slog.Logger
	launcher player.Launcher
	handler  http.Handler

	listener net.Listener
	server   *http.Server
}

// NewServer builds a server from config. Nothing listens until Start.
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("api server: config is required")
	}
	s := &Server{
		bind:   strings.TrimSpace(cfg.Server.Bind),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bind == "" {
		return nil, errors.New("api server: bind address is empty")
	}
	if s.launcher == nil {
		s.launcher = player.New(cfg, player.WithLogger(s.logger))
	}

	scanner := project.NewScanner(project.WithLogger(logging.NewComponentLogger(s.logger, "scanner")))
	h := NewHandler(cfg.Paths.WallpaperDir, scanner, s.launcher, s.logger)
	s.handler = withCORS(NewRouter(h), cfg.Server.AllowedOrigins)

	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start listens on the bind address and serves in the background. The server
// shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	err := s.server.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
