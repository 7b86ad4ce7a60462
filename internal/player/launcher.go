package player

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"wallview/internal/config"
	"wallview/internal/logging"
)

// execCommand is swapped in tests.
var execCommand = exec.Command

// Launcher opens a video path with some external program.
type Launcher interface {
	Launch(path string) error
	// Command names the program used for launching, or "" when launching is a no-op.
	Command() string
}

// LaunchError reports that the player process could not be spawned.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open video: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Option configures a launcher.
type Option func(*commandLauncher)

// WithLogger attaches a logger that records each spawn.
func WithLogger(logger *slog.Logger) Option {
	return func(l *commandLauncher) {
		if logger != nil {
			l.logger = logging.NewComponentLogger(logger, "player")
		}
	}
}

type commandLauncher struct {
	binary string
	args   []string
	logger *slog.Logger
}

// NewCommand returns a launcher that runs `binary args... <path>`.
func NewCommand(binary string, args ...string) Launcher {
	return newCommandLauncher(binary, args)
}

func newCommandLauncher(binary string, args []string, opts ...Option) *commandLauncher {
	l := &commandLauncher{
		binary: binary,
		args:   append([]string(nil), args...),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *commandLauncher) Command() string {
	return l.binary
}

func (l *commandLauncher) Launch(path string) error {
	argv := make([]string, 0, len(l.args)+1)
	argv = append(argv, l.args...)
	argv = append(argv, path)

	proc := execCommand(l.binary, argv...)
	if err := proc.Start(); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	l.logger.Info("video handed to player",
		logging.String(logging.FieldEventType, "video_opened"),
		logging.String("path", path),
		logging.String("command", l.binary),
		logging.Int("pid", proc.Process.Pid),
	)
	// Reap the player once it exits; the caller does not wait for it.
	go func() { _ = proc.Wait() }()
	return nil
}

// Default returns the launcher for the platform this binary was built for.
func Default(opts ...Option) Launcher {
	return platformLauncher(opts...)
}

// New returns the configured player override, falling back to Default.
func New(cfg *config.Config, opts ...Option) Launcher {
	if cfg != nil && cfg.HasPlayerOverride() {
		return newCommandLauncher(strings.TrimSpace(cfg.Player.Command), cfg.Player.Args, opts...)
	}
	return Default(opts...)
}

// OpenInDefaultPlayer asks the operating system to open path with its
// registered video player. It returns once the player process has been
// spawned; it does not verify that path exists.
func OpenInDefaultPlayer(path string) error {
	return Default().Launch(path)
}
