package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"wallview/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The wallpaper directory exists and is empty; file logging stays off.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.WallpaperDir = filepath.Join(base, "wallpapers")
	cfgVal.Paths.LogDir = ""
	cfgVal.Server.Bind = "127.0.0.1:0"
	if err := os.MkdirAll(cfgVal.Paths.WallpaperDir, 0o755); err != nil {
		t.Fatalf("mkdir wallpaper dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLogDir enables file logging under the config's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithPlayer sets a custom player command.
func WithPlayer(command string, args ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Player.Command = command
		b.cfg.Player.Args = args
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the platform's default opener is
// stubbed. Each stub records its arguments to <name>.args next to itself.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{defaultOpener()}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		for _, name := range names {
			target := filepath.Join(binDir, name)
			script := []byte("#!/bin/sh\nprintf '%s\\n' \"$@\" > \"" + target + ".args\"\nexit 0\n")
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// StubArgsPath returns the file a stub binary writes its arguments to.
func StubArgsPath(cfg *config.Config, name string) string {
	return filepath.Join(BaseDir(cfg), "bin", name+".args")
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.WallpaperDir)
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "cmd"
	default:
		return "xdg-open"
	}
}
