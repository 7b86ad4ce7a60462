package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallview/internal/config"
	"wallview/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	root       string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	homeDir := filepath.Join(testsupport.BaseDir(cfg), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{
		"WALLVIEW_WALLPAPER_DIR", "WALLVIEW_LOG_DIR", "WALLVIEW_PLAYER_COMMAND",
		"WALLVIEW_SERVER_BIND", "WALLVIEW_LOG_LEVEL", "WALLVIEW_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	configPath := filepath.Join(homeDir, ".config", "wallview", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, root: cfg.Paths.WallpaperDir}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "[paths]\nwallpaper_dir = %q\nlog_dir = %q\n\n", cfg.Paths.WallpaperDir, cfg.Paths.LogDir)
	fmt.Fprintf(&b, "[player]\ncommand = %q\nargs = [", cfg.Player.Command)
	for i, arg := range cfg.Player.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", arg)
	}
	b.WriteString("]\n\n")
	fmt.Fprintf(&b, "[server]\nbind = %q\n\n", cfg.Server.Bind)
	fmt.Fprintf(&b, "[logging]\nformat = %q\nlevel = %q\n", cfg.Logging.Format, cfg.Logging.Level)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
