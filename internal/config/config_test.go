package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wallview/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if !filepath.IsAbs(cfg.Paths.WallpaperDir) {
		t.Fatalf("expected absolute wallpaper dir, got %q", cfg.Paths.WallpaperDir)
	}
	if !strings.HasSuffix(cfg.Paths.WallpaperDir, "431960") {
		t.Fatalf("expected Wallpaper Engine workshop dir, got %q", cfg.Paths.WallpaperDir)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected empty log file path, got %q", cfg.LogFilePath())
	}
	if cfg.HasPlayerOverride() {
		t.Fatal("expected no player override by default")
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected server bind: %q", cfg.Server.Bind)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("unexpected allowed origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wallview.toml")
	wallpapers := filepath.Join(tempDir, "wallpapers")
	logs := filepath.Join(tempDir, "logs")

	type payload struct {
		Paths struct {
			WallpaperDir string `toml:"wallpaper_dir"`
			LogDir       string `toml:"log_dir"`
		} `toml:"paths"`
		Player struct {
			Command string   `toml:"command"`
			Args    []string `toml:"args"`
		} `toml:"player"`
		Server struct {
			Bind           string   `toml:"bind"`
			AllowedOrigins []string `toml:"allowed_origins"`
		} `toml:"server"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.WallpaperDir = wallpapers
	custom.Paths.LogDir = logs
	custom.Player.Command = "  mpv  "
	custom.Player.Args = []string{"--loop"}
	custom.Server.Bind = "127.0.0.1:9000"
	custom.Server.AllowedOrigins = []string{"http://a.test/", "http://a.test", " ", "http://b.test"}
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.WallpaperDir != wallpapers {
		t.Fatalf("unexpected wallpaper dir: %q", cfg.Paths.WallpaperDir)
	}
	if cfg.LogFilePath() != filepath.Join(logs, "wallview.log") {
		t.Fatalf("unexpected log file path: %q", cfg.LogFilePath())
	}
	if cfg.Player.Command != "mpv" || len(cfg.Player.Args) != 1 || cfg.Player.Args[0] != "--loop" {
		t.Fatalf("unexpected player config: %+v", cfg.Player)
	}
	if !cfg.HasPlayerOverride() {
		t.Fatal("expected player override")
	}
	if cfg.Server.Bind != "127.0.0.1:9000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if got := strings.Join(cfg.Server.AllowedOrigins, ","); got != "http://a.test,http://b.test" {
		t.Fatalf("unexpected normalized origins: %q", got)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lower-cased logging values, got %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(logs); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to be created: %v", err)
	}
	if _, err := os.Stat(wallpapers); !os.IsNotExist(err) {
		t.Fatalf("wallpaper dir must not be created, stat err = %v", err)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wallview.toml")
	content := "[paths]\nwallpaper_dir = \"/from/file\"\n\n[player]\ncommand = \"vlc\"\n\n[logging]\nlevel = \"warn\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envRoot := filepath.Join(tempDir, "from-env")
	t.Setenv("WALLVIEW_WALLPAPER_DIR", envRoot)
	t.Setenv("WALLVIEW_PLAYER_COMMAND", "mpv")
	t.Setenv("WALLVIEW_SERVER_BIND", "127.0.0.1:0")
	t.Setenv("WALLVIEW_LOG_LEVEL", "debug")
	t.Setenv("WALLVIEW_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.WallpaperDir != envRoot {
		t.Fatalf("expected env wallpaper dir, got %q", cfg.Paths.WallpaperDir)
	}
	if cfg.Player.Command != "mpv" {
		t.Fatalf("expected env player command, got %q", cfg.Player.Command)
	}
	if cfg.Server.Bind != "127.0.0.1:0" {
		t.Fatalf("expected env bind, got %q", cfg.Server.Bind)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env logging values, got %+v", cfg.Logging)
	}
}

func TestEmptyEnvVarKeepsFileValue(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wallview.toml")
	if err := os.WriteFile(configPath, []byte("[player]\ncommand = \"vlc\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WALLVIEW_PLAYER_COMMAND", "   ")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Player.Command != "vlc" {
		t.Fatalf("expected file value to survive blank env, got %q", cfg.Player.Command)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wallview.toml")
	if err := os.WriteFile(configPath, []byte("[paths\nwallpaper_dir = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[player]") {
		t.Fatalf("sample config missing player section: %s", data)
	}

	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "missing wallpaper dir",
			mutate: func(c *config.Config) { c.Paths.WallpaperDir = "" },
			want:   "paths.wallpaper_dir",
		},
		{
			name:   "bind without port",
			mutate: func(c *config.Config) { c.Server.Bind = "localhost" },
			want:   "server.bind",
		},
		{
			name:   "bind with bad port",
			mutate: func(c *config.Config) { c.Server.Bind = "127.0.0.1:http" },
			want:   "server.bind",
		},
		{
			name:   "unknown log format",
			mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
		{
			name:   "unknown log level",
			mutate: func(c *config.Config) { c.Logging.Level = "trace" },
			want:   "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
