package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	wallpaperEngineAppID = "431960"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultServerBind    = "127.0.0.1:7488"
)

var defaultAllowedOrigins = []string{"http://localhost:1420", "tauri://localhost"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WallpaperDir: defaultWallpaperDir(),
		},
		Server: Server{
			Bind:           defaultServerBind,
			AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// defaultWallpaperDir points at the Steam workshop folder for Wallpaper Engine.
func defaultWallpaperDir() string {
	workshop := filepath.Join("steamapps", "workshop", "content", wallpaperEngineAppID)
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("ProgramFiles(x86)")
		if base == "" {
			base = `C:\Program Files (x86)`
		}
		return filepath.Join(base, "Steam", workshop)
	case "darwin":
		return filepath.Join("~", "Library", "Application Support", "Steam", workshop)
	default:
		return filepath.Join("~", ".local", "share", "Steam", workshop)
	}
}
