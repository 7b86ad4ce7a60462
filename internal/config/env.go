package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that win over the config file.
type envOverrides struct {
	WallpaperDir  string `env:"WALLVIEW_WALLPAPER_DIR"`
	LogDir        string `env:"WALLVIEW_LOG_DIR"`
	PlayerCommand string `env:"WALLVIEW_PLAYER_COMMAND"`
	ServerBind    string `env:"WALLVIEW_SERVER_BIND"`
	LogLevel      string `env:"WALLVIEW_LOG_LEVEL"`
	LogFormat     string `env:"WALLVIEW_LOG_FORMAT"`
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	setIfPresent(&c.Paths.WallpaperDir, overrides.WallpaperDir)
	setIfPresent(&c.Paths.LogDir, overrides.LogDir)
	setIfPresent(&c.Player.Command, overrides.PlayerCommand)
	setIfPresent(&c.Server.Bind, overrides.ServerBind)
	setIfPresent(&c.Logging.Level, overrides.LogLevel)
	setIfPresent(&c.Logging.Format, overrides.LogFormat)
	return nil
}

func setIfPresent(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
