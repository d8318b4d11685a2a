package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/ossia/engine/core"
)

// ApplicationConfig describes the host application. It can be built in
// code or loaded from a TOML file.
type ApplicationConfig struct {
	// The application name used for logging and the renderer, if
	// applicable.
	Name string `toml:"name"`
	// Viewport starting width.
	StartWidth uint32 `toml:"width"`
	// Viewport starting height.
	StartHeight uint32 `toml:"height"`
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Refresh rate of the built-in frame source in Hz.
	RefreshRate int `toml:"refresh_rate"`
	// Path of the persisted settings file. Empty disables persistence.
	SettingsPath string `toml:"settings_path"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "ossia",
		StartWidth:  1280,
		StartHeight: 720,
		LogLevel:    "debug",
		RefreshRate: 60,
	}
}

// LoadApplicationConfig reads a TOML config file, filling unset fields
// with defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := DefaultApplicationConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

func (c *ApplicationConfig) logLevel() core.LogLevel {
	switch c.LogLevel {
	case "info":
		return core.InfoLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.DebugLevel
	}
}
