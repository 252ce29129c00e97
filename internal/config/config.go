// Package config provides configuration management for the runner.
//
// Only ambient knobs live here. The instance lock name, window class,
// title and geometry are compiled-in constants (see internal/constants).
package config

import (
	"fmt"
)

// Config is the runner configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Console ConsoleConfig `mapstructure:"console"`
	Render  RenderConfig  `mapstructure:"render"`
	Window  WindowConfig  `mapstructure:"window"`
}

// LogConfig controls logging sinks.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File is the rotating log file path. "" disables file logging.
	File string `mapstructure:"file"`
	// MaxSizeMB is the size at which the log file rotates.
	MaxSizeMB int `mapstructure:"max_size_mb"`
}

// ConsoleConfig controls diagnostic console attachment.
type ConsoleConfig struct {
	Attach bool `mapstructure:"attach"`
}

// RenderConfig controls rendering backend switches.
type RenderConfig struct {
	// Impeller selects the Impeller backend with refresh-rate-aware
	// presentation. Set false to fall back to the engine default.
	Impeller bool `mapstructure:"impeller"`
}

// WindowConfig controls post-construction window decorations.
type WindowConfig struct {
	CustomFrame   bool `mapstructure:"custom_frame"`
	HideOnStartup bool `mapstructure:"hide_on_startup"`
}

// NewConfig returns a config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:     "info",
			File:      DefaultLogFile(),
			MaxSizeMB: 10,
		},
		Console: ConsoleConfig{
			Attach: true,
		},
		Render: RenderConfig{
			Impeller: true,
		},
		Window: WindowConfig{
			CustomFrame:   true,
			HideOnStartup: false,
		},
	}
}

// Validate checks config values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("invalid log.max_size_mb %d: must be >= 0", c.Log.MaxSizeMB)
	}
	return nil
}
