package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CYRENE_LOG_LEVEL.
const EnvPrefix = "CYRENE"

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v          *viper.Viper
	configFile string
	searchDirs []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:          viper.New(),
		searchDirs: []string{ConfigDirectory()},
	}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithSearchDirs replaces the directories searched for cyrene-runner.yaml.
func (l *Loader) WithSearchDirs(dirs ...string) *Loader {
	l.searchDirs = dirs
	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load loads configuration from all sources.
// Precedence (highest to lowest):
// 1. Bound CLI flags
// 2. Environment variables (CYRENE_*)
// 3. Config file (--config, or cyrene-runner.yaml in the user config dir)
// 4. Defaults
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("cyrene-runner")
		l.v.SetConfigType("yaml")
		for _, dir := range l.searchDirs {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) setDefaults() {
	d := NewConfig()

	l.v.SetDefault("log.level", d.Log.Level)
	l.v.SetDefault("log.file", d.Log.File)
	l.v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)

	l.v.SetDefault("console.attach", d.Console.Attach)

	l.v.SetDefault("render.impeller", d.Render.Impeller)

	l.v.SetDefault("window.custom_frame", d.Window.CustomFrame)
	l.v.SetDefault("window.hide_on_startup", d.Window.HideOnStartup)
}
