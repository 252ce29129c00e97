package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDirectory returns the per-user configuration directory.
//
// Locations:
//   - Windows: %APPDATA%\CyreneMusic
//   - Unix: ~/.config/cyrene-music
func ConfigDirectory() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "CyreneMusic")
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "cyrene-music")
		}
		return filepath.Join(homeDir, ".config", "cyrene-music")
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(configDir, "CyreneMusic")
	}
	return filepath.Join(configDir, "cyrene-music")
}

// LogDirectory returns the directory for rotating runner logs.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\CyreneMusic\logs
//   - Unix: ~/.config/cyrene-music/logs
func LogDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "cyrene-music-logs")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "CyreneMusic", "logs")
	}
	return filepath.Join(ConfigDirectory(), "logs")
}

// DefaultLogFile returns the default path of the rotating log file.
func DefaultLogFile() string {
	return filepath.Join(LogDirectory(), "runner.log")
}

// EnsureLogDirectory creates the directory holding path with owner-only
// permissions.
func EnsureLogDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0700)
}

// RuntimeDirectory returns a per-user, per-session directory for lock files.
// $XDG_RUNTIME_DIR is session scoped on systemd hosts; otherwise a
// uid-suffixed directory under the temp dir is used.
func RuntimeDirectory() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "cyrene-music")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("cyrene-music-%d", os.Getuid()))
}
