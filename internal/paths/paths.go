// Package paths resolves where reditus keeps its config.yaml and its
// program data.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appDirName is created under the user's config and data roots.
const appDirName = "reditus"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "REDITUS_CONFIG_DIR"
	EnvDataDir   = "REDITUS_DATA_DIR"
)

// Overridden in tests.
var (
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// DefaultConfigDir returns <user config dir>/reditus. On Linux that honors
// XDG_CONFIG_HOME.
func DefaultConfigDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultDataDir returns $XDG_DATA_HOME/reditus on Linux, falling back to
// ~/.local/share/reditus. Other platforms keep data beside the config.
func DefaultDataDir() (string, error) {
	if runtime.GOOS != "linux" {
		return DefaultConfigDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// ResolveConfigDir picks the config directory: flag, then
// REDITUS_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir picks the data directory: flag, then data_dir from
// config.yaml, then REDITUS_DATA_DIR, then DefaultDataDir. Program state is
// per user, so there is no working-directory default.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(DefaultDataDir, flag, configValue, os.Getenv(EnvDataDir))
}

// resolve returns the first non-empty candidate as an absolute path, or
// fallback's result when all are empty.
func resolve(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		p, err := expandHome(c)
		if err != nil {
			return "", err
		}
		return filepath.Abs(p)
	}
	return fallback()
}

// expandHome replaces a leading "~" with the home directory. config.yaml is
// not passed through a shell, so data_dir: ~/reditus arrives unexpanded.
func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
