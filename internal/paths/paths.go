// Package paths resolves configuration and export directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultExportDirName is the CWD-relative export directory used when no
// override is active.
const DefaultExportDirName = "daylog-out"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "DAYLOG_CONFIG_DIR"
	EnvExportDir = "DAYLOG_EXPORT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/daylog (fallback ~/.config/daylog)
// macOS:   ~/Library/Application Support/daylog
// Windows: %APPDATA%/daylog
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "daylog"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "daylog"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "daylog"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DAYLOG_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveExportDir returns the export directory following the precedence
// chain: flag > DAYLOG_EXPORT_DIR env > $(CWD)/daylog-out. The
// CWD-relative default keeps exports next to where the tool runs.
func ResolveExportDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvExportDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultExportDirName), nil
}
