// Package paths provides XDG-compliant path resolution for navbar.
//
// Resolution order:
// 1. NAVBAR_HOME (portable root) → $NAVBAR_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/navbar
// 3. Platform defaults → ~/.config/navbar, ~/.local/state/navbar
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "navbar"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("NAVBAR_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("NAVBAR_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the directory holding the global navbar.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("NAVBAR_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the directory for runtime state such as log files.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("NAVBAR_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// DefaultLogFile is used when the file sink is enabled without a path.
func DefaultLogFile() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, appName+".log")
}

// Expand expands a leading ~ and environment variables in path.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
