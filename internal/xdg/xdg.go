// Package xdg resolves XDG Base Directory paths for the datsan client.
// Configuration (non-secret settings) lives under the XDG config home,
// state (file-backend keyring fallback) under the XDG state home. Both
// directories are created with private permissions because the state dir
// may hold an encrypted credential file.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "datsan"

// ConfigDir returns the config directory for the client, creating it with
// 0700 if missing. Falls back to ~/.config/datsan when XDG_CONFIG_HOME is
// unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// StateDir returns the state directory for the client, creating it with
// 0700 if missing. Falls back to ~/.local/state/datsan when XDG_STATE_HOME
// is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
