// Package config loads and stores client configuration in the XDG config dir.
// Only non-secret settings live here; credentials go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/xdg"
)

// Defaults applied when no config file exists yet.
const (
	DefaultBaseURL        = "http://localhost:8000/api"
	DefaultLocale         = "vi"
	DefaultTimeoutSeconds = 10
)

// Config holds non-sensitive client settings.
type Config struct {
	// BaseURL is the root of the booking service API, without trailing slash.
	BaseURL string `json:"base_url"`
	// Locale selects the language for user-facing notifications ("vi" or "en").
	Locale string `json:"locale"`
	// TimeoutSeconds bounds every request to the auth service.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration, falling back to the
// default when the stored value is non-positive.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	c := Config{
		BaseURL:        DefaultBaseURL,
		Locale:         DefaultLocale,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
