package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL)
	require.Equal(t, DefaultLocale, c.Locale)
	require.Equal(t, DefaultTimeoutSeconds, c.TimeoutSeconds)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{BaseURL: "https://datsan.example.com/api", Locale: "en", TimeoutSeconds: 5}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveUsesPrivatePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, Save(Config{BaseURL: "https://datsan.example.com/api"}))

	info, err := os.Stat(filepath.Join(dir, "datsan", "config.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadFillsEmptyFields(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, Save(Config{TimeoutSeconds: -1}))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL)
	require.Equal(t, DefaultLocale, c.Locale)
	require.Equal(t, DefaultTimeoutSeconds*time.Second, c.Timeout())
}
