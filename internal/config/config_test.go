package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dat", cfg.General.DataDir)
	assert.Equal(t, 36500, cfg.General.HorizonDays)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.False(t, Exists())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/home/me/money"
	cfg.General.Currency = "EUR"
	cfg.Appearance.Theme = "terminal"
	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRepairsBadHorizon(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "valvelet", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[general]\nhorizon_days = -5\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 36500, cfg.General.HorizonDays)
}
