package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("POMOTIMER_CONFIG", "")
	t.Setenv("POMOTIMER_LANG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Alert.File)
	assert.Equal(t, 880.0, cfg.Alert.ToneHz)
	assert.Equal(t, 600*time.Millisecond, cfg.Alert.ToneDuration())
	assert.True(t, cfg.UI.Tray)
	assert.Equal(t, time.Second, cfg.Tick.Interval)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	body := "alert:\n  file: /tmp/bell.ogg\n  volume: -1.5\nui:\n  tray: false\n  language: es\ntick:\n  interval: 5ms\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("POMOTIMER_CONFIG", path)
	t.Setenv("POMOTIMER_ALERT_TONE_HZ", "440")
	t.Setenv("POMOTIMER_LANG", "pt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bell.ogg", cfg.Alert.File)
	assert.Equal(t, -1.5, cfg.Alert.Volume)
	assert.Equal(t, 440.0, cfg.Alert.ToneHz)
	assert.False(t, cfg.UI.Tray)
	assert.Equal(t, "pt", cfg.UI.Language)
	assert.Equal(t, minTickInterval, cfg.Tick.Interval)
}

func TestLoadFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, AppName), 0o755))
	body := "ui:\n  language: ru\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, AppName, "config.yaml"), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.UI.Language)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("POMOTIMER_CONFIG", filepath.Join(dir, "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
