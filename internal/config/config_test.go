package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_AppliesValues(t *testing.T) {
	path := writeConfig(t, `
fps: 30
notifications:
  desktop: false
  bell: false
  timeout: 500ms
log_file: /tmp/timemann.log
log_level: debug
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.FPS)
	assert.False(t, cfg.Notifications.Desktop)
	assert.False(t, cfg.Notifications.Bell)
	assert.Equal(t, 500*time.Millisecond, cfg.Notifications.Timeout)
	assert.Equal(t, "/tmp/timemann.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "notifications:\n  bell: false\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.FPS)
	assert.True(t, cfg.Notifications.Desktop)
	assert.False(t, cfg.Notifications.Bell)
}

func TestLoadFile_OutOfRangeFPSIgnored(t *testing.T) {
	for _, body := range []string{"fps: 0", "fps: -5", "fps: 10000"} {
		cfg, err := LoadFile(writeConfig(t, body))
		require.NoError(t, err)
		assert.Equal(t, 60.0, cfg.FPS, body)
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "fps: [1, 2"))
	assert.ErrorContains(t, err, "parse config yaml")
}

func TestLoadFile_BadLogLevel(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "log_level: loud"))
	assert.ErrorContains(t, err, "log_level")
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg, err := LoadFile(writeConfig(t, "log_file: ~/timemann.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "timemann.log"), cfg.LogFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "fps: 24\nlog_file: /tmp/from-file.log\n")
	t.Setenv(PathEnv, path)
	t.Setenv(LogEnv, "/tmp/from-env.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24.0, cfg.FPS)
	assert.Equal(t, "/tmp/from-env.log", cfg.LogFile)
}

func TestPath_Default(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "timemann", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, "config.yaml", filepath.Base(path))
}
