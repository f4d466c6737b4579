package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adventure.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// clearEnv makes sure the developer's shell does not leak into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ADVENTURE_ENVIRONMENT", "ADVENTURE_LOCALE", "ADVENTURE_LOG_FILE",
		"ADVENTURE_LOG_LEVEL", "ADVENTURE_COLOR", "ADVENTURE_BELL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.Bell)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[game]
locale = en
color = never
bell = true
wrap_width = 60

[log]
level = debug
file = /tmp/adventure.log
environment = production
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.Bell)
	assert.Equal(t, 60, cfg.WrapWidth)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/adventure.log", cfg.LogFile)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[game]\nbell = yes\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Bell)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[game]\ncolor = never\n[log]\nlevel = error\n")
	t.Setenv("ADVENTURE_COLOR", "ALWAYS")
	t.Setenv("ADVENTURE_LOG_LEVEL", "debug")
	t.Setenv("ADVENTURE_BELL", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.Bell)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
		assert.Error(t, err)
	})

	t.Run("bad color in file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, "[game]\ncolor = rainbow\n"))
		assert.ErrorIs(t, err, ErrInvalidColorMode)
	})

	t.Run("bad color in environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADVENTURE_COLOR", "sometimes")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalidColorMode)
	})

	t.Run("bad bell in environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADVENTURE_BELL", "loud")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}
