// Package config loads the console front-end settings.
// Sources, lowest to highest precedence: defaults, INI file, environment.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ColorMode controls whether output is styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var ErrInvalidColorMode = errors.New("invalid color mode")

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // empty means stderr

	Locale    string
	Color     ColorMode
	Bell      bool
	WrapWidth int // 0 means the terminal width
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    slog.LevelWarn,
		Locale:      "en",
		Color:       ColorAuto,
	}
}

// Load returns the defaults overridden by the INI file at path (if path is
// not empty) and then by ADVENTURE_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("cannot load config file %s: %w", path, err)
	}

	game := f.Section("game")
	if game.HasKey("locale") {
		c.Locale = game.Key("locale").String()
	}
	if game.HasKey("color") {
		mode, err := ParseColorMode(game.Key("color").String())
		if err != nil {
			return fmt.Errorf("%s [game] color: %w", path, err)
		}
		c.Color = mode
	}
	c.Bell = game.Key("bell").MustBool(c.Bell)
	c.WrapWidth = game.Key("wrap_width").MustInt(c.WrapWidth)

	log := f.Section("log")
	if log.HasKey("level") {
		c.LogLevel = ParseLogLevel(log.Key("level").String())
	}
	c.LogFile = log.Key("file").MustString(c.LogFile)
	c.Environment = log.Key("environment").MustString(c.Environment)

	return nil
}

func (c *Config) applyEnv() error {
	c.Environment = getEnv("ADVENTURE_ENVIRONMENT", c.Environment)
	c.Locale = getEnv("ADVENTURE_LOCALE", c.Locale)
	c.LogFile = getEnv("ADVENTURE_LOG_FILE", c.LogFile)

	if level := os.Getenv("ADVENTURE_LOG_LEVEL"); level != "" {
		c.LogLevel = ParseLogLevel(level)
	}

	if color := os.Getenv("ADVENTURE_COLOR"); color != "" {
		mode, err := ParseColorMode(color)
		if err != nil {
			return fmt.Errorf("ADVENTURE_COLOR: %w", err)
		}
		c.Color = mode
	}

	if bell := os.Getenv("ADVENTURE_BELL"); bell != "" {
		b, err := strconv.ParseBool(bell)
		if err != nil {
			return fmt.Errorf("ADVENTURE_BELL: %w", err)
		}
		c.Bell = b
	}

	return nil
}

// ParseColorMode accepts auto, always or never in any case
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColorMode, s)
	}
}

// ParseLogLevel maps a level name to a slog level, defaulting to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
