// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Color modes for the guessed-letter row.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the environment-driven configuration. The only command-line
// option, hard mode, lives in main.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	Secret      string `env:"WORDLE_SECRET"`
	Daily       bool   `env:"WORDLE_DAILY" envDefault:"false"`
	DailySalt   string `env:"WORDLE_DAILY_SALT" envDefault:"wordle"`
	Color       string `env:"WORDLE_COLOR" envDefault:"auto"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalid, c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: WORDLE_COLOR %q", ErrInvalid, c.Color)
	}
	if c.Secret != "" && c.Daily {
		return fmt.Errorf("%w: WORDLE_SECRET and WORDLE_DAILY are exclusive", ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
