// internal/config/config.go
//
// Environment-backed configuration for the binaries. Values come from the
// process environment (optionally seeded from .env by main).

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config covers both front ends; unused fields cost nothing.
type Config struct {
	// Mode selects the front end: "cli" (default) or "serve".
	Mode string `env:"MODE" envDefault:"cli"`

	// Port for the HTTP front end.
	Port string `env:"PORT" envDefault:"5175"`

	// ClientOrigin is the single origin allowed by CORS.
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// WordsFile points at a one-word-per-line list. WordsDB points at a
	// SQLite database with a words table; it wins over WordsFile. With
	// neither set, the embedded default list is used.
	WordsFile string `env:"WORDS_FILE"`
	WordsDB   string `env:"WORDS_DB"`

	WordLength  int `env:"WORD_LENGTH" envDefault:"5"`
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"6"`

	// Daily switches the CLI target from random to the deterministic
	// word of the day, derived from DailySalt.
	Daily     bool   `env:"DAILY"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
