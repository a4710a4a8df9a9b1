package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from TALEFORGE_* variables.
type Config struct {
	Addr        string        `env:"TALEFORGE_ADDR" envDefault:":5000"`
	CatalogPath string        `env:"TALEFORGE_CATALOG"`
	Seed        uint64        `env:"TALEFORGE_SEED" envDefault:"0"`
	SessionTTL  time.Duration `env:"TALEFORGE_SESSION_TTL" envDefault:"2h"`
	MaxSessions int           `env:"TALEFORGE_MAX_SESSIONS" envDefault:"10000"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: TALEFORGE_ADDR must not be empty")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config: TALEFORGE_SESSION_TTL must not be negative, got %s", c.SessionTTL)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("config: TALEFORGE_MAX_SESSIONS must not be negative, got %d", c.MaxSessions)
	}
	return nil
}
