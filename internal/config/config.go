// Package config loads runtime settings from GLUCODASH_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix for every setting.
const Prefix = "GLUCODASH"

type Config struct {
	DBPath           string        `envconfig:"DB"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"console"`
	Seed             int64         `envconfig:"SEED" default:"0"`
	GlucoseDays      int           `envconfig:"GLUCOSE_DAYS" default:"90"`
	ChatDelay        time.Duration `envconfig:"CHAT_DELAY" default:"0s"`
	PlaybackInterval time.Duration `envconfig:"PLAYBACK_INTERVAL" default:"3s"`
}

func New() *Config {
	return &Config{}
}

// LoadFromEnv fills c from the environment and validates it.
func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process(Prefix, c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate rejects settings the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.GlucoseDays <= 0 {
		return fmt.Errorf("config: GLUCOSE_DAYS must be positive, got %d", c.GlucoseDays)
	}
	if c.ChatDelay < 0 {
		return fmt.Errorf("config: CHAT_DELAY must not be negative, got %s", c.ChatDelay)
	}
	if c.PlaybackInterval <= 0 {
		return fmt.Errorf("config: PLAYBACK_INTERVAL must be positive, got %s", c.PlaybackInterval)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// DatabasePath returns the configured sqlite path, defaulting to
// ~/.glucodash/glucodash.db.
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".glucodash", "glucodash.db")
}
