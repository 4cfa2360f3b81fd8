// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load layers a YAML file and BIZMATCH_ environment variables on top.
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"time"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects "json" or "console" output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the answer store backend: memory, redis or sqlite.
	Store string `koanf:"store"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`

	// SessionTTLSeconds expires idle sessions; 0 keeps them forever.
	SessionTTLSeconds int `koanf:"session_ttl_s"`

	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `koanf:"sqlite_path"`

	// CatalogPath overrides the built-in business catalog with a YAML file.
	CatalogPath string `koanf:"catalog_path"`

	// RecommendationLimit is the default number of recommendations returned.
	RecommendationLimit int `koanf:"recommendation_limit"`

	// MaxRecommendationLimit caps ?limit on the recommendations endpoint.
	MaxRecommendationLimit int `koanf:"max_recommendation_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		LogFormat:              "json",
		Addr:                   ":9080",
		Store:                  StoreMemory,
		RedisAddr:              "localhost:6379",
		SessionTTLSeconds:      86_400,
		SQLitePath:             "data/bizmatch.db",
		RecommendationLimit:    4,
		MaxRecommendationLimit: 10,
	}
}

// SessionTTL returns SessionTTLSeconds as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.Store != StoreMemory && c.Store != StoreRedis && c.Store != StoreSQLite:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	case c.Store == StoreRedis && c.RedisAddr == "":
		return fmt.Errorf("%w: redis_addr must not be empty", ErrInvalidConfig)
	case c.Store == StoreSQLite && c.SQLitePath == "":
		return fmt.Errorf("%w: sqlite_path must not be empty", ErrInvalidConfig)
	case c.SessionTTLSeconds < 0:
		return fmt.Errorf("%w: session_ttl_s must not be negative", ErrInvalidConfig)
	case c.RecommendationLimit < 1:
		return fmt.Errorf("%w: recommendation_limit must be positive", ErrInvalidConfig)
	case c.MaxRecommendationLimit < c.RecommendationLimit:
		return fmt.Errorf("%w: max_recommendation_limit must be at least recommendation_limit", ErrInvalidConfig)
	}
	return nil
}
