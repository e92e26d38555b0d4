// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Remote CMS API
	APIBaseURL string
	APITimeout time.Duration

	// Valkey (sessions + page cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// SnapshotTTL is how long the in-memory article collection is served
	// before it is refetched from the API.
	SnapshotTTL time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		APIBaseURL: envOrDefault("API_BASE_URL", "https://test-fe.mysellerpintar.com/api"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	var err error
	if cfg.APITimeout, err = durationOrDefault("API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SnapshotTTL, err = durationOrDefault("SNAPSHOT_TTL", time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationOrDefault parses a duration environment variable like "30s".
func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
