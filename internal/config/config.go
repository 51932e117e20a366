// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DBPath is the path to the SQLite database file.
	DBPath string

	// ImageDir is the directory where uploaded recipe images are stored.
	ImageDir string

	// JWTSecret signs login tokens. Override the default in any real deployment.
	JWTSecret string

	// TokenTTL is how long a login token stays valid.
	TokenTTL time.Duration
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:      getEnv("ADDR", ":5000"),
		DBPath:    getEnv("DB_PATH", "./data/cheff.db"),
		ImageDir:  getEnv("IMAGE_DIR", "./imagens"),
		JWTSecret: getEnv("JWT_SECRET", "cheff-dev-secret"),
		TokenTTL:  time.Hour,
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
