// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the flash-buy API.
type Config struct {
	// APIBaseURL is the base URL of the API, including the version prefix.
	APIBaseURL string `env:"API_URL,default=http://localhost:8080/v1"`

	// HTTPTimeout bounds every individual request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=30s"`

	// RequestsPerSecond caps outgoing request throughput. Zero disables
	// the limiter.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND,default=0"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// Load reads .env when present, then decodes the environment.
func Load() (Config, error) {
	// Missing .env is fine; real deployments export variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
