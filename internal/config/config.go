package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client and stub-server configuration.
type Config struct {
	// APIBase is the base URL of the inference service, including any
	// path prefix. Default matches the reference backend.
	APIBase string

	// Timeout bounds a single remote exchange. There is no per-call
	// cancellation beyond this; an issued call runs to completion.
	Timeout time.Duration

	// ListenAddr is the bind address for the local inference stub.
	ListenAddr string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBase:    "http://127.0.0.1:8000/api",
		Timeout:    30 * time.Second,
		ListenAddr: "127.0.0.1:8000",
	}
}

// FromEnv builds a Config from the environment, falling back to
// defaults for unset values. A .env file in the working directory is
// loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("DERMASSIST_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("DERMASSIST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("DERMASSIST_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("DERMASSIST_API_BASE: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("DERMASSIST_API_BASE: unsupported scheme %q", u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
