package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DERMASSIST_API_BASE", "")
	t.Setenv("DERMASSIST_TIMEOUT", "")
	t.Setenv("DERMASSIST_LISTEN", "")

	cfg := FromEnv()
	if cfg.APIBase != "http://127.0.0.1:8000/api" {
		t.Errorf("APIBase = %q, want the default", cfg.APIBase)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DERMASSIST_API_BASE", "https://derm.example.com/api")
	t.Setenv("DERMASSIST_TIMEOUT", "5s")
	t.Setenv("DERMASSIST_LISTEN", "0.0.0.0:9000")

	cfg := FromEnv()
	if cfg.APIBase != "https://derm.example.com/api" {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestFromEnv_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("DERMASSIST_TIMEOUT", "soon")

	cfg := FromEnv()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want the 30s default", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"https base", func(c *Config) { c.APIBase = "https://derm.example.com" }, false},
		{"ftp scheme", func(c *Config) { c.APIBase = "ftp://derm.example.com" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
