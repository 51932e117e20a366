package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Addr != ":5000" {
			t.Errorf("Addr = %q, want :5000", cfg.Addr)
		}
		if cfg.TokenTTL != time.Hour {
			t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
		}
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("ADDR", ":9999")
		t.Setenv("TOKEN_TTL", "30m")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Addr != ":9999" {
			t.Errorf("Addr = %q, want :9999", cfg.Addr)
		}
		if cfg.TokenTTL != 30*time.Minute {
			t.Errorf("TokenTTL = %v, want 30m", cfg.TokenTTL)
		}
	})

	t.Run("invalid TOKEN_TTL is rejected", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Error("Expected error for invalid TOKEN_TTL")
		}
	})
}
