package config

import (
	"testing"
	"time"
)

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without AUTH_JWT_SECRET")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.TokenTTL != 168*time.Hour {
		t.Errorf("TokenTTL = %v, want 168h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.App.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.App.Port)
	}
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "24h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "7d")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unparseable AUTH_TOKEN_TTL")
	}
}
