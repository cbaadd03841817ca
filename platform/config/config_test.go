package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hangout")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AccessTokenTTL.Hours() != 24 {
		t.Fatalf("unexpected default token TTL: %v", cfg.AccessTokenTTL)
	}
	if cfg.CacheTTL.Minutes() != 15 {
		t.Fatalf("unexpected default cache TTL: %v", cfg.CacheTTL)
	}
	if cfg.DefaultLatitude == 0 || cfg.DefaultLongitude == 0 {
		t.Fatalf("default coordinates missing: %v, %v", cfg.DefaultLatitude, cfg.DefaultLongitude)
	}
}

func TestLoad_RejectsMalformedDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "24hours")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_ACCESS_TTL") {
		t.Fatalf("expected JWT_ACCESS_TTL parse error, got %v", err)
	}
}

func TestLoad_RejectsMalformedCoordinate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEFAULT_LATITUDE", "north")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DEFAULT_LATITUDE") {
		t.Fatalf("expected DEFAULT_LATITUDE parse error, got %v", err)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}
