package config_test

import (
	"testing"
	"time"

	"github.com/iho/gocredit/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ORACLE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.OracleURL != "" {
		t.Fatalf("expected oracle to be disabled by default, got %q", cfg.OracleURL)
	}

	if !cfg.AccrualEnabled || cfg.AccrualInterval != time.Hour || cfg.AccrualBatchSize != 100 {
		t.Fatalf("unexpected accrual defaults: enabled=%v interval=%s batch=%d", cfg.AccrualEnabled, cfg.AccrualInterval, cfg.AccrualBatchSize)
	}

	if cfg.DatabaseLockTimeout != 5*time.Second || cfg.DatabaseMaxRetries != 3 {
		t.Fatalf("unexpected lock defaults: timeout=%s retries=%d", cfg.DatabaseLockTimeout, cfg.DatabaseMaxRetries)
	}

	if cfg.RedisPoolSize != 10 || cfg.RedisTimeout != 3*time.Second {
		t.Fatalf("unexpected redis defaults: pool=%d timeout=%s", cfg.RedisPoolSize, cfg.RedisTimeout)
	}

	if cfg.PriceCacheTTL != 30*time.Second {
		t.Fatalf("expected price cache TTL 30s, got %s", cfg.PriceCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("ORACLE_URL", "http://prices.internal")
	t.Setenv("ORACLE_TIMEOUT", "2s")
	t.Setenv("ACCRUAL_ENABLED", "false")
	t.Setenv("ACCRUAL_INTERVAL", "15m")
	t.Setenv("ACCRUAL_BATCH_SIZE", "500")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.OracleURL != "http://prices.internal" || cfg.OracleTimeout != 2*time.Second {
		t.Fatalf("expected oracle settings to be set, got url=%s timeout=%s", cfg.OracleURL, cfg.OracleTimeout)
	}

	if cfg.AccrualEnabled || cfg.AccrualInterval != 15*time.Minute || cfg.AccrualBatchSize != 500 {
		t.Fatalf("expected accrual overrides, got enabled=%v interval=%s batch=%d", cfg.AccrualEnabled, cfg.AccrualInterval, cfg.AccrualBatchSize)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadInvalidBatchSize(t *testing.T) {
	t.Setenv("ACCRUAL_BATCH_SIZE", "many")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid batch size")
	}
}
