package config_test

import (
	"testing"
	"time"

	"popin/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "popin.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.QuotaLimit != 2000 {
		t.Errorf("QuotaLimit = %d", cfg.QuotaLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POPIN_ADDR", ":9000")
	t.Setenv("POPIN_DB_PATH", "/tmp/other.db")
	t.Setenv("POPIN_CACHE_TTL", "2m")
	t.Setenv("POPIN_QUOTA_LIMIT", "50")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.QuotaLimit != 50 {
		t.Errorf("QuotaLimit = %d", cfg.QuotaLimit)
	}
}
