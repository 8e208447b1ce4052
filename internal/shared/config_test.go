package shared

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9100" {
		t.Fatalf("MetricsAddr: %s", cfg.MetricsAddr)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr: %s", cfg.RedisAddr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.RateLimitRPS != 50 {
		t.Fatalf("RateLimitRPS: %d", cfg.RateLimitRPS)
	}
	if cfg.SeedDemo {
		t.Fatal("SeedDemo should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("RATE_LIMIT_RPS", "not a number")
	t.Setenv("SEED_DEMO", "true")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr: %s", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.RateLimitRPS != 50 { // bad value falls back to the default
		t.Fatalf("RateLimitRPS: %d", cfg.RateLimitRPS)
	}
	if !cfg.SeedDemo {
		t.Fatal("SeedDemo should be on")
	}
}
