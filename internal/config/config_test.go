package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.GeminiModel != "gemini-3-flash-preview" {
		t.Errorf("expected default model gemini-3-flash-preview, got %q", cfg.GeminiModel)
	}
	if cfg.RateLimitRPS != 1.0 {
		t.Errorf("expected default rps 1.0, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 3 {
		t.Errorf("expected default burst 3, got %d", cfg.RateLimitBurst)
	}
	if cfg.InsightCacheTTL != 5*time.Minute {
		t.Errorf("expected default cache ttl 5m, got %v", cfg.InsightCacheTTL)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected default shutdown timeout 15s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("INSIGHT_CACHE_TTL", "30s")

	cfg := Load()

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("expected model gemini-2.5-flash, got %q", cfg.GeminiModel)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected redis addr localhost:6379, got %q", cfg.RedisAddr)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("expected burst 10, got %d", cfg.RateLimitBurst)
	}
	if cfg.InsightCacheTTL != 30*time.Second {
		t.Errorf("expected cache ttl 30s, got %v", cfg.InsightCacheTTL)
	}
}
