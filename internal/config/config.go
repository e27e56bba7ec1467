// Package config provides runtime configuration for the service.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration knobs for the HTTP server, Gemini access, the
// optional insight cache and the AI endpoint rate limiter.
type Config struct {
	HTTPAddr        string
	GeminiAPIKey    string
	GeminiModel     string
	RedisAddr       string
	RateLimitRPS    float64
	RateLimitBurst  int
	InsightCacheTTL time.Duration
	ShutdownTimeout time.Duration
}

// Load collects configuration from the environment with defaults. An empty
// GEMINI_API_KEY leaves the AI services in permanent-fallback mode; an empty
// REDIS_ADDR disables the insight cache.
func Load() Config {
	v := viper.New()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-3-flash-preview")
	v.SetDefault("redis_addr", "")
	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 3)
	v.SetDefault("insight_cache_ttl", 5*time.Minute)
	v.SetDefault("shutdown_timeout", 15*time.Second)
	v.AutomaticEnv()

	return Config{
		HTTPAddr:        v.GetString("http_addr"),
		GeminiAPIKey:    v.GetString("gemini_api_key"),
		GeminiModel:     v.GetString("gemini_model"),
		RedisAddr:       v.GetString("redis_addr"),
		RateLimitRPS:    v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:  v.GetInt("rate_limit_burst"),
		InsightCacheTTL: v.GetDuration("insight_cache_ttl"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
}
