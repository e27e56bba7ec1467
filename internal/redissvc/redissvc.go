// Package redissvc caches successful insight responses in Redis. The catalog
// itself never touches Redis; the cache only dedupes identical best-effort
// model calls, and the service runs unchanged without it.
package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "shopgenius:insights:"

// InsightCache is a short-TTL cache of insight responses.
type InsightCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewInsightCache wraps a connected Redis client.
func NewInsightCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *InsightCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsightCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached insights for a catalog fingerprint, if present.
// Cache errors are treated as misses.
func (c *InsightCache) Get(ctx context.Context, key string) ([]string, bool) {
	if key == "" {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("insight cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var insights []string
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		c.log.Warn("insight cache entry was not valid JSON", zap.Error(err))
		return nil, false
	}
	return insights, true
}

// Set stores insights under the fingerprint for the configured TTL. Write
// failures are logged and dropped.
func (c *InsightCache) Set(ctx context.Context, key string, insights []string) {
	if key == "" {
		return
	}
	data, err := json.Marshal(insights)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warn("insight cache write failed", zap.Error(err))
	}
}
