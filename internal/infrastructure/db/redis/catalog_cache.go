package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cacheTTL   = time.Minute
	versionKey = "catalog:version"
)

// CatalogCache caches rendered catalog listing pages in Redis.
// Key format: catalog:<version>:<path?query>. Invalidation bumps the version
// counter, orphaning every old key; the TTL reclaims them.
// All failures degrade to cache misses; Redis being down never breaks a
// listing.
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

// Get returns the cached body for key, if present.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.client.Get(ctx, c.fullKey(ctx, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}
	return body, true
}

// Set stores the body for key until invalidation or TTL expiry.
func (c *CatalogCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.fullKey(ctx, key), value, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate discards every cached page by advancing the version counter.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func (c *CatalogCache) fullKey(ctx context.Context, key string) string {
	version, err := c.client.Get(ctx, versionKey).Result()
	if err != nil {
		version = "0"
	}
	return fmt.Sprintf("catalog:%s:%s", version, key)
}
