package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oneohq/notify/core/preview"
)

// Compile-time check that PreviewCache satisfies the service contract.
var _ preview.Cache = (*PreviewCache)(nil)

const defaultKeyPrefix = "oneo:notify:"

// PreviewCache stores rendered notification previews in Redis. Keys are
// namespaced so the cache can share a Redis database with other subsystems.
type PreviewCache struct {
	client *redis.Client
	prefix string
}

// NewPreviewCache wraps an existing Redis client.
func NewPreviewCache(client *redis.Client) *PreviewCache {
	return &PreviewCache{client: client, prefix: defaultKeyPrefix}
}

// Get returns the cached preview HTML for key. A missing key is not an
// error: it reports found=false.
func (c *PreviewCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores the preview HTML under key with the given TTL.
func (c *PreviewCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
