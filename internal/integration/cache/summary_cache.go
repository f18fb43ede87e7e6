// Package cache provides Redis-backed caching for computed summaries.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

const summaryKeyPattern = "summary:*"

// RedisSummaryCache implements adapter.SummaryCache on a Redis client.
type RedisSummaryCache struct {
	client redis.UniversalClient
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client redis.UniversalClient) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

// Get retrieves a cached payload. A miss returns (nil, nil).
func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, nil
}

// Set stores a payload under the key with the given TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// InvalidateAll removes every cached summary. It scans rather than using KEYS
// so a large keyspace does not block the server.
func (c *RedisSummaryCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, summaryKeyPattern, 0).Iterator()

	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", summaryKeyPattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

var _ adapter.SummaryCache = (*RedisSummaryCache)(nil)
