package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the shared-cache backend for multi-instance deployments. It
// implements the same Cache contract as MemoryCache; Redis handles TTL
// expiry itself, so no sweep is needed. Any Redis error degrades to a miss.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, string, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis cache read failed, treating as miss",
				"key", key,
				"error", err)
		}
		return nil, SourceRedis, false
	}
	return value, SourceRedis, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("redis cache write failed",
			"key", key,
			"error", err)
	}
}

// Ping verifies connectivity at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
