package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agence/backend/internal/infrastructure/config"
)

// RedisReportCache stores serialized report pages keyed by their canonical
// query. The monthly aggregation scans every invoice in range, so repeated
// dashboard requests are served from Redis instead.
// Suitable for distributed deployments where multiple instances share the
// cache.
type RedisReportCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisReportCache creates a Redis-backed report cache and verifies the
// connection.
func NewRedisReportCache(cfg config.RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{
		client:    client,
		keyPrefix: "report:page:",
		ttl:       cfg.CacheTTL,
	}, nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = "report:page:"
	}
	return &RedisReportCache{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

// Get returns the cached payload for key, with a miss reported as ok=false
// rather than an error.
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read report cache: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload for key with the configured TTL.
func (c *RedisReportCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
