package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisReportCache stores reports as JSON strings with a TTL.
// A RedisReportCache with a nil client behaves as an always-empty cache.
type RedisReportCache struct {
	client *redis.Client
}

var _ portsrepo.ReportCache = (*RedisReportCache)(nil)

// NewRedisClient connects to the server named by a redis:// URL and pings it.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewRedisReportCache wraps client as a ReportCache.
func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

// Get decodes the value stored under key into dest.
func (c *RedisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value %s: %w", key, err)
	}
	return true, nil
}

// Set stores value as JSON under key for ttl.
func (c *RedisReportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Close releases the underlying client.
func (c *RedisReportCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
