package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache stores fetched pages for a short while.
type PageCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, body string, ttl time.Duration) error
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "courtiq:page:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	body, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return body, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, body string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, body, ttl).Err()
}

// Cached serves pages from a PageCache before asking the wrapped Fetcher.
// Cache errors are logged and otherwise ignored.
type Cached struct {
	next  Fetcher
	cache PageCache
	ttl   time.Duration
}

func NewCached(next Fetcher, cache PageCache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl}
}

func (c *Cached) Fetch(ctx context.Context, url, referer string) (string, error) {
	key := cacheKey(url)

	if body, ok, err := c.cache.Get(ctx, key); err != nil {
		slog.Warn("page cache read failed", "url", url, "err", err)
	} else if ok {
		return body, nil
	}

	body, err := c.next.Fetch(ctx, url, referer)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
		slog.Warn("page cache write failed", "url", url, "err", err)
	}
	return body, nil
}

func cacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}
