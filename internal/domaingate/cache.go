package domaingate

import (
	"context"
	"errors"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	platformredis "salaire/internal/platform/redis"
)

// SnapshotCache persists the raw denylist text so a feed outage does not
// leave every process degraded.
type SnapshotCache interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, text string, ttl time.Duration) error
}

const cacheKey = "domaingate:denylist"

// RedisCache shares the last fetched list across processes.
type RedisCache struct {
	client *platformredis.Client
}

func NewRedisCache(client *platformredis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context) (string, bool, error) {
	text, err := c.client.Get(ctx, cacheKey).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *RedisCache) Set(ctx context.Context, text string, ttl time.Duration) error {
	return c.client.Set(ctx, cacheKey, text, ttl).Err()
}

// MemoryCache is the in-process equivalent for tests and dev mode.
type MemoryCache struct {
	mu      sync.RWMutex
	text    string
	expires time.Time
}

func NewMemoryCache() *MemoryCache { return &MemoryCache{} }

func (c *MemoryCache) Get(_ context.Context) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.text == "" || time.Now().After(c.expires) {
		return "", false, nil
	}
	return c.text, true, nil
}

func (c *MemoryCache) Set(_ context.Context, text string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.expires = time.Now().Add(ttl)
	return nil
}
