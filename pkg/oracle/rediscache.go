package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache wraps an Oracle with a shared, TTL-bounded cache, giving
// multiple solver processes the benefit of each other's oracle calls.
type RedisCache struct {
	client *redis.Client
	next   Oracle
	ttl    time.Duration
}

// NewRedisCache returns a cache that falls through to next on a miss and
// caches each response for ttl (zero means the client default, no expiry).
func NewRedisCache(client *redis.Client, next Oracle, ttl time.Duration) (*RedisCache, error) {
	if client == nil {
		return nil, fmt.Errorf("oracle: redis cache requires a non-nil client")
	}
	if next == nil {
		return nil, fmt.Errorf("oracle: redis cache requires a wrapped oracle")
	}
	return &RedisCache{client: client, next: next, ttl: ttl}, nil
}

func (c *RedisCache) Request(ctx context.Context, pattern string, count int, used map[string]bool) ([]string, error) {
	key := "oracle:" + normalizePattern(pattern)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var words []string
		if json.Unmarshal([]byte(raw), &words) == nil {
			return filterUsed(words, used, count), nil
		}
	}

	words, err := c.next.Request(ctx, pattern, count, used)
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		if data, err := json.Marshal(words); err == nil {
			c.client.Set(ctx, key, data, c.ttl)
		}
	}
	return words, nil
}
