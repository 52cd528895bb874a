package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter backed by Redis, for deployments
// running more than one replica. Semantics match MemoryLimiter: INCR on a
// key that expires when the window rolls over.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
}

func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		cfg:    cfg.withDefaults(),
		prefix: "ratelimit",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	// Window index in the key makes every window a fresh counter, so a
	// missed EXPIRE can never leak budget across windows.
	windowIdx := time.Now().UnixNano() / int64(l.cfg.Window)
	key := fmt.Sprintf("%s:%s:%d", l.prefix, identity, windowIdx)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check for %s: %w", identity, err)
	}

	return incr.Val() <= int64(l.cfg.MaxRequests), nil
}
