package cache

import (
	"context"
	"time"
)

// NoopCache is used when no Redis URL is configured (local development).
// Every read is a miss and every write is discarded.
type NoopCache struct{}

// NewNoopCache creates a disabled cache.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (*NoopCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (*NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}

func (*NoopCache) Delete(ctx context.Context, keys ...string) {}

func (*NoopCache) DeletePattern(ctx context.Context, pattern string) {}
