// file: service/cache.go

package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient defines the contract for the shared cache client.
// This abstraction allows us to decouple the AccountService from a concrete
// Redis implementation, enabling easier testing and future flexibility.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// KeyCache is a time-bounded memo for external reads keyed by resource
// name. It backs the identity-provider discovery and signing-key lookups,
// which tolerate a stale value for the length of the TTL.
type KeyCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

type ttlCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// TTLCache is an in-process KeyCache safe for concurrent use. Expired
// entries are replaced lazily on the next Set; concurrent refreshes
// overwrite each other harmlessly.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]ttlCacheEntry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{entries: make(map[string]ttlCacheEntry)}
}

func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (c *TTLCache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = ttlCacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
}
