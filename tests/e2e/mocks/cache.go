package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/godilite/ticket-scoring/pkg/cache"
)

// TrackingCache is an in-memory cache that stores JSON like the Redis cache
// does and counts its calls.
type TrackingCache struct {
	mu       sync.Mutex
	getCalls int
	hits     int
	setCalls int
	data     map[string]cacheEntry
}

type cacheEntry struct {
	payload []byte
	expiry  time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{data: make(map[string]cacheEntry)}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.getCalls++
	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiry) {
		return cache.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(entry.payload, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setCalls++
	c.data[key] = cacheEntry{payload: payload, expiry: time.Now().Add(exp)}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

// Stats returns the number of Get calls, cache hits and Set calls so far.
func (c *TrackingCache) Stats() (gets, hits, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls, c.hits, c.setCalls
}
