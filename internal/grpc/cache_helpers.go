package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/godilite/ticket-scoring/pkg/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second
)

// readThrough is the shared state of FindAndCache for one handler set.
type readThrough struct {
	cache   Cacher
	group   singleflight.Group
	ttl     time.Duration
	logger  *zap.Logger
	metrics *CacheMetrics

	// fetchTimeout bounds a shared fetch, which outlives any single caller.
	fetchTimeout time.Duration
}

// sharedContext detaches ctx from its caller's cancellation so one waiter
// giving up does not fail the others, and bounds it by fetchTimeout instead.
func (rt *readThrough) sharedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := rt.fetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	if ttl+jitter <= 0 {
		return ttl
	}
	return ttl + jitter
}

func (rt *readThrough) store(key string, value any, event string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
	defer cancel()

	ttl := addTTLJitter(rt.ttl)
	if err := rt.cache.Set(ctx, key, value, ttl); err != nil {
		rt.logger.Warn("failed to update cache",
			zap.String("key", key),
			zap.String("event", event),
			zap.Error(err))
		return
	}
	rt.logger.Debug("cache updated",
		zap.String("key", key),
		zap.String("event", event),
		zap.Duration("ttl", ttl))
}

// refreshAhead recomputes a cached entry after a hit so the next reader sees
// fresh data. Concurrent hits on the same key share one refresh.
func refreshAhead[T any](rt *readThrough, key string, fn FetchFunc[T]) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = rt.group.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				rt.logger.Warn("background refresh failed",
					zap.String("key", key),
					zap.Error(err))
				return nil, err
			}
			rt.store(key, value, "refresh")
			return value, nil
		})
	}()
}

// FindAndCache implements read-through caching with singleflight and
// refresh-ahead logic. Errors are never cached. Without a cache, fn runs
// directly.
func FindAndCache[T any](ctx context.Context, rt *readThrough, key string, fn FetchFunc[T]) (T, error) {
	var zero T
	if rt == nil || rt.cache == nil {
		return fn(ctx)
	}

	var cached T
	err := rt.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		rt.metrics.observe(cacheHit)
		rt.logger.Debug("cache hit", zap.String("key", key))
		refreshAhead(rt, key, fn)
		return cached, nil

	case errors.Is(err, cache.ErrCacheMiss):
		rt.metrics.observe(cacheMiss)
		rt.logger.Debug("cache miss", zap.String("key", key))

	default:
		rt.metrics.observe(cacheError)
		rt.logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	ch := rt.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := rt.sharedContext(ctx)
		defer cancel()

		value, err := fn(fetchCtx)
		if err != nil {
			return nil, err
		}
		go rt.store(key, value, "miss")
		return value, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	if res.Err != nil {
		return zero, res.Err
	}

	value, ok := res.Val.(T)
	if !ok {
		rt.logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if res.Shared {
		rt.logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}
