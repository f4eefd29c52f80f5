// Package resolve implements the single-flight name resolution cache.
package resolve

import (
	"context"
	"sync"

	"go.trai.ch/idgov/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Resolver maps a key to its backend value. It may fail; a failure is
// propagated to every caller of the flight and is never memoized.
type Resolver[V any] func(ctx context.Context, key string) (V, error)

// Cache memoizes successful resolutions for its own lifetime and guarantees
// at most one concurrent resolver flight per key: callers racing on the same
// key all attach to the one outstanding flight and share its outcome.
//
// There is no expiry. A cache lives as long as its owning tenant session;
// Forget exists so the session can drop single mappings when the underlying
// collection is known to have changed.
type Cache[V any] struct {
	resolver Resolver[V]
	metrics  ports.Metrics

	group singleflight.Group

	mu       sync.RWMutex
	resolved map[string]V
}

// New creates a cache around the given resolver. metrics may be nil.
func New[V any](resolver Resolver[V], metrics ports.Metrics) *Cache[V] {
	return &Cache[V]{
		resolver: resolver,
		metrics:  metrics,
		resolved: make(map[string]V),
	}
}

// Get returns the value for key, resolving it on first use. Concurrent
// callers for an unresolved key share one resolver invocation; every one of
// them receives the identical value or the identical error. A failed key is
// eligible for a fresh attempt on the next Get.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, error) {
	c.mu.RLock()
	v, ok := c.resolved[key]
	c.mu.RUnlock()
	if ok {
		if c.metrics != nil {
			c.metrics.ResolveHit()
		}
		return v, nil
	}

	// The flight runs with the context of the caller that opened it; callers
	// that attach later share its result regardless of their own contexts.
	res, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: a previous flight may have resolved the
		// key between our read miss and entering the group.
		c.mu.RLock()
		v, ok := c.resolved[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		if c.metrics != nil {
			c.metrics.ResolveMiss()
		}

		v, err := c.resolver(ctx, key)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.resolved[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		if c.metrics != nil {
			c.metrics.ResolveFailure()
		}
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Forget drops the memoized value for key, forcing the next Get to resolve
// again. Forgetting an unknown key is a no-op.
func (c *Cache[V]) Forget(key string) {
	c.mu.Lock()
	delete(c.resolved, key)
	c.mu.Unlock()
}

// Len returns the number of memoized values.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.resolved)
}
