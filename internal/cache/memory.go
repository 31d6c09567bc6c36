package cache

import (
	"context"
	"sync"
	"time"

	"service-gas-delivery/internal/domain"
)

type entry struct {
	route     domain.Route
	expiresAt time.Time
}

// MemoryCache is a process-local RouteCache. Expired entries are swept once
// the cache grows past maxEntries.
type MemoryCache struct {
	mu         sync.Mutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryCache creates an in-memory cache. A nil now uses time.Now.
func NewMemoryCache(ttl time.Duration, maxEntries int, now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}
}

// Get returns a fresh route for key.
func (c *MemoryCache) Get(_ context.Context, key string) (domain.Route, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return domain.Route{}, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		return domain.Route{}, false, nil
	}
	return cloneRoute(e.route), true, nil
}

// Set stores route under key for the configured TTL.
func (c *MemoryCache) Set(_ context.Context, key string, route domain.Route) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.items[key] = entry{route: cloneRoute(route), expiresAt: now.Add(c.ttl)}
	if c.maxEntries > 0 && len(c.items) > c.maxEntries {
		c.sweepLocked(now)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *MemoryCache) sweepLocked(now time.Time) {
	for k, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

func cloneRoute(r domain.Route) domain.Route {
	r.Coords = append([]domain.Location(nil), r.Coords...)
	return r
}
