// Package routing resolves a driving route between two points using the route
// cache, the directions gateway and a straight-line fallback.
package routing

import (
	"context"
	"fmt"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/geo"
	"service-gas-delivery/internal/logx"
)

// Planner returns routes for tracking and ETA screens.
type Planner struct {
	gateway  directions
	cache    routeCache
	logger   logx.Logger
	counters Counters
}

// NewPlanner creates a Planner. A nil gateway always yields straight-line routes.
func NewPlanner(gw directions, cache routeCache, logger logx.Logger, counters Counters) *Planner {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Planner{gateway: gw, cache: cache, logger: logger, counters: counters}
}

// Route never fails: on any gateway error it returns a straight line between the points.
func (p *Planner) Route(ctx context.Context, origin, dest domain.Location) domain.Route {
	key := geo.CacheKey(origin, dest)
	if route, ok := p.lookup(ctx, key); ok {
		inc(p.counters.Hits)
		return route
	}
	inc(p.counters.Misses)

	route, err := p.fetch(ctx, key, origin, dest)
	if err != nil {
		inc(p.counters.Fallbacks)
		p.logger.Warn("route fallback to straight line",
			logx.String("key", key),
			logx.Err(err),
		)
		return geo.StraightLine(origin, dest)
	}
	return route
}

// Warm fetches and caches the route unless it is already cached.
func (p *Planner) Warm(ctx context.Context, origin, dest domain.Location) error {
	key := geo.CacheKey(origin, dest)
	if _, ok := p.lookup(ctx, key); ok {
		return nil
	}
	_, err := p.fetch(ctx, key, origin, dest)
	return err
}

func (p *Planner) lookup(ctx context.Context, key string) (domain.Route, bool) {
	if p.cache == nil {
		return domain.Route{}, false
	}
	route, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn("route cache get failed", logx.String("key", key), logx.Err(err))
		return domain.Route{}, false
	}
	return route, ok
}

func (p *Planner) fetch(ctx context.Context, key string, origin, dest domain.Location) (domain.Route, error) {
	if p.gateway == nil {
		return domain.Route{}, fmt.Errorf("routing: directions gateway not configured")
	}
	route, err := p.gateway.Route(ctx, origin, dest)
	if err != nil {
		return domain.Route{}, err
	}
	if p.cache != nil {
		if err := p.cache.Set(ctx, key, route); err != nil {
			p.logger.Warn("route cache set failed", logx.String("key", key), logx.Err(err))
		}
	}
	return route, nil
}

func inc(c counter) {
	if c != nil {
		c.Inc()
	}
}
