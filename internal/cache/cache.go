// Package cache stores computed routes keyed by origin and destination.
package cache

import (
	"context"

	"service-gas-delivery/internal/domain"
)

// RouteCache is a TTL cache of routes.
type RouteCache interface {
	Get(ctx context.Context, key string) (domain.Route, bool, error)
	Set(ctx context.Context, key string, route domain.Route) error
}
