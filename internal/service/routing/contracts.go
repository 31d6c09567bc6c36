package routing

import (
	"context"

	"service-gas-delivery/internal/domain"
)

type directions interface {
	Route(ctx context.Context, origin, dest domain.Location) (domain.Route, error)
}

type routeCache interface {
	Get(ctx context.Context, key string) (domain.Route, bool, error)
	Set(ctx context.Context, key string, route domain.Route) error
}

type counter interface {
	Inc()
}

// Counters groups the planner metrics. Nil fields are ignored.
type Counters struct {
	Hits      counter
	Misses    counter
	Fallbacks counter
}
