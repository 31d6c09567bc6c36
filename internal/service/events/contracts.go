//go:generate mockgen -source=contracts.go -destination=events_mocks_test.go -package=events_test

package events

import (
	"context"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
)

// Dispatcher abstracts the dispatch operations needed by Processor.
type Dispatcher interface {
	Assign(ctx context.Context, requestID uuid.UUID) error
}

// RouteWarmer precomputes routes so that tracking is served from cache.
type RouteWarmer interface {
	Warm(ctx context.Context, origin, dest domain.Location) error
}

// DriverLookup loads the current driver position.
type DriverLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
}
