//go:generate mockgen -source=contracts.go -destination=driver_mocks_test.go -package=driver

package driver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

type driverRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.Location, at time.Time) (bool, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus, at time.Time) (bool, error)
}

type requestRepository interface {
	ListByDriver(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) ([]domain.DeliveryRequest, error)
	WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) error
}

type pricingService interface {
	Current(ctx context.Context) (domain.Pricing, error)
}

type routePlanner interface {
	Route(ctx context.Context, origin, dest domain.Location) domain.Route
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
