//go:generate mockgen -source=contracts.go -destination=customer_mocks_test.go -package=customer

package customer

import (
	"context"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

type driverRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	ListAvailable(ctx context.Context) ([]domain.Driver, error)
}

type requestRepository interface {
	Create(ctx context.Context, r *domain.DeliveryRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error)
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
