//go:generate mockgen -source=contracts.go -destination=admin_mocks_test.go -package=admin

package admin

import (
	"context"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

type driverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	List(ctx context.Context, f domain.DriverFilter) ([]domain.Driver, error)
}

type requestRepository interface {
	List(ctx context.Context, f domain.RequestFilter) ([]domain.DeliveryRequest, error)
	WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) error
}

type pricingService interface {
	Current(ctx context.Context) (domain.Pricing, error)
	Update(ctx context.Context, p domain.Pricing) (domain.Pricing, error)
	SetGasAvailable(ctx context.Context, available bool) (domain.Pricing, error)
}
