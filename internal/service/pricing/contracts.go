package pricing

import (
	"context"

	"service-gas-delivery/internal/domain"
)

type pricingRepository interface {
	Get(ctx context.Context) (*domain.Pricing, error)
	Upsert(ctx context.Context, p *domain.Pricing) error
	SetGasAvailable(ctx context.Context, available bool) (bool, error)
}
