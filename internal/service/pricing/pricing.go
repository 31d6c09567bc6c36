package pricing

import (
	"context"
	"time"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
)

// Default returns the price list used until an admin stores one.
func Default() domain.Pricing {
	return domain.Pricing{Small: 5000, Medium: 7500, Large: 10000, GasAvailable: true}
}

// Service reads and updates the price list.
type Service struct {
	repo             pricingRepository
	operationTimeout time.Duration
}

// NewService creates a pricing Service.
func NewService(r pricingRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Current returns the stored price list or the defaults when none is stored.
func (s *Service) Current(ctx context.Context) (domain.Pricing, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Pricing{}, err
	}
	if p == nil {
		return Default(), nil
	}
	return *p, nil
}

// Update replaces all prices. Every price must be positive.
func (s *Service) Update(ctx context.Context, p domain.Pricing) (domain.Pricing, error) {
	if p.Small <= 0 || p.Medium <= 0 || p.Large <= 0 {
		return domain.Pricing{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Upsert(ctx, &p); err != nil {
		return domain.Pricing{}, err
	}
	return p, nil
}

// SetGasAvailable toggles whether customers may order.
func (s *Service) SetGasAvailable(ctx context.Context, available bool) (domain.Pricing, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.SetGasAvailable(ctx, available)
	if err != nil {
		return domain.Pricing{}, err
	}
	if !ok {
		p := Default()
		p.GasAvailable = available
		if err := s.repo.Upsert(ctx, &p); err != nil {
			return domain.Pricing{}, err
		}
		return p, nil
	}

	p, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Pricing{}, err
	}
	if p == nil {
		return domain.Pricing{}, apperr.ErrNotFound
	}
	return *p, nil
}
