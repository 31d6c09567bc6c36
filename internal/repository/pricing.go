package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-gas-delivery/internal/domain"
)

// PricingRepo stores the single pricing row.
type PricingRepo struct{ db *pgxpool.Pool }

// NewPricingRepo creates a new PricingRepo.
func NewPricingRepo(db *pgxpool.Pool) *PricingRepo { return &PricingRepo{db: db} }

// Get returns nil when the pricing row is missing.
func (r *PricingRepo) Get(ctx context.Context) (*domain.Pricing, error) {
	var p domain.Pricing
	err := r.db.QueryRow(ctx, `
		SELECT small, medium, large, gas_available, updated_at FROM pricing WHERE id = 1
	`).Scan(&p.Small, &p.Medium, &p.Large, &p.GasAvailable, &p.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pricing: %w", err)
	}
	return &p, nil
}

// Upsert replaces the price list.
func (r *PricingRepo) Upsert(ctx context.Context, p *domain.Pricing) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO pricing (id, small, medium, large, gas_available, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET small = EXCLUDED.small, medium = EXCLUDED.medium, large = EXCLUDED.large,
		    gas_available = EXCLUDED.gas_available, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`, p.Small, p.Medium, p.Large, p.GasAvailable).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert pricing: %w", err)
	}
	return nil
}

// SetGasAvailable toggles availability. It returns false when the row is missing.
func (r *PricingRepo) SetGasAvailable(ctx context.Context, available bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE pricing SET gas_available = $1, updated_at = now() WHERE id = 1`, available)
	if err != nil {
		return false, fmt.Errorf("set gas availability: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
