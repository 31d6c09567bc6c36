//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

type requestRepository interface {
	WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) error
	ListPendingBefore(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error)
	ExpirePending(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

type driverRepository interface {
	MarkIdleOffline(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
