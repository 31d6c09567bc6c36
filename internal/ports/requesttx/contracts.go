package requesttx

import (
	"context"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
)

// Repository is the set of writes that must commit together
type Repository interface {
	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	AssignDriver(ctx context.Context, requestID, driverID uuid.UUID, driverName string) error
	CompleteRequest(ctx context.Context, c domain.Completion) error
	GetDriverForUpdate(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	FindNearestAvailableForUpdate(ctx context.Context, loc domain.Location) (*domain.Driver, error)
	AddDriverDelivery(ctx context.Context, driverID uuid.UUID, quantity int, amount int64, at time.Time) error
	SetDriverStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error
	CountDriverRequests(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) (int, error)
	DeleteDriver(ctx context.Context, id uuid.UUID) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

// ReleaseDriver returns a dispatched driver to available once it holds no
// accepted request. It reports whether the status changed.
func ReleaseDriver(ctx context.Context, tx Repository, driverID uuid.UUID) (bool, error) {
	d, err := tx.GetDriverForUpdate(ctx, driverID)
	if err != nil || d == nil || d.Status != domain.DriverActive {
		return false, err
	}
	open, err := tx.CountDriverRequests(ctx, driverID, domain.RequestAccepted)
	if err != nil {
		return false, err
	}
	if open > 0 {
		return false, nil
	}
	if err := tx.SetDriverStatus(ctx, driverID, domain.DriverAvailable); err != nil {
		return false, err
	}
	return true, nil
}
