package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/geo"
	"service-gas-delivery/internal/ports/requesttx"
)

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ requesttx.Repository = (*TxRepo)(nil)

// GetRequestForUpdate locks the request row.
func (r *TxRepo) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error) {
	return getRequest(ctx, r.tx, id, true)
}

// UpdateRequestStatus - update request status.
func (r *TxRepo) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	ct, err := r.tx.Exec(ctx, `
		UPDATE delivery_requests SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, string(status))
	if err != nil {
		return fmt.Errorf("update request status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found", id)
	}
	return nil
}

// AssignDriver attaches the driver and moves the request to accepted.
func (r *TxRepo) AssignDriver(ctx context.Context, requestID, driverID uuid.UUID, driverName string) error {
	ct, err := r.tx.Exec(ctx, `
		UPDATE delivery_requests
		SET driver_id = $2, driver_name = $3, status = $4, updated_at = now()
		WHERE id = $1
	`, requestID, driverID, driverName, string(domain.RequestAccepted))
	if err != nil {
		return fmt.Errorf("assign driver to request %s: %w", requestID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found", requestID)
	}
	return nil
}

// CompleteRequest writes the delivered state of a request.
func (r *TxRepo) CompleteRequest(ctx context.Context, c domain.Completion) error {
	lat, lng, address := locationArgs(c.DeliveryLocation)
	ct, err := r.tx.Exec(ctx, `
		UPDATE delivery_requests
		SET status = $2, quantity = $3, total = $4, delivered_at = $5,
		    driver_id = $6, driver_name = $7,
		    delivery_lat = $8, delivery_lng = $9, delivery_address = $10,
		    updated_at = now()
		WHERE id = $1
	`, c.RequestID, string(domain.RequestDelivered), c.Quantity, c.Total, c.DeliveredAt,
		c.DriverID, c.DriverName, lat, lng, address)
	if err != nil {
		return fmt.Errorf("complete request %s: %w", c.RequestID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found", c.RequestID)
	}
	return nil
}

// GetDriverForUpdate locks the driver row.
func (r *TxRepo) GetDriverForUpdate(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.tx.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %s for update: %w", id, err)
	}
	return d, nil
}

// FindNearestAvailableForUpdate locks available drivers with a location and
// returns the one closest to loc. Rows locked by other dispatchers are skipped.
func (r *TxRepo) FindNearestAvailableForUpdate(ctx context.Context, loc domain.Location) (*domain.Driver, error) {
	rows, err := r.tx.Query(ctx, `
		SELECT `+driverColumns+`
		FROM drivers
		WHERE status = $1 AND lat IS NOT NULL AND lng IS NOT NULL
		FOR UPDATE SKIP LOCKED
	`, string(domain.DriverAvailable))
	if err != nil {
		return nil, fmt.Errorf("find available drivers: %w", err)
	}
	drivers, err := collectDrivers(rows, 0)
	if err != nil {
		return nil, fmt.Errorf("scan available drivers: %w", err)
	}

	var (
		best     *domain.Driver
		bestDist float64
	)
	for i := range drivers {
		d := geo.Distance(loc, *drivers[i].Location)
		if best == nil || d < bestDist {
			best, bestDist = &drivers[i], d
		}
	}
	return best, nil
}

// AddDriverDelivery increments delivery counters of the driver.
func (r *TxRepo) AddDriverDelivery(ctx context.Context, driverID uuid.UUID, quantity int, amount int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
		UPDATE drivers
		SET total_deliveries = total_deliveries + $2,
		    earnings = earnings + $3,
		    last_delivery = $4,
		    last_delivery_amount = $3,
		    last_active = $4
		WHERE id = $1
	`, driverID, quantity, amount, at)
	if err != nil {
		return fmt.Errorf("add driver delivery %s: %w", driverID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", driverID)
	}
	return nil
}

// SetDriverStatus - update driver status.
func (r *TxRepo) SetDriverStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error {
	ct, err := r.tx.Exec(ctx, `UPDATE drivers SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update driver status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", id)
	}
	return nil
}

// CountDriverRequests counts the driver's requests in status.
func (r *TxRepo) CountDriverRequests(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) (int, error) {
	var n int
	err := r.tx.QueryRow(ctx, `
		SELECT count(*) FROM delivery_requests WHERE driver_id = $1 AND status = $2
	`, driverID, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count requests of driver %s: %w", driverID, err)
	}
	return n, nil
}

// DeleteDriver removes the driver row. It returns false when no row matched.
func (r *TxRepo) DeleteDriver(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.tx.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete driver %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
