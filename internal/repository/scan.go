package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"service-gas-delivery/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const driverColumns = `id, name, phone, code, car_number, password_hash, status, lat, lng, address,
	total_deliveries, earnings, last_active, last_delivery, last_delivery_amount, created_at`

const requestColumns = `id, customer_name, phone, lat, lng, address, gas_type, quantity, total, notes,
	driver_id, driver_name, status, created_at, updated_at, delivered_at,
	delivery_lat, delivery_lng, delivery_address`

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var (
		d        domain.Driver
		lat, lng *float64
		address  *string
		lastDel  *time.Time
	)
	if err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.Code, &d.CarNumber, &d.PasswordHash, &d.Status,
		&lat, &lng, &address,
		&d.TotalDeliveries, &d.Earnings, &d.LastActive, &lastDel, &d.LastDeliveryAmount, &d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Location = optionalLocation(lat, lng, address)
	d.LastDelivery = lastDel
	return &d, nil
}

func scanRequest(row pgx.Row) (*domain.DeliveryRequest, error) {
	var (
		r              domain.DeliveryRequest
		driverID       uuid.NullUUID
		deliveredAt    *time.Time
		dLat, dLng     *float64
		dAddress       *string
		gasType        string
		status         string
		reqLat, reqLng float64
	)
	if err := row.Scan(
		&r.ID, &r.CustomerName, &r.Phone, &reqLat, &reqLng, &r.Location.Address, &gasType,
		&r.Quantity, &r.Total, &r.Notes,
		&driverID, &r.DriverName, &status, &r.CreatedAt, &r.UpdatedAt, &deliveredAt,
		&dLat, &dLng, &dAddress,
	); err != nil {
		return nil, err
	}
	r.Location.Lat, r.Location.Lng = reqLat, reqLng
	r.GasType = domain.GasType(gasType)
	r.Status = domain.RequestStatus(status)
	if driverID.Valid {
		id := driverID.UUID
		r.DriverID = &id
	}
	r.DeliveredAt = deliveredAt
	r.DeliveryLocation = optionalLocation(dLat, dLng, dAddress)
	return &r, nil
}

func collectRequests(rows pgx.Rows, capacity int) ([]domain.DeliveryRequest, error) {
	defer rows.Close()
	out := make([]domain.DeliveryRequest, 0, capacity)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func collectDrivers(rows pgx.Rows, capacity int) ([]domain.Driver, error) {
	defer rows.Close()
	out := make([]domain.Driver, 0, capacity)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func optionalLocation(lat, lng *float64, address *string) *domain.Location {
	if lat == nil || lng == nil {
		return nil
	}
	loc := &domain.Location{Lat: *lat, Lng: *lng}
	if address != nil {
		loc.Address = *address
	}
	return loc
}

// locationArgs returns nullable column values for an optional location.
func locationArgs(loc *domain.Location) (lat, lng *float64, address *string) {
	if loc == nil {
		return nil, nil, nil
	}
	return &loc.Lat, &loc.Lng, &loc.Address
}
