package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-gas-delivery/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Create inserts a driver. Duplicate phone or code yields apperr.ErrConflict.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	lat, lng, address := locationArgs(d.Location)
	err := r.db.QueryRow(ctx, `
		INSERT INTO drivers (id, name, phone, code, car_number, password_hash, status, lat, lng, address, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING last_active, created_at
	`, d.ID, d.Name, d.Phone, d.Code, d.CarNumber, d.PasswordHash, string(d.Status), lat, lng, address,
	).Scan(&d.LastActive, &d.CreatedAt)
	if err != nil {
		return wrapWrite("create driver", err)
	}
	return nil
}

// Get - returns driver by its ID.
func (r *DriverRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %s: %w", id, err)
	}
	return d, nil
}

// List returns drivers ordered by name. Search matches name, phone or car number.
func (r *DriverRepo) List(ctx context.Context, f domain.DriverFilter) ([]domain.Driver, error) {
	var (
		where []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d OR car_number ILIKE $%d)", n, n, n))
	}

	q := `SELECT ` + driverColumns + ` FROM drivers`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY name, id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	out, err := collectDrivers(rows, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("scan drivers: %w", err)
	}
	return out, nil
}

// ListAvailable returns available drivers that have reported a location.
func (r *DriverRepo) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+driverColumns+`
		FROM drivers
		WHERE status = $1 AND lat IS NOT NULL AND lng IS NOT NULL
		ORDER BY id
	`, string(domain.DriverAvailable))
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}
	out, err := collectDrivers(rows, 0)
	if err != nil {
		return nil, fmt.Errorf("scan available drivers: %w", err)
	}
	return out, nil
}

// UpdateLocation stores the current position and refreshes last_active.
func (r *DriverRepo) UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.Location, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE drivers SET lat = $2, lng = $3, address = $4, last_active = $5
		WHERE id = $1
	`, id, loc.Lat, loc.Lng, loc.Address, at)
	if err != nil {
		return false, fmt.Errorf("update driver location %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Touch refreshes last_active.
func (r *DriverRepo) Touch(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE drivers SET last_active = $2 WHERE id = $1`, id, at)
	if err != nil {
		return false, fmt.Errorf("touch driver %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// UpdateStatus sets the driver status and refreshes last_active.
func (r *DriverRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE drivers SET status = $2, last_active = $3 WHERE id = $1`, id, string(status), at)
	if err != nil {
		return false, fmt.Errorf("update driver status %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// MarkIdleOffline switches available drivers silent since before to offline.
func (r *DriverRepo) MarkIdleOffline(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE drivers SET status = $1
		WHERE status = $2 AND last_active < $3
		RETURNING id
	`, string(domain.DriverOffline), string(domain.DriverAvailable), before)
	if err != nil {
		return nil, fmt.Errorf("mark idle drivers offline: %w", err)
	}
	return collectIDs(rows)
}
