package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

// RequestRepo represents delivery request repository.
type RequestRepo struct {
	db *pgxpool.Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{db: db}
}

// Create inserts a new request and fills its timestamps.
func (r *RequestRepo) Create(ctx context.Context, req *domain.DeliveryRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO delivery_requests
			(id, customer_name, phone, lat, lng, address, gas_type, quantity, total, notes,
			 driver_id, driver_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`, req.ID, req.CustomerName, req.Phone, req.Location.Lat, req.Location.Lng, req.Location.Address,
		string(req.GasType), req.Quantity, req.Total, req.Notes,
		req.DriverID, req.DriverName, string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return wrapWrite("create request", err)
	}
	return nil
}

// Get - returns request by its ID.
func (r *RequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error) {
	return getRequest(ctx, r.db, id, false)
}

// List returns requests newest first.
func (r *RequestRepo) List(ctx context.Context, f domain.RequestFilter) ([]domain.DeliveryRequest, error) {
	var (
		where []string
		args  []any
	)
	if f.DriverID != nil {
		args = append(args, *f.DriverID)
		where = append(where, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	q := `SELECT ` + requestColumns + ` FROM delivery_requests`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	out, err := collectRequests(rows, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("scan requests: %w", err)
	}
	return out, nil
}

// ListByDriver returns the driver's requests in the given status.
func (r *RequestRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) ([]domain.DeliveryRequest, error) {
	return r.List(ctx, domain.RequestFilter{DriverID: &driverID, Status: status})
}

// ListPendingBefore returns up to limit pending request ids created before
// the cutoff, oldest first.
func (r *RequestRepo) ListPendingBefore(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM delivery_requests
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3
	`, string(domain.RequestPending), before, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return collectIDs(rows)
}

// ExpirePending cancels pending requests created before the cutoff.
func (r *RequestRepo) ExpirePending(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE delivery_requests SET status = $1, updated_at = now()
		WHERE status = $2 AND created_at < $3
		RETURNING id
	`, string(domain.RequestCancelled), string(domain.RequestPending), before)
	if err != nil {
		return nil, fmt.Errorf("expire pending requests: %w", err)
	}
	return collectIDs(rows)
}

// WithTx opens a transaction and executes fn within it.
func (r *RequestRepo) WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func getRequest(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*domain.DeliveryRequest, error) {
	sql := `SELECT ` + requestColumns + ` FROM delivery_requests WHERE id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	req, err := scanRequest(q.QueryRow(ctx, sql, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %s: %w", id, err)
	}
	return req, nil
}

func collectIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
