// Package driver implements the driver fulfillment flow.
package driver

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/geo"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/ports/requesttx"
)

// Deps groups the collaborators of Service.
type Deps struct {
	Drivers   driverRepository
	Requests  requestRepository
	Pricing   pricingService
	Planner   routePlanner
	Publisher publisher
	Logger    logx.Logger
}

// Service coordinates driver operations.
type Service struct {
	drivers          driverRepository
	requests         requestRepository
	pricing          pricingService
	planner          routePlanner
	publisher        publisher
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
	backoff          func(context.Context) backoff.BackOff
}

// NewService creates a driver Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger := d.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		drivers:          d.Drivers,
		requests:         d.Requests,
		pricing:          d.Pricing,
		planner:          d.Planner,
		publisher:        d.Publisher,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
		backoff:          newWriteBackOff,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// retry runs op with a fresh operation timeout per attempt.
func (s *Service) retry(ctx context.Context, name string, op func(ctx context.Context) error) error {
	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		actx, cancel := s.withTimeout(ctx)
		defer cancel()
		return permanent(op(actx))
	}, s.backoff(ctx), func(err error, delay time.Duration) {
		s.logger.Warn("store write retry",
			logx.String("op", name),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
	})
}

// UpdateLocation stores the driver's position.
func (s *Service) UpdateLocation(ctx context.Context, driverID uuid.UUID, loc domain.Location) error {
	if !loc.Valid() {
		return apperr.ErrInvalid
	}
	now := s.now()
	err := s.retry(ctx, "update_location", func(ctx context.Context) error {
		ok, err := s.drivers.UpdateLocation(ctx, driverID, loc, now)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, domain.DriverLocationEvent(driverID, loc, now))
	return nil
}

// Heartbeat refreshes last_active of a driver that is not deactivated.
func (s *Service) Heartbeat(ctx context.Context, driverID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.activeDriver(ctx, driverID); err != nil {
		return err
	}
	ok, err := s.drivers.Touch(ctx, driverID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// SetStatus lets the driver go available or offline.
func (s *Service) SetStatus(ctx context.Context, driverID uuid.UUID, status domain.DriverStatus) error {
	if status != domain.DriverAvailable && status != domain.DriverOffline {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.activeDriver(ctx, driverID); err != nil {
		return err
	}
	ok, err := s.drivers.UpdateStatus(ctx, driverID, status, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	s.logger.Info("driver status changed",
		logx.String("driver_id", driverID.String()),
		logx.String("status", string(status)),
	)
	return nil
}

// ActiveRequests lists the driver's accepted requests. When from is set they
// are ordered by straight-line distance from it.
func (s *Service) ActiveRequests(ctx context.Context, driverID uuid.UUID, from *domain.Location) ([]domain.ActiveRequest, error) {
	if from != nil && !from.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	reqs, err := s.requests.ListByDriver(ctx, driverID, domain.RequestAccepted)
	if err != nil {
		return nil, err
	}

	origin := from
	if origin == nil {
		origin = d.Location
	}
	out := make([]domain.ActiveRequest, 0, len(reqs))
	for _, r := range reqs {
		ar := domain.ActiveRequest{Request: r}
		if origin != nil {
			ar.DistanceKm = geo.Distance(*origin, r.Location)
			ar.ETAMin = s.planner.Route(ctx, *origin, r.Location).DurationMin
		}
		out = append(out, ar)
	}
	if from != nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	}
	for i := range out {
		out[i].DistanceKm = geo.Round1(out[i].DistanceKm)
	}
	return out, nil
}

// DeliverInput is the hand-over reported by a driver.
type DeliverInput struct {
	DriverID  uuid.UUID
	RequestID uuid.UUID
	Quantity  int
	At        *domain.Location
}

// MarkDelivered completes an accepted request and credits the driver in a
// single transaction.
func (s *Service) MarkDelivered(ctx context.Context, in DeliverInput) (*domain.DeliveryRequest, error) {
	if in.Quantity <= 0 || (in.At != nil && !in.At.Valid()) {
		return nil, apperr.ErrInvalid
	}

	pctx, cancel := s.withTimeout(ctx)
	p, err := s.pricing.Current(pctx)
	cancel()
	if err != nil {
		return nil, err
	}

	var out domain.DeliveryRequest
	err = s.retry(ctx, "mark_delivered", func(ctx context.Context) error {
		return s.requests.WithTx(ctx, func(tx requesttx.Repository) error {
			req, err := tx.GetRequestForUpdate(ctx, in.RequestID)
			if err != nil {
				return err
			}
			if req == nil {
				return apperr.ErrNotFound
			}
			if req.DriverID == nil || *req.DriverID != in.DriverID {
				return fmt.Errorf("request %s belongs to another driver: %w", req.ID, apperr.ErrForbidden)
			}
			if !domain.CanTransition(req.Status, domain.RequestDelivered) {
				return fmt.Errorf("request %s is %s: %w", req.ID, req.Status, apperr.ErrConflict)
			}
			d, err := tx.GetDriverForUpdate(ctx, in.DriverID)
			if err != nil {
				return err
			}
			if d == nil {
				return apperr.ErrNotFound
			}

			now := s.now()
			c := domain.Completion{
				RequestID:        req.ID,
				DriverID:         d.ID,
				DriverName:       d.Name,
				Quantity:         in.Quantity,
				Total:            int64(in.Quantity) * p.UnitPrice(req.GasType.Normalize()),
				DeliveredAt:      now,
				DeliveryLocation: in.At,
			}
			if err := tx.CompleteRequest(ctx, c); err != nil {
				return err
			}
			if err := tx.AddDriverDelivery(ctx, d.ID, c.Quantity, c.Total, now); err != nil {
				return err
			}
			// a dispatched driver becomes available again after its last hand-over
			if _, err := requesttx.ReleaseDriver(ctx, tx, d.ID); err != nil {
				return err
			}

			out = *req
			out.Status = domain.RequestDelivered
			out.Quantity = c.Quantity
			out.Total = c.Total
			out.DriverName = c.DriverName
			out.DeliveredAt = &now
			out.DeliveryLocation = c.DeliveryLocation
			out.UpdatedAt = now
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery completed",
		logx.String("request_id", out.ID.String()),
		logx.String("driver_id", in.DriverID.String()),
		logx.Int("quantity", out.Quantity),
		logx.Int64("total", out.Total),
	)
	s.publish(ctx, domain.RequestEvent(domain.EventRequestUpdated, out, s.now()))
	return &out, nil
}

// Stats sums the driver's delivered requests.
func (s *Service) Stats(ctx context.Context, driverID uuid.UUID) (domain.DriverStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return domain.DriverStats{}, err
	}
	if d == nil {
		return domain.DriverStats{}, apperr.ErrNotFound
	}
	p, err := s.pricing.Current(ctx)
	if err != nil {
		return domain.DriverStats{}, err
	}
	reqs, err := s.requests.ListByDriver(ctx, driverID, domain.RequestDelivered)
	if err != nil {
		return domain.DriverStats{}, err
	}

	stats := domain.DriverStats{DriverID: driverID, DeliveredCount: len(reqs)}
	for _, r := range reqs {
		stats.TotalEarned += r.EffectiveTotal(p)
	}
	return stats, nil
}

func (s *Service) activeDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, err := s.drivers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	if d.Status == domain.DriverInactive {
		return nil, fmt.Errorf("driver %s is deactivated: %w", id, apperr.ErrForbidden)
	}
	return d, nil
}

func (s *Service) publish(ctx context.Context, ev domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish event failed",
			logx.String("type", string(ev.Type)),
			logx.Err(err),
		)
	}
}
