// Package dispatch assigns pending requests to drivers and expires stale state.
package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/ports/requesttx"
)

// Config holds the redispatch and cleanup thresholds.
type Config struct {
	RedispatchAfter time.Duration
	PendingTTL      time.Duration
	DriverIdleTTL   time.Duration
}

const redispatchBatch = 50

// Service - service for assigning pending requests to drivers.
type Service struct {
	requests         requestRepository
	drivers          driverRepository
	publisher        publisher
	cfg              Config
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a dispatch Service.
func NewService(requests requestRepository, drivers driverRepository, pub publisher, cfg Config, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		requests:         requests,
		drivers:          drivers,
		publisher:        pub,
		cfg:              cfg,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Assign gives a pending request to the nearest available driver.
// A request that is missing or no longer pending is left alone.
// apperr.ErrConflict means no driver is available right now.
func (s *Service) Assign(ctx context.Context, requestID uuid.UUID) error {
	_, err := s.assign(ctx, requestID)
	return err
}

func (s *Service) assign(ctx context.Context, requestID uuid.UUID) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		assigned domain.DeliveryRequest
		done     bool
	)
	err := s.requests.WithTx(ctx, func(tx requesttx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil || req.Status != domain.RequestPending {
			return nil
		}

		d, err := tx.FindNearestAvailableForUpdate(ctx, req.Location)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrConflict
		}

		if err := tx.AssignDriver(ctx, req.ID, d.ID, d.Name); err != nil {
			return err
		}
		if err := tx.SetDriverStatus(ctx, d.ID, domain.DriverActive); err != nil {
			return err
		}

		assigned = *req
		assigned.DriverID = &d.ID
		assigned.DriverName = d.Name
		assigned.Status = domain.RequestAccepted
		assigned.UpdatedAt = s.now()
		done = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !done {
		return false, nil
	}

	s.logger.Info("driver assigned",
		logx.String("event", "driver_assigned"),
		logx.String("request_id", assigned.ID.String()),
		logx.String("driver_id", assigned.DriverID.String()),
	)
	s.publish(ctx, domain.RequestEvent(domain.EventRequestUpdated, assigned, assigned.UpdatedAt))
	return true, nil
}

// RedispatchPending retries Assign for requests still pending after
// RedispatchAfter, oldest first. The sweep stops at the first request no
// driver is available for.
func (s *Service) RedispatchPending(ctx context.Context) (int, error) {
	if s.cfg.RedispatchAfter <= 0 {
		return 0, nil
	}
	listCtx, cancel := s.withTimeout(ctx)
	ids, err := s.requests.ListPendingBefore(listCtx, s.now().Add(-s.cfg.RedispatchAfter), redispatchBatch)
	cancel()
	if err != nil {
		return 0, err
	}

	assigned := 0
sweep:
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return assigned, err
		}
		ok, err := s.assign(ctx, id)
		switch {
		case err == nil:
			if ok {
				assigned++
			}
		case errors.Is(err, apperr.ErrConflict):
			break sweep
		default:
			s.logger.Warn("redispatch failed",
				logx.String("request_id", id.String()),
				logx.Err(err),
			)
		}
	}
	if assigned > 0 {
		s.logger.Info("pending requests redispatched", logx.Int("count", assigned))
	}
	return assigned, nil
}

// ExpirePending cancels requests that stayed pending longer than PendingTTL.
func (s *Service) ExpirePending(ctx context.Context) (int, error) {
	if s.cfg.PendingTTL <= 0 {
		return 0, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	ids, err := s.requests.ExpirePending(ctx, now.Add(-s.cfg.PendingTTL))
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.publish(ctx, domain.Event{
			Type:       domain.EventRequestUpdated,
			RequestID:  id,
			Status:     domain.RequestCancelled,
			OccurredAt: now,
		})
	}
	if len(ids) > 0 {
		s.logger.Info("pending requests expired", logx.Int("count", len(ids)))
	}
	return len(ids), nil
}

// MarkIdleDrivers moves available drivers without a recent heartbeat offline.
func (s *Service) MarkIdleDrivers(ctx context.Context) (int, error) {
	if s.cfg.DriverIdleTTL <= 0 {
		return 0, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.drivers.MarkIdleOffline(ctx, s.now().Add(-s.cfg.DriverIdleTTL))
	if err != nil {
		return 0, err
	}
	if len(ids) > 0 {
		s.logger.Info("idle drivers marked offline", logx.Int("count", len(ids)))
	}
	return len(ids), nil
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
