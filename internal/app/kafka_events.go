package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/transport/kafka"
)

type eventHandler interface {
	Handle(ctx context.Context, e domain.Event) error
}

type requestLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error)
}

const lookupTimeout = 2 * time.Second

// makeEventsKafka refreshes request events from the store before handing
// them to p, so a stale message acts on the current status.
func makeEventsKafka(p eventHandler, requests requestLookup, consumed *prometheus.CounterVec) kafka.HandleFunc {
	return func(ctx context.Context, event domain.Event) error {
		if requests == nil || event.Type == domain.EventDriverLocation {
			return observe(consumed, event, domainPermanent(p.Handle(ctx, event)))
		}

		lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		req, err := requests.Get(lookupCtx, event.RequestID)
		if err != nil {
			return observe(consumed, event, err)
		}
		if req == nil {
			countConsumed(consumed, event, "skipped")
			return nil
		}

		event.Status = req.Status
		event.DriverID = req.DriverID
		event.Request = req
		return observe(consumed, event, domainPermanent(p.Handle(ctx, event)))
	}
}

// makeLiveKafka forwards every event to the live hub.
func makeLiveKafka(p eventPublisher, consumed *prometheus.CounterVec) kafka.HandleFunc {
	return func(ctx context.Context, event domain.Event) error {
		return observe(consumed, event, p.Publish(ctx, event))
	}
}

// domainPermanent stops redelivery of events the domain rejected.
func domainPermanent(err error) error {
	return kafka.PermanentIf(err,
		apperr.ErrInvalid,
		apperr.ErrNotFound,
		apperr.ErrConflict,
		apperr.ErrForbidden,
		apperr.ErrUnavailable,
	)
}

func observe(consumed *prometheus.CounterVec, event domain.Event, err error) error {
	if err != nil {
		countConsumed(consumed, event, "error")
		return err
	}
	countConsumed(consumed, event, "ok")
	return nil
}

func countConsumed(consumed *prometheus.CounterVec, event domain.Event, result string) {
	if consumed != nil {
		consumed.WithLabelValues(string(event.Type), result).Inc()
	}
}
