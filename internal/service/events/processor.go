// Package events reacts to request events in the worker.
package events

import (
	"context"
	"errors"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
)

// Processor processes request events.
type Processor struct {
	dispatch Dispatcher
	warmer   RouteWarmer
	drivers  DriverLookup
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a Processor. A nil warmer disables route warming.
func NewProcessor(dispatch Dispatcher, warmer RouteWarmer, drivers DriverLookup, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		dispatch: dispatch,
		warmer:   warmer,
		drivers:  drivers,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onPending, p.onAccepted)
	return p
}

// Handle processes a single event. Driver location events are ignored.
func (p *Processor) Handle(ctx context.Context, e domain.Event) error {
	if p.factory == nil || e.Type == domain.EventDriverLocation {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPending(ctx context.Context, e domain.Event) error {
	err := p.dispatch.Assign(ctx, e.RequestID)
	if errors.Is(err, apperr.ErrConflict) {
		p.logger.Info("no driver available, request stays pending",
			logx.String("request_id", e.RequestID.String()),
		)
		return nil
	}
	return err
}

// onAccepted warms the driver-to-customer route. Failures are logged only,
// tracking falls back to a live lookup.
func (p *Processor) onAccepted(ctx context.Context, e domain.Event) error {
	if p.warmer == nil || e.Request == nil || e.DriverID == nil {
		return nil
	}
	d, err := p.drivers.Get(ctx, *e.DriverID)
	if err != nil {
		return err
	}
	if d == nil || d.Location == nil {
		return nil
	}
	if err := p.warmer.Warm(ctx, *d.Location, e.Request.Location); err != nil {
		p.logger.Warn("route warm failed",
			logx.String("request_id", e.RequestID.String()),
			logx.Err(err),
		)
	}
	return nil
}
