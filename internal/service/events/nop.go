package events

import (
	"context"

	"service-gas-delivery/internal/domain"
)

// Nop discards events.
type Nop struct{}

// Publish implements the publisher contract of the services.
func (Nop) Publish(context.Context, domain.Event) error { return nil }

// Fanout publishes to every target and returns the first error.
type Fanout []interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Publish implements the publisher contract of the services.
func (f Fanout) Publish(ctx context.Context, ev domain.Event) error {
	var first error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
