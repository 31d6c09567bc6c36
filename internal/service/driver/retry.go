package driver

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"service-gas-delivery/internal/apperr"
)

const (
	writeAttempts     = 3
	writeInitialDelay = time.Second
)

// newWriteBackOff retries store writes three times in total, waiting 1s then 2s.
func newWriteBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = writeInitialDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, writeAttempts-1), ctx)
}

// permanent marks business and context errors so that backoff stops at once.
func permanent(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrInvalid),
		errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrForbidden),
		errors.Is(err, context.Canceled):
		return backoff.Permanent(err)
	default:
		return err
	}
}
