package directions

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
)

type gateway interface {
	Route(ctx context.Context, origin, dest domain.Location) (domain.Route, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Timeout bounds a single attempt; zero means no per-attempt limit.
	Timeout time.Duration
}

// RetryingGateway retries transient directions failures with exponential backoff.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	timer   backoff.Timer
}

// NewRetryingGateway returns nil when next is nil.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Route calls the wrapped gateway until it succeeds, fails permanently or attempts run out.
func (g *RetryingGateway) Route(ctx context.Context, origin, dest domain.Location) (domain.Route, error) {
	attempt := 0
	op := func() (domain.Route, error) {
		attempt++
		route, err := g.attempt(ctx, origin, dest)
		if err == nil {
			return route, nil
		}
		// a cancelled caller gets the gateway error, not the context error
		if ctx.Err() != nil || !isRetryable(err) {
			return domain.Route{}, backoff.Permanent(err)
		}
		return domain.Route{}, err
	}
	notify := func(err error, delay time.Duration) {
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("directions gateway retry",
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
	}
	return backoff.RetryNotifyWithTimerAndData(op, g.newBackOff(ctx), notify, g.timer)
}

// newBackOff doubles BaseDelay per attempt up to MaxDelay, without jitter.
func (g *RetryingGateway) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.cfg.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	if g.cfg.MaxDelay > 0 {
		b.MaxInterval = g.cfg.MaxDelay
	}
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(g.cfg.MaxAttempts-1)), ctx)
}

func (g *RetryingGateway) attempt(ctx context.Context, origin, dest domain.Location) (domain.Route, error) {
	if g.cfg.Timeout <= 0 {
		return g.next.Route(ctx, origin, dest)
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	return g.next.Route(ctx, origin, dest)
}
