package app

import (
	"context"
	"time"

	"service-gas-delivery/internal/logx"
)

type janitor interface {
	RedispatchPending(ctx context.Context) (int, error)
	ExpirePending(ctx context.Context) (int, error)
	MarkIdleDrivers(ctx context.Context) (int, error)
}

// startJanitorLoop retries dispatch of waiting requests, then sweeps stale
// requests and idle drivers every interval
// until ctx is done. The returned channel is closed when the loop exits.
func startJanitorLoop(ctx context.Context, logger logx.Logger, j janitor, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(ctx, logger, j)
			}
		}
	}()
	return done
}

// sweep redispatches first so a request gets its last driver search before
// it can expire.
func sweep(ctx context.Context, logger logx.Logger, j janitor) {
	if _, err := j.RedispatchPending(ctx); err != nil && ctx.Err() == nil {
		logger.Error("redispatch pending requests failed", logx.Err(err))
	}
	if _, err := j.ExpirePending(ctx); err != nil && ctx.Err() == nil {
		logger.Error("expire pending requests failed", logx.Err(err))
	}
	if _, err := j.MarkIdleDrivers(ctx); err != nil && ctx.Err() == nil {
		logger.Error("mark idle drivers failed", logx.Err(err))
	}
}
