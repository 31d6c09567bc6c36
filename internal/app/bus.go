package app

import (
	"context"
	"sync"
	"time"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/transport/kafka"
)

// localBus runs the worker pipeline in-process when Kafka is disabled.
// Each event is handled on its own goroutine, detached from the request.
type localBus struct {
	mu      sync.RWMutex
	handle  kafka.HandleFunc
	logger  logx.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func newLocalBus(logger logx.Logger, timeout time.Duration) *localBus {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &localBus{logger: logger, timeout: timeout}
}

func (b *localBus) attach(h kafka.HandleFunc) {
	b.mu.Lock()
	b.handle = h
	b.mu.Unlock()
}

// Publish never fails; handler errors are logged.
func (b *localBus) Publish(ctx context.Context, ev domain.Event) error {
	b.mu.RLock()
	h := b.handle
	b.mu.RUnlock()
	if h == nil {
		b.logger.Debug("local bus not attached, event dropped", logx.String("type", string(ev.Type)))
		return nil
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()
		if err := h(hctx, ev); err != nil {
			b.logger.Warn("local event handling failed",
				logx.String("type", string(ev.Type)),
				logx.String("request_id", ev.RequestID.String()),
				logx.Err(err),
			)
		}
	}()
	return nil
}

// Wait blocks until in-flight events are handled.
func (b *localBus) Wait() {
	b.wg.Wait()
}
