package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/dispatch"
	"service-gas-delivery/internal/transport/kafka"
)

// WorkerRunner runs the dispatch worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Cfg      *config.Config
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Consumer *kafka.Consumer `name:"worker_consumer" optional:"true"`
	Dispatch *dispatch.Service
	Closers  []closer `group:"closers"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Cfg, in.Logger, in.Pool, in.Consumer, in.Dispatch, in.Closers)
	})
}

// workerRun consumes events and sweeps stale state until ctx is done.
// Without Kafka only the janitor runs.
func workerRun(
	ctx context.Context,
	cfg *config.Config,
	logger logx.Logger,
	pool *pgxpool.Pool,
	consumer *kafka.Consumer,
	j janitor,
	closers []closer,
) error {
	if j == nil {
		return errors.New("janitor is nil: worker container misconfigured")
	}
	defer closeResources(logger, pool, consumer, closers)

	janitorDone := startJanitorLoop(ctx, logger, j, cfg.Janitor.Interval)
	defer func() { <-janitorDone }()

	logger.Info("service-gas-delivery-worker started", logx.Bool("kafka", consumer != nil))
	if consumer == nil {
		logger.Warn("kafka disabled, worker runs janitor only")
		<-ctx.Done()
		return ctx.Err()
	}
	return consumer.Run(ctx)
}
