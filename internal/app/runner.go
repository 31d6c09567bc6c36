package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/live"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/events"
	"service-gas-delivery/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP service using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		panic(err)
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type serviceIn struct {
	dig.In

	Ctx          context.Context
	Cfg          *config.Config
	Logger       logx.Logger
	Pool         *pgxpool.Pool
	Server       *http.Server
	Pprof        *http.Server    `name:"pprof_server" optional:"true"`
	LiveConsumer *kafka.Consumer `name:"live_consumer" optional:"true"`
	Hub          *live.Hub
	Bus          *localBus
	Processor    *events.Processor
	Closers      []closer `group:"closers"`
}

func run(container *dig.Container) error {
	return container.Invoke(serviceRun)
}

func serviceRun(in serviceIn) error {
	if !in.Cfg.Kafka.Enabled() {
		in.Bus.attach(in.Processor.Handle)
		in.Logger.Info("kafka disabled, dispatching in-process")
	}

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := in.LiveConsumer.Run(in.Ctx); err != nil && !errors.Is(err, context.Canceled) {
			in.Logger.Error("live consumer stopped", logx.Err(err))
		}
	}()

	startServer(in.Server, in.Logger, "service-gas-delivery")
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof")
	}
	waitForShutdown(in.Ctx, in.Logger)

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	in.Hub.Close()
	<-consumerDone
	in.Bus.Wait()
	closeResources(in.Logger, in.Pool, in.LiveConsumer, in.Closers)
	return in.Ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger, name string) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(logger logx.Logger, pool *pgxpool.Pool, consumer *kafka.Consumer, closers []closer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c(); err != nil {
			logger.Error("resource close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
