package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/repository"
	"service-gas-delivery/internal/service/admin"
	"service-gas-delivery/internal/service/customer"
	"service-gas-delivery/internal/service/dispatch"
	"service-gas-delivery/internal/service/driver"
	"service-gas-delivery/internal/service/events"
	"service-gas-delivery/internal/service/pricing"
	"service-gas-delivery/internal/service/routing"
	"service-gas-delivery/internal/transport/kafka"
)

// eventPublisher is the publishing side shared by every service.
type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type producerOut struct {
	dig.Out
	Producer *kafka.Producer
	Closer   closer `group:"closers"`
}

type producerIn struct {
	dig.In
	Cfg       *config.Config
	Published *prometheus.CounterVec `name:"events_published_total"`
}

// newProducer returns a nil producer when Kafka is disabled.
func newProducer(in producerIn) (producerOut, error) {
	if !in.Cfg.Kafka.Enabled() {
		return producerOut{Closer: func() error { return nil }}, nil
	}
	p, err := kafka.NewProducer(in.Cfg.Kafka.Brokers, in.Cfg.Kafka.Topic, in.Published)
	if err != nil {
		return producerOut{}, err
	}
	return producerOut{Producer: p, Closer: p.Close}, nil
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewRequestRepo,
		repository.NewPricingRepo,
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
		func(repo *repository.PricingRepo, timeout time.Duration) *pricing.Service {
			return pricing.NewService(repo, timeout)
		},
		func(
			drivers *repository.DriverRepo,
			requests *repository.RequestRepo,
			prices *pricing.Service,
			planner *routing.Planner,
			pub eventPublisher,
			logger logx.Logger,
			timeout time.Duration,
		) *customer.Service {
			return customer.NewService(customer.Deps{
				Drivers:   drivers,
				Requests:  requests,
				Pricing:   prices,
				Planner:   planner,
				Publisher: pub,
				Logger:    logger.With(logx.String("service", "customer")),
			}, timeout)
		},
		func(
			drivers *repository.DriverRepo,
			requests *repository.RequestRepo,
			prices *pricing.Service,
			planner *routing.Planner,
			pub eventPublisher,
			logger logx.Logger,
			timeout time.Duration,
		) *driver.Service {
			return driver.NewService(driver.Deps{
				Drivers:   drivers,
				Requests:  requests,
				Pricing:   prices,
				Planner:   planner,
				Publisher: pub,
				Logger:    logger.With(logx.String("service", "driver")),
			}, timeout)
		},
		func(
			drivers *repository.DriverRepo,
			requests *repository.RequestRepo,
			prices *pricing.Service,
			logger logx.Logger,
			timeout time.Duration,
		) *admin.Service {
			return admin.NewService(drivers, requests, prices, logger.With(logx.String("service", "admin")), timeout)
		},
		func(
			cfg *config.Config,
			requests *repository.RequestRepo,
			drivers *repository.DriverRepo,
			pub eventPublisher,
			logger logx.Logger,
			timeout time.Duration,
		) *dispatch.Service {
			return dispatch.NewService(requests, drivers, pub, dispatch.Config{
				RedispatchAfter: cfg.Janitor.RedispatchAfter,
				PendingTTL:      cfg.Janitor.PendingTTL,
				DriverIdleTTL:   cfg.Janitor.DriverIdleTTL,
			}, timeout, logger.With(logx.String("service", "dispatch")))
		},
		func(d *dispatch.Service, planner *routing.Planner, drivers *repository.DriverRepo, logger logx.Logger) *events.Processor {
			return events.NewProcessor(d, planner, drivers, logger)
		},
		newProducer,
	)
}

// publishTo keeps a nil producer out of the interface.
func publishTo(p *kafka.Producer, fallback eventPublisher) eventPublisher {
	if p == nil {
		return fallback
	}
	return p
}
