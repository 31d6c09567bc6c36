package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/live"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/events"
	"service-gas-delivery/internal/transport/kafka"
)

type liveConsumerOut struct {
	dig.Out
	Consumer *kafka.Consumer `name:"live_consumer"`
}

type liveConsumerIn struct {
	dig.In
	Cfg      *config.Config
	Logger   logx.Logger
	Hub      *live.Hub
	Consumed *prometheus.CounterVec `name:"events_consumed_total"`
}

// newLiveConsumer feeds the hub from Kafka; nil when Kafka is disabled.
func newLiveConsumer(in liveConsumerIn) (liveConsumerOut, error) {
	k := in.Cfg.Kafka
	if !k.Enabled() {
		return liveConsumerOut{}, nil
	}
	c, err := kafka.NewConsumer(in.Logger, k.Brokers, k.LiveGroup, k.Topic, makeLiveKafka(in.Hub, in.Consumed))
	if err != nil {
		return liveConsumerOut{}, err
	}
	return liveConsumerOut{Consumer: c}, nil
}

// registerLive wires the publisher of the HTTP service: Kafka when enabled,
// otherwise the hub plus the in-process worker pipeline.
func registerLive(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger) *live.Hub {
			return live.NewHub(logger.With(logx.String("component", "live")), live.DefaultConfig())
		},
		func(logger logx.Logger, timeout time.Duration) *localBus {
			return newLocalBus(logger.With(logx.String("component", "local_bus")), timeout)
		},
		func(p *kafka.Producer, hub *live.Hub, bus *localBus) eventPublisher {
			return publishTo(p, events.Fanout{hub, bus})
		},
		newLiveConsumer,
	)
}
