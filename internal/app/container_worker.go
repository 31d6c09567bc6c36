package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/repository"
	"service-gas-delivery/internal/service/events"
	"service-gas-delivery/internal/transport/kafka"
)

type workerConsumerOut struct {
	dig.Out
	Consumer *kafka.Consumer `name:"worker_consumer"`
}

type workerConsumerIn struct {
	dig.In
	Cfg       *config.Config
	Logger    logx.Logger
	Processor *events.Processor
	Requests  *repository.RequestRepo
	Consumed  *prometheus.CounterVec `name:"events_consumed_total"`
}

func newWorkerConsumer(in workerConsumerIn) (workerConsumerOut, error) {
	k := in.Cfg.Kafka
	if !k.Enabled() {
		return workerConsumerOut{}, nil
	}
	c, err := kafka.NewConsumer(in.Logger, k.Brokers, k.WorkerGroup, k.Topic,
		makeEventsKafka(in.Processor, in.Requests, in.Consumed))
	if err != nil {
		return workerConsumerOut{}, err
	}
	return workerConsumerOut{Consumer: c}, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(p *kafka.Producer) eventPublisher {
			return publishTo(p, events.Nop{})
		},
		newWorkerConsumer,
	)
}
