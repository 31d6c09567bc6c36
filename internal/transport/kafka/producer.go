package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"service-gas-delivery/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes domain events to a single topic.
type Producer struct {
	producer  sarama.SyncProducer
	topic     string
	published *prometheus.CounterVec
}

// NewProducer creates a Producer. It returns nil when Kafka is not configured.
func NewProducer(brokers []string, topic string, published *prometheus.CounterVec) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newProducer(p, topic, published), nil
}

func newProducer(p sarama.SyncProducer, topic string, published *prometheus.CounterVec) *Producer {
	return &Producer{producer: p, topic: topic, published: published}
}

// Publish sends ev keyed by its request id, or by driver id for location
// events, so that events of one subject stay ordered.
func (p *Producer) Publish(ctx context.Context, ev domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(eventKey(ev)),
		Value: sarama.ByteEncoder(b),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send event %s: %w", ev.Type, err)
	}
	if p.published != nil {
		p.published.WithLabelValues(string(ev.Type)).Inc()
	}
	return nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

func eventKey(ev domain.Event) string {
	if ev.Type == domain.EventDriverLocation && ev.DriverID != nil {
		return ev.DriverID.String()
	}
	return ev.RequestID.String()
}
