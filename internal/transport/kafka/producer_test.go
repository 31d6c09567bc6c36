package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/metrics"
)

func newMockProducer(t *testing.T) *mocks.SyncProducer {
	t.Helper()
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	return mocks.NewSyncProducer(t, cfg)
}

func TestProducer_Publish_KeyedByRequest(t *testing.T) {
	t.Parallel()

	mp := newMockProducer(t)
	published := metrics.NewEventsPublishedTotal()
	p := newProducer(mp, "gas.events", published)
	t.Cleanup(func() { require.NoError(t, p.Close()) })

	req := domain.DeliveryRequest{ID: uuid.New(), Status: domain.RequestPending}
	mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "gas.events" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != req.ID.String() {
			return errors.New("wrong key " + string(key))
		}
		val, _ := msg.Value.Encode()
		var dto EventDTO
		if err := json.Unmarshal(val, &dto); err != nil {
			return err
		}
		if dto.Status != "pending" || dto.Request == nil {
			return errors.New("unexpected payload")
		}
		return nil
	})

	require.NoError(t, p.Publish(context.Background(), domain.RequestEvent(domain.EventRequestCreated, req, req.CreatedAt)))
	require.Equal(t, float64(1), testutil.ToFloat64(published.WithLabelValues(string(domain.EventRequestCreated))))
}

func TestProducer_Publish_DriverLocationKeyedByDriver(t *testing.T) {
	t.Parallel()

	mp := newMockProducer(t)
	p := newProducer(mp, "gas.events", nil)
	t.Cleanup(func() { require.NoError(t, p.Close()) })

	driverID := uuid.New()
	mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, _ := msg.Key.Encode()
		if string(key) != driverID.String() {
			return errors.New("wrong key " + string(key))
		}
		return nil
	})

	require.NoError(t, p.Publish(context.Background(), domain.DriverLocationEvent(driverID, domain.Location{Lat: 1, Lng: 1}, time.Time{})))
}

func TestProducer_Publish_SendFails(t *testing.T) {
	t.Parallel()

	mp := newMockProducer(t)
	published := metrics.NewEventsPublishedTotal()
	p := newProducer(mp, "gas.events", published)
	t.Cleanup(func() { require.NoError(t, p.Close()) })

	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := p.Publish(context.Background(), domain.Event{Type: domain.EventRequestUpdated, RequestID: uuid.New()})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.Zero(t, testutil.ToFloat64(published.WithLabelValues(string(domain.EventRequestUpdated))))
}

func TestProducer_Publish_CancelledContext(t *testing.T) {
	t.Parallel()

	mp := newMockProducer(t)
	p := newProducer(mp, "gas.events", nil)
	t.Cleanup(func() { require.NoError(t, p.Close()) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, domain.Event{}), context.Canceled)
}

func TestNewProducer_SkipsWhenNoKafkaConfig(t *testing.T) {
	t.Parallel()

	p, err := NewProducer(nil, "topic", nil)
	require.NoError(t, err)
	require.Nil(t, p)
	require.NoError(t, p.Close())

	p, err = NewProducer([]string{"b:9092"}, " ", nil)
	require.NoError(t, err)
	require.Nil(t, p)
}
