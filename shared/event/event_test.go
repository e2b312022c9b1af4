package event_test

import (
	"context"
	"encoding/json"
	"errors"
	kafkaMocks "reservas/infras/kafka/mocks"
	otelMocks "reservas/infras/otel/mocks"
	rabbitMocks "reservas/infras/rabbitmq/mocks"
	"reservas/infras/kafka"
	"reservas/shared/event"
	eventMocks "reservas/shared/event/mocks"
	"reservas/shared/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctx := logger.WithRequestID(context.Background(), "req-9")

	evt := event.New(ctx, event.TypeReservationCreated, 12, map[string]any{"name": "Reserva 1"})

	assert.Equal(t, event.TypeReservationCreated, evt.Type)
	assert.Equal(t, int64(12), evt.EntityID)
	assert.Equal(t, "req-9", evt.RequestID)
	assert.False(t, evt.OccurredAt.IsZero())
	assert.Equal(t, "reservation:12", evt.Key())
	assert.Equal(t, "annotation:3", event.Event{Type: event.TypeAnnotationDeleted, EntityID: 3}.Key())
}

func TestKafkaPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.NewKafkaPublisher(client, "reservas.events", otelMocks.NewOtel())

	evt := event.Event{Type: event.TypeReservationDeleted, EntityID: 4}

	client.EXPECT().
		SendMessages(gomock.Any(), "reservas.events", kafka.Message{Key: "reservation:4", Value: evt}).
		Return(nil)
	require.NoError(t, publisher.Publish(context.Background(), evt))

	sendErr := errors.New("broker down")
	client.EXPECT().SendMessages(gomock.Any(), "reservas.events", gomock.Any()).Return(sendErr)
	assert.ErrorIs(t, publisher.Publish(context.Background(), evt), sendErr)

	client.EXPECT().Close().Return(nil)
	assert.NoError(t, publisher.Close())
}

func TestRabbitMQPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := rabbitMocks.NewMockClient(ctrl)
	publisher := event.NewRabbitMQPublisher(client, "reservas.events", otelMocks.NewOtel())

	evt := event.Event{Type: event.TypeAnnotationCreated, EntityID: 8, OccurredAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}

	client.EXPECT().Publish(gomock.Any(), "reservas.events", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body []byte) error {
			var decoded map[string]any
			require.NoError(t, json.Unmarshal(body, &decoded))
			assert.Equal(t, "annotation.created", decoded["type"])
			assert.InDelta(t, 8, decoded["entityId"], 0)

			return nil
		})

	require.NoError(t, publisher.Publish(context.Background(), evt))
}

func TestLogPublisher(t *testing.T) {
	publisher := event.NewLogPublisher()

	assert.NoError(t, publisher.Publish(context.Background(), event.Event{Type: event.TypeReservationUpdated, EntityID: 1}))
	assert.NoError(t, publisher.Close())
}

func TestPublishAsync(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := eventMocks.NewMockPublisher(ctrl)

	done := make(chan struct{})
	evt := event.Event{Type: event.TypeReservationCreated, EntityID: 1}

	ctx, cancel := context.WithCancel(context.Background())

	publisher.EXPECT().Publish(gomock.Any(), evt).DoAndReturn(func(ctx context.Context, _ event.Event) error {
		defer close(done)

		assert.NoError(t, ctx.Err())

		return errors.New("ignored")
	})

	event.PublishAsync(ctx, publisher, evt)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}
