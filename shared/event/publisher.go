package event

import (
	"context"
	"encoding/json"
	"fmt"
	"reservas/infras/kafka"
	"reservas/infras/otel"
	"reservas/infras/rabbitmq"
	"reservas/shared/constant"

	"github.com/rs/zerolog/log"
)

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewKafkaPublisher(client kafka.Client, topic string, otl otel.Otel) Publisher {
	return &kafkaPublisher{client: client, topic: topic, otel: otl}
}

func (p *kafkaPublisher) Publish(ctx context.Context, evt Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".kafka.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", evt.Type)

	if err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.Key(), Value: evt}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.client.Close() //nolint:wrapcheck
}

type rabbitMQPublisher struct {
	client rabbitmq.Client
	queue  string
	otel   otel.Otel
}

func NewRabbitMQPublisher(client rabbitmq.Client, queue string, otl otel.Otel) Publisher {
	return &rabbitMQPublisher{client: client, queue: queue, otel: otl}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, evt Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", evt.Type)

	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", evt.Type, err)
	}

	if err = p.client.Publish(ctx, p.queue, body); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.client.Close() //nolint:wrapcheck
}

type logPublisher struct{}

// NewLogPublisher returns a publisher that only writes events to the log.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Publish(_ context.Context, evt Event) error {
	log.Info().Str("type", evt.Type).Str("key", evt.Key()).Str("requestId", evt.RequestID).Msg("domain event")

	return nil
}

func (logPublisher) Close() error {
	return nil
}
