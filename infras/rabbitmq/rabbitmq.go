package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservas/config"
	"reservas/shared/constant"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Client publishes persistent JSON messages to durable queues on the default exchange.
type Client interface {
	Publish(ctx context.Context, queue string, body []byte) error
	Close() error
}

type rabbitClientImpl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	declared map[string]bool
}

func New(config *config.Config) Client {
	conn, err := amqp.Dial(config.Event.RabbitMQ.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open RabbitMQ channel")
	}

	log.Info().Str("queue", config.Event.RabbitMQ.Queue).Msg("Connected to RabbitMQ")

	return &rabbitClientImpl{
		conn:     conn,
		channel:  channel,
		declared: map[string]bool{},
	}
}

func (r *rabbitClientImpl) Publish(ctx context.Context, queue string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.declared[queue] {
		if _, err := r.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Failed to declare RabbitMQ queue")

			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}

		r.declared[queue] = true
	}

	err := r.channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to publish to RabbitMQ")

		return fmt.Errorf("failed to publish to queue %s: %w", queue, err)
	}

	return nil
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.channel.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close RabbitMQ channel")
	}

	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
	}

	return nil
}
