package di

import (
	"reservas/config"
	"reservas/infras/kafka"
	"reservas/infras/otel"
	"reservas/infras/rabbitmq"
	"reservas/infras/redis"
	"reservas/shared/cache"
	"reservas/shared/constant"
	"reservas/shared/event"

	"github.com/rs/zerolog/log"
)

// ProvideCache dials Redis only when caching is enabled.
func ProvideCache(cfg *config.Config, otl otel.Otel) cache.RedisCache {
	if !cfg.Cache.Enable {
		log.Info().Msg("Cache disabled, using no-op cache")

		return cache.NewNoopCache()
	}

	return cache.NewRedisCache(redis.New(cfg), otl)
}

// ProvidePublisher connects to the broker named by EVENT_BROKER.
func ProvidePublisher(cfg *config.Config, otl otel.Otel) event.Publisher {
	switch cfg.Event.Broker {
	case constant.EventBrokerKafka:
		return event.NewKafkaPublisher(kafka.New(cfg), cfg.Event.Kafka.Topic, otl)
	case constant.EventBrokerRabbitMQ:
		return event.NewRabbitMQPublisher(rabbitmq.New(cfg), cfg.Event.RabbitMQ.Queue, otl)
	case constant.EventBrokerNone, "":
		return event.NewLogPublisher()
	default:
		log.Warn().Str("broker", cfg.Event.Broker).Msg("Unknown event broker, events will only be logged")

		return event.NewLogPublisher()
	}
}
