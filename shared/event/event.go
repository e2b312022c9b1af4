// Package event publishes domain events after successful mutations.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservas/shared/logger"
	"reservas/shared/timezone"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeReservationCreated = "reservation.created"
	TypeReservationUpdated = "reservation.updated"
	TypeReservationDeleted = "reservation.deleted"
	TypeAnnotationCreated  = "annotation.created"
	TypeAnnotationDeleted  = "annotation.deleted"
)

type Event struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entityId"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

func New(ctx context.Context, eventType string, entityID int64, data any) Event {
	return Event{
		Type:       eventType,
		EntityID:   entityID,
		RequestID:  logger.RequestID(ctx),
		OccurredAt: timezone.Now(),
		Data:       data,
	}
}

// Key groups events of one entity, e.g. "reservation:12".
func (e Event) Key() string {
	entity, _, _ := strings.Cut(e.Type, ".")

	return fmt.Sprintf("%s:%d", entity, e.EntityID)
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// PublishAsync publishes evt in the background. Failures are logged and never reach the caller.
func PublishAsync(ctx context.Context, publisher Publisher, evt Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, evt); err != nil {
			log.Error().Err(err).Str("type", evt.Type).Int64("entityId", evt.EntityID).Msg("failed to publish event")
		}
	}()
}
