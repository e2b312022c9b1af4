package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reservas/infras/otel"
	"reservas/internal/domains/annotation/model"
	"reservas/internal/domains/annotation/model/dto"
	"reservas/internal/domains/annotation/repository"
	reservationModel "reservas/internal/domains/reservation/model"
	reservationRepository "reservas/internal/domains/reservation/repository"
	"reservas/shared"
	"reservas/shared/cache"
	"reservas/shared/constant"
	"reservas/shared/event"
	"reservas/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgAnnotationNotFound  = "annotation not found"
	msgReservationNotFound = "reservation %d does not exist"
)

type Annotation interface {
	Create(ctx context.Context, req dto.CreateAnnotationRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo            repository.Annotation
	reservationRepo reservationRepository.Reservation
	cache           cache.RedisCache
	publisher       event.Publisher
	otel            otel.Otel
}

func New(
	repo repository.Annotation,
	reservationRepo reservationRepository.Reservation,
	cache cache.RedisCache,
	publisher event.Publisher,
	otel otel.Otel,
) Annotation {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cache:           cache,
		publisher:       publisher,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAnnotationRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".annotation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.reservationRepo.Exist(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation existence")

		return 0, fmt.Errorf("failed to check reservation existence: %w", err)
	}

	if !exist {
		return 0, failure.BadRequestf(msgReservationNotFound, req.ReservationID) // nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return 0, failure.BadRequestf(msgReservationNotFound, req.ReservationID) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create annotation")

		return 0, fmt.Errorf("failed to create annotation: %w", err)
	}

	s.afterMutation(ctx, event.TypeAnnotationCreated, id, req)

	return id, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".annotation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete annotation")

		return fmt.Errorf("failed to delete annotation: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgAnnotationNotFound) // nolint:wrapcheck
	}

	s.afterMutation(ctx, event.TypeAnnotationDeleted, id, nil)

	return nil
}

// afterMutation drops the cached reservation views since they embed annotations.
func (s *serviceImpl) afterMutation(ctx context.Context, eventType string, id int64, data any) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, reservationModel.CacheKeyViews)

	event.PublishAsync(ctx, s.publisher, event.New(ctx, eventType, id, data))
}
