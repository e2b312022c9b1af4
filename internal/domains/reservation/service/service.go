package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"reservas/config"
	"reservas/infras/otel"
	annotationRepository "reservas/internal/domains/annotation/repository"
	"reservas/internal/domains/reservation/model"
	"reservas/internal/domains/reservation/model/dto"
	"reservas/internal/domains/reservation/repository"
	roomModel "reservas/internal/domains/room/model"
	roomRepository "reservas/internal/domains/room/repository"
	stateModel "reservas/internal/domains/state/model"
	stateRepository "reservas/internal/domains/state/repository"
	"reservas/shared"
	"reservas/shared/cache"
	"reservas/shared/constant"
	gDto "reservas/shared/dto"
	"reservas/shared/event"
	"reservas/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgReservationNotFound = "reservation not found"
)

type Reservation interface {
	ListViews(ctx context.Context) ([]dto.ReservationView, error)
	GetView(ctx context.Context, id int64) (dto.ReservationView, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.UpdateReservationRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo           repository.Reservation
	annotationRepo annotationRepository.Annotation
	roomRepo       roomRepository.Room
	stateRepo      stateRepository.State
	cfg            *config.Config
	cache          cache.RedisCache
	publisher      event.Publisher
	otel           otel.Otel
}

func New(
	repo repository.Reservation,
	annotationRepo annotationRepository.Annotation,
	roomRepo roomRepository.Room,
	stateRepo stateRepository.State,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher event.Publisher,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:           repo,
		annotationRepo: annotationRepo,
		roomRepo:       roomRepo,
		stateRepo:      stateRepo,
		cfg:            cfg,
		cache:          cache,
		publisher:      publisher,
		otel:           otel,
	}
}

// ListViews returns every reservation in id order with resolved names and annotations.
func (s *serviceImpl) ListViews(ctx context.Context) (res []dto.ReservationView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListViews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.RememberGeneration(ctx, s.cache, model.CacheKeyViews, "all", s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.ReservationView, error) {
		return s.loadViews(ctx, gDto.FilterGroup{})
	})
}

func (s *serviceImpl) GetView(ctx context.Context, id int64) (res dto.ReservationView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetView")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.RememberGeneration(ctx, s.cache, model.CacheKeyViews, strconv.FormatInt(id, 10), s.cfg.Cache.TTL, func(ctx context.Context) (dto.ReservationView, error) {
		views, err := s.loadViews(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return dto.ReservationView{}, err
		}

		if len(views) == 0 {
			return dto.ReservationView{}, failure.NotFound(msgReservationNotFound) // nolint:wrapcheck
		}

		return views[0], nil
	})
}

// loadViews reads the reservations matching filter and then, in a second query, their annotations.
func (s *serviceImpl) loadViews(ctx context.Context, filter gDto.FilterGroup) ([]dto.ReservationView, error) {
	reservations, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	if len(reservations) == 0 {
		return []dto.ReservationView{}, nil
	}

	annotations, err := s.annotationRepo.GetByReservationIDs(ctx, dto.ReservationIDs(reservations))
	if err != nil {
		log.Error().Err(err).Msg("failed to get annotations")

		return nil, fmt.Errorf("failed to get annotations: %w", err)
	}

	return dto.BuildViews(reservations, annotations), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := req.ToModel()
	if err != nil {
		return 0, err
	}

	if err = s.checkReferences(ctx, req.RoomID, req.StateID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, reservation)
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return 0, failure.BadRequestFromString("room or state does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return 0, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.afterMutation(ctx, event.TypeReservationCreated, id, req)

	return id, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	update, err := req.ToUpdate()
	if err != nil {
		return err
	}

	columns := update.Columns()
	if len(columns) == 0 {
		return failure.EmptyUpdateRequest
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == 0 {
		return failure.NotFound(msgReservationNotFound) // nolint:wrapcheck
	}

	if err = update.CheckDates(current); err != nil {
		return err
	}

	if err = s.checkReferences(ctx, update.RoomID, update.StateID); err != nil {
		return err
	}

	affected, err := s.repo.Update(ctx, columns, filter)
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("room or state does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgReservationNotFound) // nolint:wrapcheck
	}

	s.afterMutation(ctx, event.TypeReservationUpdated, id, req)

	return nil
}

// Delete removes the reservation and its annotations in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.annotationRepo.DeleteTx(ctx, tx, annotationRepository.ReservationFilter(id)); err != nil {
			return fmt.Errorf("failed to delete annotations: %w", err)
		}

		affected, err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete reservation: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(msgReservationNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("id", id).Msg("failed to delete reservation")
		}

		return err
	}

	s.afterMutation(ctx, event.TypeReservationDeleted, id, nil)

	return nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, roomID, stateID *int64) error {
	if roomID != nil {
		exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(*roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room existence")

			return fmt.Errorf("failed to check room existence: %w", err)
		}

		if !exist {
			return failure.BadRequestf("room %d does not exist", *roomID) // nolint:wrapcheck
		}
	}

	if stateID != nil {
		exist, err := s.stateRepo.Exist(ctx, shared.FilterByID(*stateID, stateModel.FieldID, stateModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check state existence")

			return fmt.Errorf("failed to check state existence: %w", err)
		}

		if !exist {
			return failure.BadRequestf("state %d does not exist", *stateID) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) afterMutation(ctx context.Context, eventType string, id int64, data any) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CacheKeyViews)

	event.PublishAsync(ctx, s.publisher, event.New(ctx, eventType, id, data))
}
