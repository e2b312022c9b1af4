package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reservas/config"
	"reservas/infras/otel"
	"reservas/internal/domains/room/model"
	"reservas/internal/domains/room/model/dto"
	"reservas/internal/domains/room/repository"
	"reservas/shared"
	"reservas/shared/cache"
	"reservas/shared/constant"
	gDto "reservas/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom = "casas"
)

type Room interface {
	GetAll(ctx context.Context) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllRoom, "all")

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.RoomResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return nil, fmt.Errorf("failed to get rooms: %w", err)
		}

		return dto.FromModels(models), nil
	})
}
