package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reservas/config"
	"reservas/infras/otel"
	"reservas/internal/domains/state/model"
	"reservas/internal/domains/state/model/dto"
	"reservas/internal/domains/state/repository"
	"reservas/shared"
	"reservas/shared/cache"
	"reservas/shared/constant"
	gDto "reservas/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllState = "estados"
)

type State interface {
	GetAll(ctx context.Context) ([]dto.StateResponse, error)
}

type serviceImpl struct {
	repo  repository.State
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.State, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) State {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.StateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".state.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllState, "all")

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) ([]dto.StateResponse, error) {
		models, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get states")

			return nil, fmt.Errorf("failed to get states: %w", err)
		}

		return dto.FromModels(models), nil
	})
}
