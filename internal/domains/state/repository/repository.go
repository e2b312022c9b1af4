package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reservas/infras/otel"
	"reservas/infras/postgres"
	"reservas/internal/domains/state/model"
	gDto "reservas/shared/dto"
	gRepo "reservas/shared/repository"
)

type State interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.State, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.State]
}

func New(db *postgres.Connection, otel otel.Otel) State {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.State](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
