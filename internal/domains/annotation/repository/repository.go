package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservas/infras/otel"
	"reservas/infras/postgres"
	"reservas/internal/domains/annotation/model"
	"reservas/shared/constant"
	gDto "reservas/shared/dto"
	gRepo "reservas/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Annotation interface {
	Insert(ctx context.Context, model model.Annotation) (int64, error)
	GetByReservationIDs(ctx context.Context, ids []int64) ([]model.Annotation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Annotation]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Annotation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Annotation](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetByReservationIDs returns the annotations of the given reservations ordered by id.
// No query is issued for an empty id list.
func (r *repositoryImpl) GetByReservationIDs(ctx context.Context, ids []int64) ([]model.Annotation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByReservationIDs", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if len(ids) == 0 {
		return []model.Annotation{}, nil
	}

	return r.GetAll(ctx, //nolint:wrapcheck
		gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc),
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldReservationID,
					Value:    ids,
					Operator: gDto.FilterOperatorIn,
					Table:    model.TableName,
				},
			},
		},
	)
}

// ReservationFilter selects every annotation of a reservation.
func ReservationFilter(reservationID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Value:    reservationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
