package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/reservation/model"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Commit(ctx context.Context, reservation model.Reservation, materials []model.ReservationMaterial) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
	ListDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
	ListMaterials(ctx context.Context, reservationIDs []string) ([]model.RequestedMaterial, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db        *postgres.Connection
	otel      otel.Otel
	details   gRepo.Repository[model.Detail]
	materials gRepo.Repository[model.ReservationMaterial]
	requested gRepo.Repository[model.RequestedMaterial]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		materials:  gRepo.NewRepository[model.ReservationMaterial](model.MaterialEntity, model.MaterialTableName, model.FieldReservationID, db, otel),
		requested:  gRepo.NewRepository[model.RequestedMaterial](model.MaterialEntity, model.MaterialTableName, model.FieldReservationID, db, otel),
	}
}

// Commit writes the reservation and its material links in one transaction.
// A lost race on the slot constraint leaves a *pq.Error with code 23505 in the returned chain.
func (r *repositoryImpl) Commit(ctx context.Context, reservation model.Reservation, materials []model.ReservationMaterial) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Commit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return gRepo.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, reservation); err != nil {
			return err
		}

		if len(materials) == 0 {
			return nil
		}

		return r.materials.InsertBulkTx(ctx, tx, materials)
	})
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	detail, err := r.details.Get(ctx, filter)
	if err != nil {
		return detail, fmt.Errorf("failed to get reservation detail: %w", err)
	}

	return detail, nil
}

func (r *repositoryImpl) ListDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	details, err := r.details.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation details: %w", err)
	}

	return details, nil
}

// ListMaterials returns the materials requested by any of the reservations.
func (r *repositoryImpl) ListMaterials(ctx context.Context, reservationIDs []string) ([]model.RequestedMaterial, error) {
	if len(reservationIDs) == 0 {
		return []model.RequestedMaterial{}, nil
	}

	params := gDto.QueryParams{SortBy: "materials.name", SortDir: gDto.SortDirAsc}
	materials, err := r.requested.GetAll(ctx, params, gDto.And(gDto.In(model.MaterialTableName, model.FieldReservationID, reservationIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation materials: %w", err)
	}

	return materials, nil
}
