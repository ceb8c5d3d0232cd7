package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/material/model"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type Material interface {
	ListByIDs(ctx context.Context, ids []string) ([]model.Material, error)
	ListOfferedByRoom(ctx context.Context, roomID string) ([]model.OfferedMaterial, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Material]
	offered gRepo.Repository[model.OfferedMaterial]
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Material {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Material](model.EntityName, model.TableName, model.FieldID, db, otel),
		offered:    gRepo.NewRepository[model.OfferedMaterial](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ListByIDs returns the materials among ids that exist, ordered by name.
func (r *repositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]model.Material, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".material.ListByIDs")
	defer scope.End()

	if len(ids) == 0 {
		return []model.Material{}, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.And(gDto.In(model.TableName, model.FieldID, ids))

	materials, err := r.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	return materials, nil
}

// ListOfferedByRoom returns the active materials a room offers, ordered by name.
func (r *repositoryImpl) ListOfferedByRoom(ctx context.Context, roomID string) ([]model.OfferedMaterial, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".material.ListOfferedByRoom")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.And(
		gDto.Eq(model.RoomMaterialsTable, model.FieldRoomID, roomID),
		gDto.Eq(model.TableName, model.FieldIsActive, true),
	)

	materials, err := r.offered.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list room materials: %w", err)
	}

	return materials, nil
}
