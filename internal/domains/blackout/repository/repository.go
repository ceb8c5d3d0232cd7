package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/blackout/model"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type Blackout interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomUnavailability, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomUnavailability]
}

func New(db *postgres.Connection, otel otel.Otel) Blackout {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomUnavailability](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
