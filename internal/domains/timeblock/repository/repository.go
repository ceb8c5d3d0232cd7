package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/timeblock/model"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type TimeBlock interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TimeBlock, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeBlock, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TimeBlock]
}

func New(db *postgres.Connection, otel otel.Otel) TimeBlock {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TimeBlock](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
