package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/rule/model"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type Rules interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rules, error)
	Insert(ctx context.Context, rules model.Rules) error
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Rules]
}

func New(db *postgres.Connection, otel otel.Otel) Rules {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rules](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
