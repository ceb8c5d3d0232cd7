package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/profile/model"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type Profile interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserProfile, error)
}

type Role interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Role, error)
}

type profileRepository struct {
	gRepo.Repository[model.UserProfile]
}

type roleRepository struct {
	gRepo.Repository[model.Role]
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	return &profileRepository{
		Repository: gRepo.NewRepository[model.UserProfile](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewRole(db *postgres.Connection, otel otel.Otel) Role {
	return &roleRepository{
		Repository: gRepo.NewRepository[model.Role](model.RoleEntity, model.RoleTableName, model.FieldID, db, otel),
	}
}
