package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Profile=MockProfileService

import (
	"context"
	"fmt"

	"salas/infras/otel"
	"salas/internal/domains/profile/model"
	"salas/internal/domains/profile/repository"
	"salas/shared/constant"
	gDto "salas/shared/dto"

	"github.com/rs/zerolog/log"
)

type Profile interface {
	Resolve(ctx context.Context, userID, tokenRole string) (model.Capability, error)
}

type serviceImpl struct {
	profiles repository.Profile
	roles    repository.Role
	otel     otel.Otel
}

func New(profiles repository.Profile, roles repository.Role, otel otel.Otel) Profile {
	return &serviceImpl{
		profiles: profiles,
		roles:    roles,
		otel:     otel,
	}
}

// Resolve builds the caller's capability from their active profile. Without one it
// falls back to the role named in the token, and then to the student defaults.
func (s *serviceImpl) Resolve(ctx context.Context, userID, tokenRole string) (res model.Capability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile.Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.profiles.Get(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldUserID, userID),
		gDto.Eq(model.TableName, model.FieldIsActive, true),
	))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user profile")

		return res, fmt.Errorf("failed to get user profile: %w", err)
	}

	if profile.ID != constant.Empty {
		return profile.Capability(), nil
	}

	if tokenRole == constant.Empty {
		return model.StudentCapability(userID), nil
	}

	role, err := s.roles.Get(ctx, gDto.And(gDto.Eq(model.RoleTableName, model.FieldName, tokenRole)))
	if err != nil {
		log.Error().Err(err).Str("role", tokenRole).Msg("failed to get role")

		return res, fmt.Errorf("failed to get role: %w", err)
	}

	if role.ID == constant.Empty {
		log.Warn().Str("user_id", userID).Str("role", tokenRole).Msg("unknown role in token, using student defaults")

		return model.StudentCapability(userID), nil
	}

	return role.CapabilityFor(userID), nil
}
