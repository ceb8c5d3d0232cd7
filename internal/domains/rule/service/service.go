package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Rules=MockRulesService

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"salas/infras/otel"
	"salas/internal/domains/rule/model"
	"salas/internal/domains/rule/model/dto"
	"salas/internal/domains/rule/repository"
	"salas/shared"
	"salas/shared/cache"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"
	gRepo "salas/shared/repository"

	"github.com/rs/zerolog/log"
)

type Rules interface {
	Current(ctx context.Context) (model.Rules, error)
	Get(ctx context.Context) (dto.RulesResponse, error)
	Create(ctx context.Context, req dto.CreateRulesRequest) (dto.RulesResponse, error)
	Update(ctx context.Context, req dto.UpdateRulesRequest) (dto.RulesResponse, error)
}

type serviceImpl struct {
	repo  repository.Rules
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Rules, cache cache.RedisCache, otel otel.Otel) Rules {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

var errRulesExist = failure.Rejection(http.StatusConflict, failure.ReasonInvariantViolation, "reservation rules already exist")

// Current reads the stored rules, or the defaults while none are stored.
func (s *serviceImpl) Current(ctx context.Context) (res model.Rules, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rules.Current")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rules")

		return res, fmt.Errorf("failed to get reservation rules: %w", err)
	}

	if !res.Stored() {
		return model.Default(), nil
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.RulesResponse, err error) {
	rules, err := s.Current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(rules)

	return res, nil
}

// Create stores the rules row. Only one may ever exist.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRulesRequest) (res dto.RulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rules.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rules := req.ToModel(user)

	if err = s.repo.Insert(ctx, rules); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, errRulesExist
		}

		log.Error().Err(err).Msg("failed to create reservation rules")

		return res, fmt.Errorf("failed to create reservation rules: %w", err)
	}

	s.invalidateGrids(ctx)

	res.FromModel(rules)

	return res, nil
}

// invalidateGrids drops every cached grid; they embed the advance window and its navigation.
func (s *serviceImpl) invalidateGrids(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixAvailabilityGrid)
	}()
}

// Update changes the stored rules, storing them first from the defaults when none exist yet.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRulesRequest) (res dto.RulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rules.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.Current(ctx)
	if err != nil {
		return res, err
	}

	updated := req.Apply(current)

	if !current.Stored() {
		days := updated.MaxDaysInAdvance

		return s.Create(ctx, dto.CreateRulesRequest{
			MaxHoursPerDay:        updated.MaxHoursPerDay,
			MaxDaysInAdvance:      &days,
			MaxActiveReservations: updated.MaxActiveReservations,
		})
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", current.ID).Msg("failed to update reservation rules")

		return res, fmt.Errorf("failed to update reservation rules: %w", err)
	}

	updated.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
	updated.ModifiedBy = user

	s.invalidateGrids(ctx)

	res.FromModel(updated)

	return res, nil
}
