package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=TimeBlock=MockTimeBlockService

import (
	"context"
	"fmt"

	"salas/config"
	"salas/infras/otel"
	"salas/internal/domains/timeblock/model"
	"salas/internal/domains/timeblock/model/dto"
	"salas/internal/domains/timeblock/repository"
	"salas/shared"
	"salas/shared/cache"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheActiveForDay = "time_block:day"
)

type TimeBlock interface {
	Get(ctx context.Context, id string) (model.TimeBlock, error)
	ListActiveForDay(ctx context.Context, day model.DayOfWeek) ([]model.TimeBlock, error)
	ListForDay(ctx context.Context, req dto.ListTimeBlocksRequest) (dto.TimeBlocksResponse, error)
}

type serviceImpl struct {
	repo  repository.TimeBlock
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.TimeBlock, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) TimeBlock {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the block with id whether active or not, failing with NotFound when it does not exist.
func (s *serviceImpl) Get(ctx context.Context, id string) (res model.TimeBlock, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimeBlock.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get time block")

		return res, fmt.Errorf("failed to get time block: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("time block not found") // nolint:wrapcheck
	}

	return res, nil
}

// ListActiveForDay returns the active blocks of a weekday ordered by start time.
func (s *serviceImpl) ListActiveForDay(ctx context.Context, day model.DayOfWeek) (res []model.TimeBlock, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimeBlock.ListActiveForDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheActiveForDay, string(day)), s.cfg.Cache.TTL,
		func(ctx context.Context) ([]model.TimeBlock, error) {
			params := gDto.QueryParams{
				SortBy:  model.TableName + "." + model.FieldStartTime,
				SortDir: gDto.SortDirAsc,
			}

			filter := gDto.And(
				gDto.Eq(model.TableName, model.FieldDayOfWeek, string(day)),
				gDto.Eq(model.TableName, model.FieldIsActive, true),
			)

			blocks, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				log.Error().Err(err).Str("day", string(day)).Msg("failed to list time blocks")

				return nil, fmt.Errorf("failed to list time blocks: %w", err)
			}

			return blocks, nil
		})
}

func (s *serviceImpl) ListForDay(ctx context.Context, req dto.ListTimeBlocksRequest) (res dto.TimeBlocksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimeBlock.ListForDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, ok := model.ParseDayOfWeek(req.Day)
	if !ok {
		return res, failure.BadRequestFromString("day must be a day of the week such as monday") // nolint:wrapcheck
	}

	blocks, err := s.ListActiveForDay(ctx, day)
	if err != nil {
		return res, err
	}

	res.FromModels(day, blocks)

	return res, nil
}
