package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"salas/config"
	"salas/infras/otel"
	materialRepository "salas/internal/domains/material/repository"
	"salas/internal/domains/room/model"
	"salas/internal/domains/room/model/dto"
	"salas/internal/domains/room/repository"
	"salas/shared"
	"salas/shared/cache"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Get(ctx context.Context, id string) (model.Room, error)
	ListPublicActive(ctx context.Context) ([]model.Room, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	GetDetail(ctx context.Context, id string) (dto.RoomDetailResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	materials materialRepository.Material
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, materials materialRepository.Material, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		materials: materials,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func publicActiveFilter() gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldIsPublic, true),
		gDto.Eq(model.TableName, model.FieldIsActive, true),
	)
}

// Get returns the room with id in whatever state it is; callers decide what inactive means to them.
func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return res, nil
}

// ListPublicActive returns every bookable public room ordered by name.
func (s *serviceImpl) ListPublicActive(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.ListPublicActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	res, err = s.repo.GetAll(ctx, params, publicActiveFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to list public rooms")

		return nil, fmt.Errorf("failed to list public rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scoped := publicActiveFilter()
	if len(filter.Filters) > 0 {
		scoped.Filters = append(scoped.Filters, filter)
	}

	if req.SortBy == constant.Empty {
		req.SortBy = model.TableName + "." + model.FieldName
		req.SortDir = gDto.SortDirAsc
	}

	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, scoped), s.cfg.Cache.TTL,
		func(ctx context.Context) (res dto.GetRoomsResponse, err error) {
			total, err := s.count(ctx, req, scoped)
			if err != nil {
				return res, err
			}

			models, err := s.repo.GetAll(ctx, req, scoped)
			if err != nil {
				log.Error().Err(err).Msg("failed to get rooms")

				return res, fmt.Errorf("failed to get rooms: %w", err)
			}

			res.FromModels(models, total, req.Limit)

			return res, nil
		})
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	return cache.Remember(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (int, error) {
			total, err := s.repo.Count(ctx, filter)
			if err != nil {
				log.Error().Err(err).Msg("failed to count rooms")

				return 0, fmt.Errorf("failed to count rooms: %w", err)
			}

			return total, nil
		})
}

// GetDetail returns an active room with the active materials it offers.
func (s *serviceImpl) GetDetail(ctx context.Context, id string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetDetail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetRoom, id), s.cfg.Cache.TTL,
		func(ctx context.Context) (res dto.RoomDetailResponse, err error) {
			room, err := s.Get(ctx, id)
			if err != nil {
				return res, err
			}

			if !room.IsActive {
				return res, failure.NotFound("room not found") // nolint:wrapcheck
			}

			materials, err := s.materials.ListOfferedByRoom(ctx, room.ID)
			if err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to get room materials")

				return res, fmt.Errorf("failed to get room materials: %w", err)
			}

			res.FromModel(room, materials)

			return res, nil
		})
}
