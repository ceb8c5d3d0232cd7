package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"time"

	"salas/config"
	"salas/infras/otel"
	"salas/internal/domains/availability/model"
	"salas/internal/domains/availability/model/dto"
	blackoutService "salas/internal/domains/blackout/service"
	reservationModel "salas/internal/domains/reservation/model"
	reservationRepository "salas/internal/domains/reservation/repository"
	roomService "salas/internal/domains/room/service"
	ruleService "salas/internal/domains/rule/service"
	timeBlockModel "salas/internal/domains/timeblock/model"
	timeBlockService "salas/internal/domains/timeblock/service"
	"salas/shared"
	"salas/shared/cache"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"
	"salas/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	SlotState(ctx context.Context, roomID string, date time.Time, timeBlockID string) (model.SlotState, error)
	GetSlotState(ctx context.Context, req dto.SlotStateRequest) (dto.SlotStateResponse, error)
	BuildGrid(ctx context.Context, date time.Time) (dto.GridResponse, error)
	GetGrid(ctx context.Context, rawDate string) (dto.GridResponse, error)
	InvalidateGrid(ctx context.Context, date time.Time)
}

type serviceImpl struct {
	rooms        roomService.Room
	timeBlocks   timeBlockService.TimeBlock
	blackouts    blackoutService.Blackout
	reservations reservationRepository.Reservation
	rules        ruleService.Rules
	cfg          *config.Config
	cache        cache.RedisCache
	clock        timezone.Clock
	otel         otel.Otel
}

func New(
	rooms roomService.Room,
	timeBlocks timeBlockService.TimeBlock,
	blackouts blackoutService.Blackout,
	reservations reservationRepository.Reservation,
	rules ruleService.Rules,
	cfg *config.Config,
	cache cache.RedisCache,
	clock timezone.Clock,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		rooms:        rooms,
		timeBlocks:   timeBlocks,
		blackouts:    blackouts,
		reservations: reservations,
		rules:        rules,
		cfg:          cfg,
		cache:        cache,
		clock:        clock,
		otel:         otel,
	}
}

func activeOnDate(date time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(reservationModel.TableName, reservationModel.FieldDate, timezone.FormatDate(date)),
		gDto.In(reservationModel.TableName, reservationModel.FieldStatus, reservationModel.ActiveStatuses),
	)
}

// SlotState resolves one slot. The blackout is checked first so a blocked slot
// never costs a reservation lookup.
func (s *serviceImpl) SlotState(ctx context.Context, roomID string, date time.Time, timeBlockID string) (res model.SlotState, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.SlotState")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	blocked, err := s.blackouts.IsBlocked(ctx, roomID, date, timeBlockID)
	if err != nil {
		return res, err
	}

	if blocked {
		return model.SlotStateBlocked, nil
	}

	filter := activeOnDate(date)
	filter.Filters = append(filter.Filters,
		gDto.Eq(reservationModel.TableName, reservationModel.FieldRoomID, roomID),
		gDto.Eq(reservationModel.TableName, reservationModel.FieldTimeBlockID, timeBlockID),
	)

	booked, err := s.reservations.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("time_block_id", timeBlockID).Msg("failed to check reservation")

		return res, fmt.Errorf("failed to check reservation: %w", err)
	}

	return model.StateOf(false, booked), nil
}

func (s *serviceImpl) GetSlotState(ctx context.Context, req dto.SlotStateRequest) (res dto.SlotStateResponse, err error) {
	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	state, err := s.SlotState(ctx, req.RoomID, date, req.TimeBlockID)
	if err != nil {
		return res, err
	}

	return dto.SlotStateResponse{
		RoomID:      req.RoomID,
		TimeBlockID: req.TimeBlockID,
		Date:        timezone.FormatDate(date),
		State:       state,
	}, nil
}

// BuildGrid computes the state of every public active room against every active block of the date's weekday.
func (s *serviceImpl) BuildGrid(ctx context.Context, date time.Time) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.BuildGrid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date = timezone.DateOf(date)
	cacheKey := shared.BuildCacheKey(constant.CachePrefixAvailabilityGrid, timezone.FormatDate(date))

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.GridTTL, func(ctx context.Context) (res dto.GridResponse, err error) {
		rooms, err := s.rooms.ListPublicActive(ctx)
		if err != nil {
			return res, err
		}

		blocks, err := s.timeBlocks.ListActiveForDay(ctx, timeBlockModel.DayOfWeekFor(date))
		if err != nil {
			return res, err
		}

		blackouts, err := s.blackouts.IndexForDate(ctx, date)
		if err != nil {
			return res, err
		}

		reservations, err := s.reservations.GetAll(ctx, gDto.QueryParams{}, activeOnDate(date))
		if err != nil {
			log.Error().Err(err).Str("date", timezone.FormatDate(date)).Msg("failed to list reservations of date")

			return res, fmt.Errorf("failed to list reservations of date: %w", err)
		}

		res.FromModels(date, rooms, blocks, blackouts, model.NewOccupancy(reservations))

		return res, nil
	})
}

// GetGrid shows the grid of rawDate clamped into the advance window. A missing or
// unparseable date shows today.
func (s *serviceImpl) GetGrid(ctx context.Context, rawDate string) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.GetGrid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rules, err := s.rules.Current(ctx)
	if err != nil {
		return res, err
	}

	today := timezone.Today(s.clock)
	latest := today.AddDate(0, 0, rules.MaxAdvanceDays())

	date, parseErr := timezone.ParseDate(rawDate)

	switch {
	case parseErr != nil, date.Before(today):
		date = today
	case date.After(latest):
		date = latest
	}

	res, err = s.BuildGrid(ctx, date)
	if err != nil {
		return res, err
	}

	res.SetWindow(date, today, rules.MaxAdvanceDays())

	return res, nil
}

// InvalidateGrid drops the cached grid of date. Failures are only logged.
func (s *serviceImpl) InvalidateGrid(ctx context.Context, date time.Time) {
	cacheKey := shared.BuildCacheKey(constant.CachePrefixAvailabilityGrid, timezone.FormatDate(timezone.DateOf(date)))

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to invalidate availability grid")
	}
}
