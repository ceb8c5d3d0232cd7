package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Blackout=MockBlackoutService

import (
	"context"
	"fmt"
	"time"

	"salas/infras/otel"
	"salas/internal/domains/blackout/model"
	"salas/internal/domains/blackout/repository"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Blackout interface {
	IsBlocked(ctx context.Context, roomID string, date time.Time, timeBlockID string) (bool, error)
	IndexForDate(ctx context.Context, date time.Time) (model.Index, error)
}

type serviceImpl struct {
	repo repository.Blackout
	otel otel.Otel
}

func New(repo repository.Blackout, otel otel.Otel) Blackout {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// IsBlocked reports whether the slot is closed by a blackout of the block itself
// or by a whole-day blackout of the room on that date.
func (s *serviceImpl) IsBlocked(ctx context.Context, roomID string, date time.Time, timeBlockID string) (blocked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blackout.IsBlocked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldRoomID, roomID),
		gDto.Eq(model.TableName, model.FieldDate, timezone.FormatDate(date)),
		gDto.Or(
			gDto.Eq(model.TableName, model.FieldTimeBlockID, timeBlockID),
			gDto.IsNull(model.TableName, model.FieldTimeBlockID),
		),
	)

	blocked, err = s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("time_block_id", timeBlockID).Msg("failed to check blackout")

		return false, fmt.Errorf("failed to check blackout: %w", err)
	}

	return blocked, nil
}

// IndexForDate loads every blackout of the date into an in-memory index.
func (s *serviceImpl) IndexForDate(ctx context.Context, date time.Time) (res model.Index, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Blackout.IndexForDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldDate, timezone.FormatDate(date)))

	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("date", timezone.FormatDate(date)).Msg("failed to list blackouts")

		return res, fmt.Errorf("failed to list blackouts: %w", err)
	}

	return model.NewIndex(rows), nil
}
