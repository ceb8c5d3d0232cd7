package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salas/config"
	otelMocks "salas/infras/otel/mocks"
	"salas/internal/domains/availability/model"
	"salas/internal/domains/availability/model/dto"
	"salas/internal/domains/availability/service"
	blackoutMocks "salas/internal/domains/blackout/mocks"
	blackoutModel "salas/internal/domains/blackout/model"
	reservationMocks "salas/internal/domains/reservation/mocks"
	reservationModel "salas/internal/domains/reservation/model"
	roomMocks "salas/internal/domains/room/mocks"
	roomModel "salas/internal/domains/room/model"
	ruleMocks "salas/internal/domains/rule/mocks"
	ruleModel "salas/internal/domains/rule/model"
	timeBlockMocks "salas/internal/domains/timeblock/mocks"
	timeBlockModel "salas/internal/domains/timeblock/model"
	cacheMocks "salas/shared/cache/mocks"
	gDto "salas/shared/dto"
	clockMocks "salas/shared/timezone/mocks"
)

// Monday 2026-10-19, midday.
var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc          service.Availability
	rooms        *roomMocks.MockRoomService
	timeBlocks   *timeBlockMocks.MockTimeBlockService
	blackouts    *blackoutMocks.MockBlackoutService
	reservations *reservationMocks.MockReservation
	rules        *ruleMocks.MockRulesService
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		rooms:        roomMocks.NewMockRoomService(ctrl),
		timeBlocks:   timeBlockMocks.NewMockTimeBlockService(ctrl),
		blackouts:    blackoutMocks.NewMockBlackoutService(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		rules:        ruleMocks.NewMockRulesService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.GridTTL = 30

	f.svc = service.New(f.rooms, f.timeBlocks, f.blackouts, f.reservations, f.rules, cfg, f.cache, clockMocks.NewClock(now), otelMocks.NewOtel())

	return f
}

func date(day int) time.Time {
	return time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC)
}

// expectSaves registers the background cache writes and returns a func that blocks until they land.
func expectSaves(t *testing.T, c *cacheMocks.MockRedisCache, key, ttl any, times int) func() {
	t.Helper()

	saved := make(chan struct{}, times)
	c.EXPECT().
		Save(gomock.Any(), key, gomock.Any(), ttl).
		DoAndReturn(func(context.Context, string, any, int) error {
			saved <- struct{}{}

			return nil
		}).
		Times(times)

	return func() {
		t.Helper()

		for range times {
			select {
			case <-saved:
			case <-time.After(time.Second):
				t.Fatal("cache write did not happen")
			}
		}
	}
}

func TestAvailabilityService_SlotState(t *testing.T) {
	tests := []struct {
		name      string
		blocked   bool
		booked    bool
		wantState model.SlotState
	}{
		{name: "available", wantState: model.SlotStateAvailable},
		{name: "booked", booked: true, wantState: model.SlotStateBooked},
		{name: "blocked", blocked: true, wantState: model.SlotStateBlocked},
		{name: "blocked over a confirmed reservation", blocked: true, booked: true, wantState: model.SlotStateBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.blackouts.EXPECT().IsBlocked(gomock.Any(), "lab-a", date(26), "b1").Return(tt.blocked, nil)

			if !tt.blocked {
				f.reservations.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "reservations.status IN (:status_0, :status_1)")
						assert.Contains(t, where, "reservations.room_id = :room_id")
						assert.Contains(t, where, "reservations.time_block_id = :time_block_id")
						assert.Equal(t, "confirmed", args["status_1"])
						assert.Equal(t, "2026-10-26", args["date"])

						return tt.booked, nil
					})
			}

			state, err := f.svc.SlotState(context.Background(), "lab-a", date(26), "b1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
		})
	}

	t.Run("blackout error", func(t *testing.T) {
		f := newFixture(t)

		f.blackouts.EXPECT().IsBlocked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))

		_, err := f.svc.SlotState(context.Background(), "lab-a", date(26), "b1")
		assert.Error(t, err)
	})
}

func TestAvailabilityService_GetSlotState(t *testing.T) {
	f := newFixture(t)

	f.blackouts.EXPECT().IsBlocked(gomock.Any(), "lab-a", date(20), "b1").Return(false, nil)
	f.reservations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	res, err := f.svc.GetSlotState(context.Background(), dto.SlotStateRequest{RoomID: "lab-a", TimeBlockID: "b1", Date: "2026-10-20"})

	require.NoError(t, err)
	assert.Equal(t, model.SlotStateAvailable, res.State)
	assert.Equal(t, "2026-10-20", res.Date)
}

func gridCatalog(f fixture, day time.Time) {
	f.rooms.EXPECT().ListPublicActive(gomock.Any()).Return([]roomModel.Room{
		{ID: "lab-a", Name: "Lab A", IsPublic: true, IsActive: true},
		{ID: "lab-b", Name: "Lab B", IsPublic: true, IsActive: true},
	}, nil)
	f.timeBlocks.EXPECT().ListActiveForDay(gomock.Any(), timeBlockModel.DayOfWeekFor(day)).Return([]timeBlockModel.TimeBlock{
		{ID: "b1", Name: "Bloque 1", StartTime: timeBlockModel.NewTimeOfDay(9, 0), EndTime: timeBlockModel.NewTimeOfDay(11, 0)},
		{ID: "b2", Name: "Bloque 2", StartTime: timeBlockModel.NewTimeOfDay(11, 0), EndTime: timeBlockModel.NewTimeOfDay(13, 0)},
	}, nil)
}

func TestAvailabilityService_BuildGrid(t *testing.T) {
	t.Run("cells follow blackout then reservation precedence", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "availability:grid:2026-10-26", gomock.Any()).Return(errors.New("cache miss"))
		gridCatalog(f, date(26))
		f.blackouts.EXPECT().IndexForDate(gomock.Any(), date(26)).Return(blackoutModel.NewIndex([]blackoutModel.RoomUnavailability{
			{RoomID: "lab-b"},
			{RoomID: "lab-a", TimeBlockID: sql.NullString{String: "b2", Valid: true}},
		}), nil)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]reservationModel.Reservation{
			{ID: "res-1", RoomID: "lab-a", TimeBlockID: "b1", Status: reservationModel.StatusConfirmed},
			{ID: "res-2", RoomID: "lab-b", TimeBlockID: "b1", Status: reservationModel.StatusConfirmed},
		}, nil)
		waitSaved := expectSaves(t, f.cache, "availability:grid:2026-10-26", 30, 1)

		grid, err := f.svc.BuildGrid(context.Background(), date(26))
		waitSaved()

		require.NoError(t, err)
		assert.Equal(t, "monday", grid.DayOfWeek)
		require.Len(t, grid.Rows, 2)
		require.Len(t, grid.TimeBlocks, 2)

		labA := grid.Rows[0]
		assert.Equal(t, "Lab A", labA.Room.Name)
		assert.Equal(t, model.SlotStateBooked, labA.Slots[0].State)
		assert.Equal(t, model.SlotStateBlocked, labA.Slots[1].State)

		labB := grid.Rows[1]
		assert.Equal(t, model.SlotStateBlocked, labB.Slots[0].State)
		assert.Equal(t, model.SlotStateBlocked, labB.Slots[1].State)

		body, err := json.Marshal(grid)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "res-1", "the public grid does not reveal who holds a slot")
		assert.NotContains(t, string(body), "reservation_id")
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "availability:grid:2026-10-20", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*dto.GridResponse)) = dto.GridResponse{Date: "2026-10-20"}

				return nil
			})

		grid, err := f.svc.BuildGrid(context.Background(), date(20))

		require.NoError(t, err)
		assert.Equal(t, "2026-10-20", grid.Date)
	})

	t.Run("reservation error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		gridCatalog(f, date(20))
		f.blackouts.EXPECT().IndexForDate(gomock.Any(), gomock.Any()).Return(blackoutModel.Index{}, nil)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.BuildGrid(context.Background(), date(20))
		assert.Error(t, err)
	})
}

func TestAvailabilityService_GetGrid(t *testing.T) {
	tests := []struct {
		name         string
		rawDate      string
		wantDate     string
		wantPrevious *string
		wantNext     *string
	}{
		{name: "missing date shows today", rawDate: "", wantDate: "2026-10-19", wantNext: strPtr("2026-10-20")},
		{name: "unparseable date shows today", rawDate: "19-10-2026", wantDate: "2026-10-19", wantNext: strPtr("2026-10-20")},
		{name: "past date is clamped to today", rawDate: "2026-10-01", wantDate: "2026-10-19", wantNext: strPtr("2026-10-20")},
		{name: "inside the window", rawDate: "2026-10-20", wantDate: "2026-10-20", wantPrevious: strPtr("2026-10-19"), wantNext: strPtr("2026-10-21")},
		{name: "last day of the window", rawDate: "2026-10-21", wantDate: "2026-10-21", wantPrevious: strPtr("2026-10-20")},
		{name: "beyond the window is clamped", rawDate: "2026-11-30", wantDate: "2026-10-21", wantPrevious: strPtr("2026-10-20")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.rules.EXPECT().Current(gomock.Any()).Return(ruleModel.Default(), nil)
			f.cache.EXPECT().
				Get(gomock.Any(), "availability:grid:"+tt.wantDate, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any) error {
					*(value.(*dto.GridResponse)) = dto.GridResponse{Date: tt.wantDate}

					return nil
				})

			grid, err := f.svc.GetGrid(context.Background(), tt.rawDate)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, grid.Date)
			assert.Equal(t, "2026-10-19", grid.Today)
			assert.Equal(t, 2, grid.MaxDaysInAdvance)
			assert.Equal(t, tt.wantPrevious, grid.PreviousDate)
			assert.Equal(t, tt.wantNext, grid.NextDate)
		})
	}

	t.Run("rules error", func(t *testing.T) {
		f := newFixture(t)

		f.rules.EXPECT().Current(gomock.Any()).Return(ruleModel.Rules{}, errors.New("database error"))

		_, err := f.svc.GetGrid(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestAvailabilityService_InvalidateGrid(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Delete(gomock.Any(), "availability:grid:2026-10-20").Return(errors.New("redis down"))

	assert.NotPanics(t, func() {
		f.svc.InvalidateGrid(context.Background(), date(20))
	})
}

func strPtr(v string) *string {
	return &v
}
