package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salas/config"
	"salas/infras/otel/mocks"
	materialMocks "salas/internal/domains/material/mocks"
	materialModel "salas/internal/domains/material/model"
	roomMocks "salas/internal/domains/room/mocks"
	"salas/internal/domains/room/model"
	"salas/internal/domains/room/model/dto"
	"salas/internal/domains/room/service"
	cacheMocks "salas/shared/cache/mocks"
	gDto "salas/shared/dto"
	"salas/shared/failure"
)

type fixture struct {
	svc       service.Room
	repo      *roomMocks.MockRoom
	materials *materialMocks.MockMaterial
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      roomMocks.NewMockRoom(ctrl),
		materials: materialMocks.NewMockMaterial(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.repo, f.materials, cfg, f.cache, mocks.NewOtel())

	return f
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

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name     string
		room     model.Room
		repoErr  error
		wantCode int
	}{
		{name: "inactive room is still returned", room: model.Room{ID: "r1", Name: "Sala A", IsActive: false}},
		{name: "missing", room: model.Room{}, wantCode: 404},
		{name: "repository error", repoErr: errors.New("database error"), wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.room, tt.repoErr)

			res, err := f.svc.Get(context.Background(), "r1")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.room, res)
		})
	}
}

func TestRoomService_ListPublicActive(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, "ORDER BY rooms.name ASC", params.OrderClause())

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(rooms.is_public = :is_public AND rooms.is_active = :is_active)", where)
			assert.Equal(t, true, args["is_public"])

			return []model.Room{{ID: "r1", Name: "Sala A"}, {ID: "r2", Name: "Sala B"}}, nil
		})

	rooms, err := f.svc.ListPublicActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("cache miss counts and lists public active rooms", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
				where, _ := filter.GetWhereClause()
				assert.Contains(t, where, "rooms.is_public = :is_public")
				assert.Contains(t, where, "LOWER(rooms.name) LIKE LOWER(:name)")

				return []model.Room{{ID: "r1", Name: "Sala A", IsPublic: true}}, nil
			})
		waitSaved := expectSaves(t, f.cache, gomock.Any(), 300, 2)

		nameFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Value: "Sala", Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		}

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, nameFilter)
		waitSaved()

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Equal(t, "r1", res.Rooms[0].ID)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*dto.GetRoomsResponse)) = dto.GetRoomsResponse{TotalData: 1, TotalPage: 1}

				return nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestRoomService_GetDetail(t *testing.T) {
	t.Run("active room with offered materials", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:get:r1", gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Name: "Sala A", IsActive: true}, nil)
		f.materials.EXPECT().ListOfferedByRoom(gomock.Any(), "r1").Return([]materialModel.OfferedMaterial{
			{ID: "m1", Name: "Proyector", IsActive: true, RoomID: "r1"},
		}, nil)
		waitSaved := expectSaves(t, f.cache, "room:get:r1", 300, 1)

		res, err := f.svc.GetDetail(context.Background(), "r1")
		waitSaved()

		require.NoError(t, err)
		assert.Equal(t, "Sala A", res.Name)
		require.Len(t, res.Materials, 1)
		assert.Equal(t, "Proyector", res.Materials[0].Name)
	})

	t.Run("inactive room is not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", IsActive: false}, nil)

		_, err := f.svc.GetDetail(context.Background(), "r1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("materials error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", IsActive: true}, nil)
		f.materials.EXPECT().ListOfferedByRoom(gomock.Any(), "r1").Return(nil, errors.New("database error"))

		_, err := f.svc.GetDetail(context.Background(), "r1")
		assert.Error(t, err)
	})
}
