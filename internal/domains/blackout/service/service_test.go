package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salas/infras/otel/mocks"
	blackoutMocks "salas/internal/domains/blackout/mocks"
	"salas/internal/domains/blackout/model"
	"salas/internal/domains/blackout/service"
	gDto "salas/shared/dto"
)

var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) (service.Blackout, *blackoutMocks.MockBlackout) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := blackoutMocks.NewMockBlackout(ctrl)

	return service.New(repo, mocks.NewOtel()), repo
}

func TestBlackoutService_IsBlocked(t *testing.T) {
	t.Run("matches the block or a whole-day row", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				where, args := filter.GetWhereClause()

				assert.Equal(t,
					"(room_unavailabilities.room_id = :room_id AND room_unavailabilities.date = :date AND "+
						"(room_unavailabilities.time_block_id = :time_block_id OR room_unavailabilities.time_block_id IS NULL))",
					where)
				assert.Equal(t, "r1", args["room_id"])
				assert.Equal(t, "2026-10-19", args["date"])
				assert.Equal(t, "b1", args["time_block_id"])

				return true, nil
			})

		blocked, err := svc.IsBlocked(context.Background(), "r1", monday, "b1")

		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))

		blocked, err := svc.IsBlocked(context.Background(), "r1", monday, "b1")

		require.Error(t, err)
		assert.False(t, blocked)
	})
}

func TestBlackoutService_IndexForDate(t *testing.T) {
	t.Run("folds rows of the date", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomUnavailability, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "2026-10-19", args["date"])

				return []model.RoomUnavailability{
					{RoomID: "r1"},
					{RoomID: "r2", TimeBlockID: sql.NullString{String: "b2", Valid: true}},
				}, nil
			})

		idx, err := svc.IndexForDate(context.Background(), monday)

		require.NoError(t, err)
		assert.True(t, idx.Blocked("r1", "b1"))
		assert.True(t, idx.Blocked("r2", "b2"))
		assert.False(t, idx.Blocked("r2", "b1"))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.IndexForDate(context.Background(), monday)
		assert.Error(t, err)
	})
}
