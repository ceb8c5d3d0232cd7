//go:build integration

package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "salas/infras/otel/mocks"
	"salas/infras/postgres"
	"salas/internal/domains/reservation/model"
	"salas/internal/domains/reservation/repository"
	"salas/migrations"
	"salas/shared"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
	"salas/shared/timezone"
)

func openDatabase(t *testing.T) *postgres.Connection {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	require.NoError(t, err)

	mig, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	require.NoError(t, err)

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{Read: db, Write: db}
}

func seedSlot(t *testing.T, db *postgres.Connection) (roomID, blockID string, materialID string) {
	t.Helper()

	roomID = uuid.NewString()
	materialID = uuid.NewString()

	db.Write.MustExec(`INSERT INTO rooms (id, name, capacity, location) VALUES ($1, 'Lab A', 30, 'Building B')`, roomID)
	db.Write.MustExec(`INSERT INTO materials (id, name) VALUES ($1, 'Projector')`, materialID)
	db.Write.MustExec(`INSERT INTO room_materials (room_id, material_id) VALUES ($1, $2)`, roomID, materialID)

	require.NoError(t, db.Read.Get(&blockID, `SELECT id FROM time_blocks WHERE day_of_week = 'monday' AND start_time = '09:00'`))

	t.Cleanup(func() {
		db.Write.MustExec(`DELETE FROM reservations WHERE room_id = $1`, roomID)
		db.Write.MustExec(`DELETE FROM rooms WHERE id = $1`, roomID)
		db.Write.MustExec(`DELETE FROM materials WHERE id = $1`, materialID)
	})

	return roomID, blockID, materialID
}

func newReservation(roomID, blockID string, date time.Time) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		UserID:      "integration-user",
		RoomID:      roomID,
		TimeBlockID: blockID,
		Date:        date,
		Status:      model.StatusConfirmed,
	}
}

func slotFilter(roomID, blockID string, date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTimeBlockID, Value: blockID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Value: timezone.FormatDate(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
}

func TestReservationRepository_SlotLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openDatabase(t)
	repo := repository.New(db, otelMocks.NewOtel())

	roomID, blockID, materialID := seedSlot(t, db)
	date := time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)

	first := newReservation(roomID, blockID, date)
	require.NoError(t, repo.Commit(ctx, first, []model.ReservationMaterial{{ReservationID: first.ID, MaterialID: materialID}}))

	booked, err := repo.Exist(ctx, slotFilter(roomID, blockID, date))
	require.NoError(t, err)
	assert.True(t, booked)

	err = repo.Commit(ctx, newReservation(roomID, blockID, date), nil)
	require.Error(t, err)
	assert.True(t, gRepo.IsUniqueViolation(err))

	detail, err := repo.GetDetail(ctx, shared.FilterByID(first.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, "Lab A", detail.RoomName)
	assert.Equal(t, "Bloque 1", detail.TimeBlockName)
	assert.Equal(t, 120, detail.DurationMinutes())

	materials, err := repo.ListMaterials(ctx, []string{first.ID})
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "Projector", materials[0].Name)

	cancel := map[string]any{model.FieldStatus: string(model.StatusCancelled)}
	require.NoError(t, repo.Update(ctx, cancel, shared.FilterByID(first.ID, model.FieldID, model.TableName)))

	booked, err = repo.Exist(ctx, slotFilter(roomID, blockID, date))
	require.NoError(t, err)
	assert.False(t, booked)

	second := newReservation(roomID, blockID, date)
	require.NoError(t, repo.Commit(ctx, second, nil))

	// a second cancelled row would collide with the first on the slot key
	err = repo.Update(ctx, cancel, shared.FilterByID(second.ID, model.FieldID, model.TableName))
	require.Error(t, err)
	assert.True(t, gRepo.IsUniqueViolation(err))
}
