package dto_test

import (
	"testing"
	"time"

	"salas/internal/domains/reservation/model"
	"salas/internal/domains/reservation/model/dto"
	timeBlockModel "salas/internal/domains/timeblock/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_MaterialIDs(t *testing.T) {
	req := dto.CreateReservationRequest{RequestedMaterialIDs: []string{"projector", "cables", "projector"}}

	assert.Equal(t, []string{"cables", "projector"}, req.MaterialIDs())
	assert.Equal(t, []string{"projector", "cables", "projector"}, req.RequestedMaterialIDs)
	assert.Empty(t, (&dto.CreateReservationRequest{}).MaterialIDs())
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{RoomID: "lab-a", TimeBlockID: "b1", Date: "2026-10-20", Notes: "thesis defense"}
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	reservation := req.ToModel("user-1", date, now)

	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "lab-a", reservation.RoomID)
	assert.Equal(t, "b1", reservation.TimeBlockID)
	assert.Equal(t, date, reservation.Date)
	assert.Equal(t, model.StatusConfirmed, reservation.Status)
	assert.Equal(t, "thesis defense", reservation.Notes)
	assert.Equal(t, "user-1", reservation.CreatedBy)
	assert.Equal(t, now, reservation.ModifiedAt)
}

func TestMyReservationsResponse_FromDetails(t *testing.T) {
	active := model.Detail{
		ID:        "r1",
		RoomName:  "Lab A",
		Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Status:    model.StatusConfirmed,
		DayOfWeek: timeBlockModel.Tuesday,
		StartTime: timeBlockModel.NewTimeOfDay(9, 0),
		EndTime:   timeBlockModel.NewTimeOfDay(10, 30),
	}
	past := model.Detail{ID: "r0", Date: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), Status: model.StatusCancelled}
	materials := []model.RequestedMaterial{
		{ReservationID: "r1", MaterialID: "projector", Name: "Projector"},
		{ReservationID: "r1", MaterialID: "speakers", Name: "Speakers"},
	}

	var res dto.MyReservationsResponse
	res.FromDetails([]model.Detail{active}, []model.Detail{past}, materials)

	assert.Len(t, res.Active, 1)
	assert.Len(t, res.Past, 1)
	assert.Equal(t, "2026-10-20", res.Active[0].Date)
	assert.Equal(t, "tuesday", res.Active[0].DayOfWeek)
	assert.Equal(t, "09:00", res.Active[0].StartTime)
	assert.Equal(t, "10:30", res.Active[0].EndTime)
	assert.Len(t, res.Active[0].Materials, 2)
	assert.NotNil(t, res.Past[0].Materials)
	assert.Empty(t, res.Past[0].Materials)
}

func TestMyReservationsResponse_Empty(t *testing.T) {
	var res dto.MyReservationsResponse
	res.FromDetails(nil, nil, nil)

	assert.NotNil(t, res.Active)
	assert.NotNil(t, res.Past)
}
