package dto

import (
	materialModel "salas/internal/domains/material/model"
	"salas/internal/domains/reservation/model"
	roomModel "salas/internal/domains/room/model"
	timeBlockModel "salas/internal/domains/timeblock/model"
	gDto "salas/shared/dto"
	sharedModel "salas/shared/model"
	"salas/shared/timezone"
	"slices"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID               string   `json:"room_id" validate:"required,uuid"`
	TimeBlockID          string   `json:"time_block_id" validate:"required,uuid"`
	Date                 string   `json:"date" validate:"required,date"`
	RequestedMaterialIDs []string `json:"requested_material_ids" validate:"omitempty,dive,required,uuid"`
	Notes                string   `json:"notes" validate:"max=1000"`
}

// MaterialIDs returns the requested material ids without duplicates.
func (c *CreateReservationRequest) MaterialIDs() []string {
	ids := slices.Clone(c.RequestedMaterialIDs)
	slices.Sort(ids)

	return slices.Compact(ids)
}

// ToModel builds a confirmed reservation of user on date.
func (c *CreateReservationRequest) ToModel(user string, date, now time.Time) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		UserID:      user,
		RoomID:      c.RoomID,
		TimeBlockID: c.TimeBlockID,
		Date:        date,
		Status:      model.StatusConfirmed,
		Notes:       c.Notes,
		Metadata: sharedModel.NewMetadata(user, now),
	}
}

type MaterialResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReservationResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	RoomID        string             `json:"room_id"`
	RoomName      string             `json:"room_name"`
	RoomLocation  string             `json:"room_location"`
	TimeBlockID   string             `json:"time_block_id"`
	TimeBlockName string             `json:"time_block_name"`
	DayOfWeek     string             `json:"day_of_week"`
	StartTime     string             `json:"start_time"`
	EndTime       string             `json:"end_time"`
	Date          string             `json:"date"`
	Status        model.Status       `json:"status"`
	Notes         string             `json:"notes"`
	Materials     []MaterialResponse `json:"materials"`
	gDto.Metadata
}

func (r *ReservationResponse) FromDetail(detail model.Detail, materials []model.RequestedMaterial) {
	r.ID = detail.ID
	r.UserID = detail.UserID
	r.RoomID = detail.RoomID
	r.RoomName = detail.RoomName
	r.RoomLocation = detail.RoomLocation
	r.TimeBlockID = detail.TimeBlockID
	r.TimeBlockName = detail.TimeBlockName
	r.DayOfWeek = string(detail.DayOfWeek)
	r.StartTime = detail.StartTime.String()
	r.EndTime = detail.EndTime.String()
	r.Date = timezone.FormatDate(detail.Date)
	r.Status = detail.Status
	r.Notes = detail.Notes
	r.Metadata.FromModel(detail.Metadata)

	r.Materials = make([]MaterialResponse, 0, len(materials))
	for _, material := range materials {
		if material.ReservationID == detail.ID {
			r.Materials = append(r.Materials, MaterialResponse{ID: material.MaterialID, Name: material.Name})
		}
	}
}

// FromCreated describes a reservation that was just committed, from the records the create path already read.
func (r *ReservationResponse) FromCreated(
	reservation model.Reservation,
	room roomModel.Room,
	block timeBlockModel.TimeBlock,
	materials []materialModel.OfferedMaterial,
) {
	links := make([]model.RequestedMaterial, len(materials))
	for i, material := range materials {
		links[i] = model.RequestedMaterial{ReservationID: reservation.ID, MaterialID: material.ID, Name: material.Name}
	}

	r.FromDetail(model.Detail{
		ID:            reservation.ID,
		UserID:        reservation.UserID,
		RoomID:        room.ID,
		TimeBlockID:   block.ID,
		Date:          reservation.Date,
		Status:        reservation.Status,
		Notes:         reservation.Notes,
		RoomName:      room.Name,
		RoomLocation:  room.Location,
		TimeBlockName: block.Name,
		DayOfWeek:     block.DayOfWeek,
		StartTime:     block.StartTime,
		EndTime:       block.EndTime,
		Metadata:      reservation.Metadata,
	}, links)
}

type CancelResponse struct {
	ID               string       `json:"id"`
	Status           model.Status `json:"status"`
	AlreadyCancelled bool         `json:"already_cancelled"`
	Message          string       `json:"message"`
}

type MyReservationsResponse struct {
	Active []ReservationResponse `json:"active"`
	Past   []ReservationResponse `json:"past"`
}

func (m *MyReservationsResponse) FromDetails(active, past []model.Detail, materials []model.RequestedMaterial) {
	m.Active = make([]ReservationResponse, len(active))
	for i, detail := range active {
		m.Active[i].FromDetail(detail, materials)
	}

	m.Past = make([]ReservationResponse, len(past))
	for i, detail := range past {
		m.Past[i].FromDetail(detail, materials)
	}
}
