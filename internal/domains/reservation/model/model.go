package model

import (
	timeBlockModel "salas/internal/domains/timeblock/model"
	"salas/shared/model"
	"time"
)

const (
	TableName         = "reservations"
	MaterialTableName = "reservation_materials"
	EntityName        = "reservation"
	MaterialEntity    = "reservation_material"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldTimeBlockID   = "time_block_id"
	FieldDate          = "date"
	FieldStatus        = "status"
	FieldNotes         = "notes"
	FieldReservationID = "reservation_id"
	FieldMaterialID    = "material_id"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses are the statuses that occupy a slot.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Reservation struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	RoomID      string    `db:"room_id"`
	TimeBlockID string    `db:"time_block_id"`
	Date        time.Time `db:"date"`
	Status      Status    `db:"status"`
	Notes       string    `db:"notes"`
	model.Metadata
}

type ReservationMaterial struct {
	ReservationID string `db:"reservation_id"`
	MaterialID    string `db:"material_id"`
}

// RequestedMaterial is a material attached to a reservation, with its name.
type RequestedMaterial struct {
	ReservationID string `db:"reservation_id"`
	MaterialID    string `db:"material_id"`
	Name          string `db:"name" table:"materials"`
}

func (RequestedMaterial) GetJoinQuery() string {
	return "JOIN materials ON materials.id = reservation_materials.material_id"
}

// Detail is a reservation read together with its room and time block.
type Detail struct {
	ID            string                   `db:"id"`
	UserID        string                   `db:"user_id"`
	RoomID        string                   `db:"room_id"`
	TimeBlockID   string                   `db:"time_block_id"`
	Date          time.Time                `db:"date"`
	Status        Status                   `db:"status"`
	Notes         string                   `db:"notes"`
	RoomName      string                   `db:"room_name" table:"rooms" column:"name"`
	RoomLocation  string                   `db:"room_location" table:"rooms" column:"location"`
	TimeBlockName string                   `db:"time_block_name" table:"time_blocks" column:"name"`
	DayOfWeek     timeBlockModel.DayOfWeek `db:"day_of_week" table:"time_blocks"`
	StartTime     timeBlockModel.TimeOfDay `db:"start_time" table:"time_blocks"`
	EndTime       timeBlockModel.TimeOfDay `db:"end_time" table:"time_blocks"`
	model.Metadata
}

func (Detail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = reservations.room_id JOIN time_blocks ON time_blocks.id = reservations.time_block_id"
}

func (d Detail) DurationMinutes() int {
	return int(d.EndTime - d.StartTime)
}

// UsedMinutes sums the block durations of the active reservations among details.
func UsedMinutes(details []Detail) int {
	total := 0

	for _, detail := range details {
		if detail.Status.Active() {
			total += detail.DurationMinutes()
		}
	}

	return total
}
