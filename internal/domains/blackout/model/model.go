package model

import (
	"database/sql"
	"salas/shared/model"
	"time"
)

const (
	TableName  = "room_unavailabilities"
	EntityName = "room_unavailability"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldDate        = "date"
	FieldTimeBlockID = "time_block_id"
	FieldReason      = "reason"
)

// RoomUnavailability marks a room as closed on a date, for one time block or,
// when TimeBlockID is null, for the whole day.
type RoomUnavailability struct {
	ID          string         `db:"id"`
	RoomID      string         `db:"room_id"`
	Date        time.Time      `db:"date"`
	TimeBlockID sql.NullString `db:"time_block_id"`
	Reason      string         `db:"reason"`
	model.Metadata
}

func (r RoomUnavailability) WholeDay() bool {
	return !r.TimeBlockID.Valid
}

type roomBlackouts struct {
	wholeDay bool
	blocks   map[string]struct{}
}

// Index holds the blackouts of a single date keyed by room.
type Index struct {
	rooms map[string]*roomBlackouts
}

func NewIndex(rows []RoomUnavailability) Index {
	idx := Index{rooms: make(map[string]*roomBlackouts)}

	for _, row := range rows {
		entry, ok := idx.rooms[row.RoomID]
		if !ok {
			entry = &roomBlackouts{blocks: make(map[string]struct{})}
			idx.rooms[row.RoomID] = entry
		}

		if row.WholeDay() {
			entry.wholeDay = true

			continue
		}

		entry.blocks[row.TimeBlockID.String] = struct{}{}
	}

	return idx
}

// Blocked reports whether the room is closed for the block, a whole-day row closing every block.
func (i Index) Blocked(roomID, timeBlockID string) bool {
	entry, ok := i.rooms[roomID]
	if !ok {
		return false
	}

	if entry.wholeDay {
		return true
	}

	_, ok = entry.blocks[timeBlockID]

	return ok
}
