package model

import reservationModel "salas/internal/domains/reservation/model"

// SlotState is the bookability of a (room, date, time block) slot.
type SlotState string

const (
	SlotStateAvailable SlotState = "AVAILABLE"
	SlotStateBooked    SlotState = "BOOKED"
	SlotStateBlocked   SlotState = "BLOCKED"
)

// StateOf applies the precedence BLOCKED > BOOKED > AVAILABLE.
func StateOf(blocked, booked bool) SlotState {
	switch {
	case blocked:
		return SlotStateBlocked
	case booked:
		return SlotStateBooked
	default:
		return SlotStateAvailable
	}
}

type SlotKey struct {
	RoomID      string
	TimeBlockID string
}

// Occupancy is the set of slots held by an active reservation on one date.
type Occupancy map[SlotKey]struct{}

func NewOccupancy(reservations []reservationModel.Reservation) Occupancy {
	occupancy := make(Occupancy, len(reservations))

	for _, reservation := range reservations {
		if !reservation.Status.Active() {
			continue
		}

		occupancy[SlotKey{RoomID: reservation.RoomID, TimeBlockID: reservation.TimeBlockID}] = struct{}{}
	}

	return occupancy
}

func (o Occupancy) Booked(roomID, timeBlockID string) bool {
	_, ok := o[SlotKey{RoomID: roomID, TimeBlockID: timeBlockID}]

	return ok
}
