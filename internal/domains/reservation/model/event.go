package model

import "time"

const (
	EventCreated   = "reservation.created"
	EventCancelled = "reservation.cancelled"
)

// Event is published after a reservation changes state.
type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	UserID        string    `json:"user_id"`
	RoomID        string    `json:"room_id"`
	TimeBlockID   string    `json:"time_block_id"`
	Date          string    `json:"date"`
	Status        Status    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, reservation Reservation, at time.Time) Event {
	return Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomID:        reservation.RoomID,
		TimeBlockID:   reservation.TimeBlockID,
		Date:          reservation.Date.Format(time.DateOnly),
		Status:        reservation.Status,
		OccurredAt:    at,
	}
}
