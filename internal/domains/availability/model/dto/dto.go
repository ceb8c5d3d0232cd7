package dto

import (
	"salas/internal/domains/availability/model"
	blackoutModel "salas/internal/domains/blackout/model"
	roomModel "salas/internal/domains/room/model"
	timeBlockModel "salas/internal/domains/timeblock/model"
	"salas/shared/timezone"
	"time"
)

type SlotStateRequest struct {
	RoomID      string `json:"room_id" validate:"required,uuid"`
	TimeBlockID string `json:"time_block_id" validate:"required,uuid"`
	Date        string `json:"date" validate:"required,date"`
}

type SlotStateResponse struct {
	RoomID      string          `json:"room_id"`
	TimeBlockID string          `json:"time_block_id"`
	Date        string          `json:"date"`
	State       model.SlotState `json:"state"`
}

type RoomSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type TimeBlockSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
}

type Cell struct {
	TimeBlockID string          `json:"time_block_id"`
	State       model.SlotState `json:"state"`
}

type Row struct {
	Room  RoomSummary `json:"room"`
	Slots []Cell      `json:"slots"`
}

type GridResponse struct {
	Date             string             `json:"date"`
	DayOfWeek        string             `json:"day_of_week"`
	TimeBlocks       []TimeBlockSummary `json:"time_blocks"`
	Rows             []Row              `json:"rows"`
	Today            string             `json:"today,omitempty"`
	PreviousDate     *string            `json:"previous_date"`
	NextDate         *string            `json:"next_date"`
	MaxDaysInAdvance int                `json:"max_days_in_advance"`
}

// FromModels lays out rooms as rows and blocks as columns, resolving every cell from one snapshot.
func (g *GridResponse) FromModels(
	date time.Time,
	rooms []roomModel.Room,
	blocks []timeBlockModel.TimeBlock,
	blackouts blackoutModel.Index,
	occupancy model.Occupancy,
) {
	g.Date = timezone.FormatDate(date)
	g.DayOfWeek = string(timeBlockModel.DayOfWeekFor(date))

	g.TimeBlocks = make([]TimeBlockSummary, len(blocks))
	for i, block := range blocks {
		g.TimeBlocks[i] = TimeBlockSummary{
			ID:            block.ID,
			Name:          block.Name,
			StartTime:     block.StartTime.String(),
			EndTime:       block.EndTime.String(),
			DurationHours: block.DurationHours(),
		}
	}

	g.Rows = make([]Row, len(rooms))
	for i, room := range rooms {
		row := Row{
			Room: RoomSummary{
				ID:       room.ID,
				Name:     room.Name,
				Location: room.Location,
				Capacity: room.Capacity,
			},
			Slots: make([]Cell, len(blocks)),
		}

		for j, block := range blocks {
			row.Slots[j] = Cell{
				TimeBlockID: block.ID,
				State:       model.StateOf(blackouts.Blocked(room.ID, block.ID), occupancy.Booked(room.ID, block.ID)),
			}
		}

		g.Rows[i] = row
	}
}

// SetWindow fills the navigation fields for a grid shown on date within [today, today+maxDays].
func (g *GridResponse) SetWindow(date, today time.Time, maxDays int) {
	latest := today.AddDate(0, 0, maxDays)

	g.Today = timezone.FormatDate(today)
	g.MaxDaysInAdvance = maxDays
	g.PreviousDate = nil
	g.NextDate = nil

	if previous := date.AddDate(0, 0, -1); !previous.Before(today) {
		formatted := timezone.FormatDate(previous)
		g.PreviousDate = &formatted
	}

	if next := date.AddDate(0, 0, 1); !next.After(latest) {
		formatted := timezone.FormatDate(next)
		g.NextDate = &formatted
	}
}
