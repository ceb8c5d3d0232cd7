package dto

import (
	"salas/internal/domains/timeblock/model"
)

type ListTimeBlocksRequest struct {
	Day string `json:"day" validate:"required,weekday"`
}

type TimeBlockResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DayOfWeek     string  `json:"day_of_week"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
}

func (t *TimeBlockResponse) FromModel(model model.TimeBlock) {
	t.ID = model.ID
	t.Name = model.Name
	t.DayOfWeek = string(model.DayOfWeek)
	t.StartTime = model.StartTime.String()
	t.EndTime = model.EndTime.String()
	t.DurationHours = model.DurationHours()
}

type TimeBlocksResponse struct {
	DayOfWeek  string              `json:"day_of_week"`
	TimeBlocks []TimeBlockResponse `json:"time_blocks"`
}

func (t *TimeBlocksResponse) FromModels(day model.DayOfWeek, models []model.TimeBlock) {
	t.DayOfWeek = string(day)

	t.TimeBlocks = make([]TimeBlockResponse, len(models))
	for i, mod := range models {
		t.TimeBlocks[i].FromModel(mod)
	}
}
