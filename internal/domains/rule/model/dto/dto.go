package dto

import (
	"salas/internal/domains/rule/model"
	gDto "salas/shared/dto"
	sharedModel "salas/shared/model"
	"salas/shared/timezone"

	"github.com/google/uuid"
)

type CreateRulesRequest struct {
	MaxHoursPerDay        int  `json:"max_hours_per_day" validate:"required,min=1"`
	MaxDaysInAdvance      *int `json:"max_days_in_advance" validate:"required,min=0"`
	MaxActiveReservations int  `json:"max_active_reservations" validate:"required,min=1"`
}

func (r *CreateRulesRequest) ToModel(user string) model.Rules {
	now := timezone.Now()

	return model.Rules{
		ID:                    uuid.NewString(),
		MaxHoursPerDay:        r.MaxHoursPerDay,
		MaxDaysInAdvance:      *r.MaxDaysInAdvance,
		MaxActiveReservations: r.MaxActiveReservations,
		Metadata: sharedModel.NewMetadata(user, now),
	}
}

type UpdateRulesRequest struct {
	MaxHoursPerDay        *int `json:"max_hours_per_day" db:"max_hours_per_day" validate:"omitempty,min=1"`
	MaxDaysInAdvance      *int `json:"max_days_in_advance" db:"max_days_in_advance" validate:"omitempty,min=0"`
	MaxActiveReservations *int `json:"max_active_reservations" db:"max_active_reservations" validate:"omitempty,min=1"`
}

// Apply copies the fields present in the request onto rules.
func (r *UpdateRulesRequest) Apply(rules model.Rules) model.Rules {
	if r.MaxHoursPerDay != nil {
		rules.MaxHoursPerDay = *r.MaxHoursPerDay
	}

	if r.MaxDaysInAdvance != nil {
		rules.MaxDaysInAdvance = *r.MaxDaysInAdvance
	}

	if r.MaxActiveReservations != nil {
		rules.MaxActiveReservations = *r.MaxActiveReservations
	}

	return rules
}

type RulesResponse struct {
	ID                    string         `json:"id,omitempty"`
	MaxHoursPerDay        int            `json:"max_hours_per_day"`
	MaxDaysInAdvance      int            `json:"max_days_in_advance"`
	MaxActiveReservations int            `json:"max_active_reservations"`
	IsDefault             bool           `json:"is_default"`
	Metadata              *gDto.Metadata `json:"metadata,omitempty"`
}

func (r *RulesResponse) FromModel(rules model.Rules) {
	r.ID = rules.ID
	r.MaxHoursPerDay = rules.MaxHoursPerDay
	r.MaxDaysInAdvance = rules.MaxDaysInAdvance
	r.MaxActiveReservations = rules.MaxActiveReservations
	r.IsDefault = !rules.Stored()

	if rules.Stored() {
		r.Metadata = gDto.NewMetadata(rules.Metadata)
	}
}
