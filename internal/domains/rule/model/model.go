package model

import (
	profileModel "salas/internal/domains/profile/model"
	"salas/shared/model"
)

const (
	TableName  = "reservation_rules"
	EntityName = "reservation_rules"

	FieldID                    = "id"
	FieldMaxHoursPerDay        = "max_hours_per_day"
	FieldMaxDaysInAdvance      = "max_days_in_advance"
	FieldMaxActiveReservations = "max_active_reservations"
)

const (
	DefaultMaxHoursPerDay        = 2
	DefaultMaxDaysInAdvance      = 2
	DefaultMaxActiveReservations = 5
)

// Rules is the single row of global booking limits.
type Rules struct {
	ID                    string `db:"id"`
	MaxHoursPerDay        int    `db:"max_hours_per_day"`
	MaxDaysInAdvance      int    `db:"max_days_in_advance"`
	MaxActiveReservations int    `db:"max_active_reservations"`
	model.Metadata
}

// Default is used while no rules row has been stored.
func Default() Rules {
	return Rules{
		MaxHoursPerDay:        DefaultMaxHoursPerDay,
		MaxDaysInAdvance:      DefaultMaxDaysInAdvance,
		MaxActiveReservations: DefaultMaxActiveReservations,
	}
}

func (r Rules) Stored() bool {
	return r.ID != ""
}

func (r Rules) MaxAdvanceDays() int {
	return r.MaxDaysInAdvance
}

// EffectiveMaxHours is the daily hour limit of the caller: the role override when set, else the global limit.
func (r Rules) EffectiveMaxHours(capability profileModel.Capability) int {
	if capability.MaxHoursOverride != nil {
		return *capability.MaxHoursOverride
	}

	return r.MaxHoursPerDay
}
