package dto

import "salas/internal/domains/profile/model"

type CapabilityResponse struct {
	UserID                  string `json:"user_id"`
	Role                    string `json:"role"`
	CanReserve              bool   `json:"can_reserve"`
	CanReserveInternalRooms bool   `json:"can_reserve_internal_rooms"`
	MaxHoursOverride        *int   `json:"max_hours_override"`
	Priority                int    `json:"priority"`
}

func (c *CapabilityResponse) FromModel(capability model.Capability) {
	c.UserID = capability.UserID
	c.Role = capability.Role
	c.CanReserve = capability.CanReserve
	c.CanReserveInternalRooms = capability.CanReserveInternalRooms
	c.MaxHoursOverride = capability.MaxHoursOverride
	c.Priority = capability.Priority
}
