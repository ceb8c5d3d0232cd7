package model

import (
	"database/sql"
	"salas/shared/constant"
	"salas/shared/model"
)

const (
	TableName     = "user_profiles"
	RoleTableName = "roles"
	EntityName    = "user_profile"
	RoleEntity    = "role"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldRoleID   = "role_id"
	FieldIsActive = "is_active"
	FieldName     = "name"
)

type Role struct {
	ID                      string        `db:"id"`
	Name                    string        `db:"name"`
	DisplayName             string        `db:"display_name"`
	Description             string        `db:"description"`
	CanReserve              bool          `db:"can_reserve"`
	CanReserveInternalRooms bool          `db:"can_reserve_internal_rooms"`
	MaxHoursOverride        sql.NullInt64 `db:"max_hours_override"`
	Priority                int           `db:"priority"`
	model.Metadata
}

// UserProfile is a profile read together with the role it points to.
type UserProfile struct {
	ID                      string         `db:"id"`
	UserID                  string         `db:"user_id"`
	RoleID                  string         `db:"role_id"`
	Department              string         `db:"department"`
	ExternalID              sql.NullString `db:"external_id"`
	Phone                   string         `db:"phone"`
	IsActive                bool           `db:"is_active"`
	RoleName                string         `db:"role_name" table:"roles" column:"name"`
	CanReserve              bool           `db:"can_reserve" table:"roles"`
	CanReserveInternalRooms bool           `db:"can_reserve_internal_rooms" table:"roles"`
	MaxHoursOverride        sql.NullInt64  `db:"max_hours_override" table:"roles"`
	Priority                int            `db:"priority" table:"roles"`
	model.Metadata
}

func (UserProfile) GetJoinQuery() string {
	return "JOIN roles ON roles.id = user_profiles.role_id"
}

// Capability is what a caller may do, resolved once per request.
type Capability struct {
	UserID                  string
	Role                    string
	CanReserve              bool
	CanReserveInternalRooms bool
	MaxHoursOverride        *int
	Priority                int
}

func overrideOf(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}

	hours := int(value.Int64)

	return &hours
}

func (p UserProfile) Capability() Capability {
	return Capability{
		UserID:                  p.UserID,
		Role:                    p.RoleName,
		CanReserve:              p.CanReserve,
		CanReserveInternalRooms: p.CanReserveInternalRooms,
		MaxHoursOverride:        overrideOf(p.MaxHoursOverride),
		Priority:                p.Priority,
	}
}

func (r Role) CapabilityFor(userID string) Capability {
	return Capability{
		UserID:                  userID,
		Role:                    r.Name,
		CanReserve:              r.CanReserve,
		CanReserveInternalRooms: r.CanReserveInternalRooms,
		MaxHoursOverride:        overrideOf(r.MaxHoursOverride),
		Priority:                r.Priority,
	}
}

// StudentCapability is granted to users without a profile or a known role.
func StudentCapability(userID string) Capability {
	return Capability{
		UserID:     userID,
		Role:       constant.RoleStudent,
		CanReserve: true,
	}
}
