package model

import "salas/shared/model"

const (
	TableName          = "materials"
	RoomMaterialsTable = "room_materials"
	EntityName         = "material"

	FieldID          = "id"
	FieldName        = "name"
	FieldIsActive    = "is_active"
	FieldRoomID      = "room_id"
	FieldMaterialID  = "material_id"
	FieldDescription = "description"
)

type Material struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

// OfferedMaterial is a material as listed in a room's catalog.
type OfferedMaterial struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	RoomID      string `db:"room_id" table:"room_materials"`
}

func (OfferedMaterial) GetJoinQuery() string {
	return "JOIN room_materials ON room_materials.material_id = materials.id"
}

// OfferedIDs indexes the ids of materials for membership checks.
func OfferedIDs(materials []OfferedMaterial) map[string]struct{} {
	ids := make(map[string]struct{}, len(materials))
	for _, material := range materials {
		ids[material.ID] = struct{}{}
	}

	return ids
}
