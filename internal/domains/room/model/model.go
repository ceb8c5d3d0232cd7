package model

import "salas/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldCapacity    = "capacity"
	FieldIsPublic    = "is_public"
	FieldIsActive    = "is_active"
)

type Room struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Capacity    int    `db:"capacity"`
	Location    string `db:"location"`
	IsPublic    bool   `db:"is_public"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
