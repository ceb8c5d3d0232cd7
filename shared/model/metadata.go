package model

import "time"

// Metadata is the audit stamp every mutable table carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a row created by user at at.
func NewMetadata(user string, at time.Time) Metadata {
	return Metadata{CreatedAt: at, ModifiedAt: at, CreatedBy: user, ModifiedBy: user}
}
