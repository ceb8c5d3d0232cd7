package dto

import (
	"salas/shared/constant"
	"salas/shared/model"
	"salas/shared/timezone"
)

// Metadata is the audit stamp as rendered in responses, timestamps in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func NewMetadata(stamp model.Metadata) *Metadata {
	return &Metadata{
		CreatedAt:  timezone.Format(stamp.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(stamp.ModifiedAt, constant.DateFormat),
		CreatedBy:  stamp.CreatedBy,
		ModifiedBy: stamp.ModifiedBy,
	}
}

func (m *Metadata) FromModel(stamp model.Metadata) {
	*m = *NewMetadata(stamp)
}
