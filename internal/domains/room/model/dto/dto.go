package dto

import (
	materialModel "salas/internal/domains/material/model"
	"salas/internal/domains/room/model"
	"salas/shared"
)

type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	IsPublic    bool   `json:"is_public"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.IsPublic = model.IsPublic
}

type MaterialResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RoomDetailResponse struct {
	RoomResponse
	Materials []MaterialResponse `json:"materials"`
}

func (r *RoomDetailResponse) FromModel(room model.Room, materials []materialModel.OfferedMaterial) {
	r.RoomResponse.FromModel(room)

	r.Materials = make([]MaterialResponse, len(materials))
	for i, material := range materials {
		r.Materials[i] = MaterialResponse{
			ID:          material.ID,
			Name:        material.Name,
			Description: material.Description,
		}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
