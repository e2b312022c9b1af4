package dto

import (
	"reservas/internal/domains/room/model"
)

type RoomResponse struct {
	ID   int64  `json:"id"   example:"1"`
	Name string `json:"name" example:"HAB 1"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
