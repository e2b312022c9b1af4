package dto

import (
	"reservas/internal/domains/state/model"
)

type StateResponse struct {
	ID   int64  `json:"id"   example:"1"`
	Name string `json:"name" example:"por cobrar"`
}

func (r *StateResponse) FromModel(model model.State) {
	r.ID = model.ID
	r.Name = model.Name
}

func FromModels(models []model.State) []StateResponse {
	res := make([]StateResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
