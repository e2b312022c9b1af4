package dto

import (
	"reservas/internal/domains/annotation/model"
	"time"
)

type CreateAnnotationRequest struct {
	ReservationID int64  `json:"reservationId" validate:"required,gt=0,lte=2147483647" example:"1"`
	Content       string `json:"content"       validate:"required,max=1000"            example:"Llega tarde"`
}

func (c *CreateAnnotationRequest) ToModel() model.Annotation {
	return model.Annotation{
		ReservationID: c.ReservationID,
		Content:       c.Content,
	}
}

type AnnotationResponse struct {
	ID            int64     `json:"id"            example:"1"`
	ReservationID int64     `json:"reservationId" example:"1"`
	Content       string    `json:"content"       example:"Llega tarde"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *AnnotationResponse) FromModel(model model.Annotation) {
	a.ID = model.ID
	a.ReservationID = model.ReservationID
	a.Content = model.Content
	a.CreatedAt = model.CreatedAt
}
