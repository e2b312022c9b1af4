package dto

import (
	annotationDto "reservas/internal/domains/annotation/model/dto"
	annotationModel "reservas/internal/domains/annotation/model"
	"reservas/internal/domains/reservation/model"
	"reservas/shared/amount"
	"time"
)

// ReservationView is a reservation with its room and state names and its annotations.
type ReservationView struct {
	ID               int64                              `json:"id"               example:"1"`
	Name             string                             `json:"name"             example:"Reserva 1"`
	RoomID           *int64                             `json:"roomId"           example:"1"`
	PartySize        int64                              `json:"partySize"        example:"2"`
	StateID          *int64                             `json:"stateId"          example:"1"`
	Total            amount.Amount                      `json:"total"            swaggertype:"number" example:"100.00"`
	Deposit          amount.Amount                      `json:"deposit"          swaggertype:"number" example:"0.00"`
	CommissionAmount amount.Amount                      `json:"commissionAmount" swaggertype:"number" example:"0.00"`
	CommissionStatus string                             `json:"commissionStatus" example:"pendiente"`
	StartDate        time.Time                          `json:"startDate"`
	EndDate          time.Time                          `json:"endDate"`
	Room             *string                            `json:"room"             example:"HAB 1"`
	State            *string                            `json:"state"            example:"por cobrar"`
	Annotations      []annotationDto.AnnotationResponse `json:"annotations"`
}

func (v *ReservationView) FromModel(model model.Reservation, annotations []annotationModel.Annotation) {
	v.ID = model.ID
	v.Name = model.Name
	v.RoomID = model.RoomID
	v.PartySize = model.PartySize
	v.StateID = model.StateID
	v.Total = model.Total
	v.Deposit = model.Deposit
	v.CommissionAmount = model.CommissionAmount
	v.CommissionStatus = model.CommissionStatus
	v.StartDate = model.StartDate
	v.EndDate = model.EndDate
	v.Room = model.RoomName
	v.State = model.StateName

	v.Annotations = make([]annotationDto.AnnotationResponse, len(annotations))
	for i, annotation := range annotations {
		v.Annotations[i].FromModel(annotation)
	}
}

// ReservationIDs returns the ids of reservations in order.
func ReservationIDs(reservations []model.Reservation) []int64 {
	ids := make([]int64, len(reservations))
	for i, reservation := range reservations {
		ids[i] = reservation.ID
	}

	return ids
}

// GroupAnnotations buckets annotations by reservation id keeping their relative order.
func GroupAnnotations(annotations []annotationModel.Annotation) map[int64][]annotationModel.Annotation {
	grouped := make(map[int64][]annotationModel.Annotation)
	for _, annotation := range annotations {
		grouped[annotation.ReservationID] = append(grouped[annotation.ReservationID], annotation)
	}

	return grouped
}

// BuildViews emits one view per reservation in the given order. Reservations without
// annotations get an empty list, and annotations of unknown reservations are dropped.
func BuildViews(reservations []model.Reservation, annotations []annotationModel.Annotation) []ReservationView {
	grouped := GroupAnnotations(annotations)

	views := make([]ReservationView, len(reservations))
	for i, reservation := range reservations {
		views[i].FromModel(reservation, grouped[reservation.ID])
	}

	return views
}
