package dto

import (
	"reservas/internal/domains/reservation/model"
	"reservas/shared"
	"reservas/shared/amount"
	"reservas/shared/constant"
	"reservas/shared/failure"
	"time"
)

type CreateReservationRequest struct {
	Name             string         `json:"name"             validate:"required,max=255"                 example:"Reserva 1"`
	RoomID           *int64         `json:"roomId"           validate:"omitempty,gt=0,lte=2147483647"    example:"1"`
	PartySize        int64          `json:"partySize"        validate:"required,gt=0,lte=2147483647"     example:"2"`
	StateID          *int64         `json:"stateId"          validate:"omitempty,gt=0,lte=2147483647"    example:"1"`
	Total            *amount.Amount `json:"total"            validate:"required,min=0"                   swaggertype:"number" example:"100.00"`
	Deposit          *amount.Amount `json:"deposit"          validate:"omitempty,min=0"                  swaggertype:"number" example:"0.00"`
	CommissionAmount *amount.Amount `json:"commissionAmount" validate:"omitempty,min=0"                  swaggertype:"number" example:"0.00"`
	CommissionStatus *string        `json:"commissionStatus" validate:"omitempty,max=50"                 example:"pendiente"`
	StartDate        string         `json:"startDate"        validate:"required,datetime_any"            example:"2025-12-01T15:00:00Z"`
	EndDate          string         `json:"endDate"          validate:"required,datetime_any"            example:"2025-12-05T11:00:00Z"`
}

// ToModel parses the dates, checks their order and fills the financial defaults.
func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	start, end, err := parseRange(c.StartDate, c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	res := model.Reservation{
		Name:             c.Name,
		RoomID:           c.RoomID,
		PartySize:        c.PartySize,
		StateID:          c.StateID,
		CommissionStatus: constant.DefaultValueCommissionStatus,
		StartDate:        start,
		EndDate:          end,
	}

	if c.Total != nil {
		res.Total = *c.Total
	}

	if c.Deposit != nil {
		res.Deposit = *c.Deposit
	}

	if c.CommissionAmount != nil {
		res.CommissionAmount = *c.CommissionAmount
	}

	if c.CommissionStatus != nil {
		res.CommissionStatus = *c.CommissionStatus
	}

	return res, nil
}

// UpdateReservationRequest carries a partial update. Absent fields keep their stored value;
// roomId and stateId cannot be cleared through it.
type UpdateReservationRequest struct {
	Name             *string        `json:"name"             validate:"omitempty,min=1,max=255"   example:"Reserva 1"`
	RoomID           *int64         `json:"roomId"           validate:"omitempty,gt=0,lte=2147483647" example:"2"`
	PartySize        *int64         `json:"partySize"        validate:"omitempty,gt=0,lte=2147483647" example:"3"`
	StateID          *int64         `json:"stateId"          validate:"omitempty,gt=0,lte=2147483647" example:"2"`
	Total            *amount.Amount `json:"total"            validate:"omitempty,min=0"           swaggertype:"number" example:"150.00"`
	Deposit          *amount.Amount `json:"deposit"          validate:"omitempty,min=0"           swaggertype:"number" example:"50.00"`
	CommissionAmount *amount.Amount `json:"commissionAmount" validate:"omitempty,min=0"           swaggertype:"number" example:"15.00"`
	CommissionStatus *string        `json:"commissionStatus" validate:"omitempty,max=50"          example:"pagado"`
	StartDate        *string        `json:"startDate"        validate:"omitempty,datetime_any"    example:"2025-12-02"`
	EndDate          *string        `json:"endDate"          validate:"omitempty,datetime_any"    example:"2025-12-06"`
}

// ReservationUpdate holds the parsed columns of an update. Nil fields are left untouched.
type ReservationUpdate struct {
	Name             *string        `db:"nombre"`
	RoomID           *int64         `db:"casa_id"`
	PartySize        *int64         `db:"cant_personas"`
	StateID          *int64         `db:"estado_id"`
	Total            *amount.Amount `db:"total"`
	Deposit          *amount.Amount `db:"abono"`
	CommissionAmount *amount.Amount `db:"comision_monto"`
	CommissionStatus *string        `db:"comision_estado"`
	StartDate        *time.Time     `db:"fecha_inicio"`
	EndDate          *time.Time     `db:"fecha_fin"`
}

func (u *UpdateReservationRequest) ToUpdate() (ReservationUpdate, error) {
	res := ReservationUpdate{
		Name:             u.Name,
		RoomID:           u.RoomID,
		PartySize:        u.PartySize,
		StateID:          u.StateID,
		Total:            u.Total,
		Deposit:          u.Deposit,
		CommissionAmount: u.CommissionAmount,
		CommissionStatus: u.CommissionStatus,
	}

	if u.StartDate != nil {
		start, err := parseDate("startDate", *u.StartDate)
		if err != nil {
			return res, err
		}

		res.StartDate = &start
	}

	if u.EndDate != nil {
		end, err := parseDate("endDate", *u.EndDate)
		if err != nil {
			return res, err
		}

		res.EndDate = &end
	}

	return res, nil
}

// Columns returns the column map written by the update.
func (u ReservationUpdate) Columns() map[string]any {
	return shared.TransformFields(u)
}

// CheckDates validates the date order once the update is merged over current.
func (u ReservationUpdate) CheckDates(current model.Reservation) error {
	start, end := current.StartDate, current.EndDate

	if u.StartDate != nil {
		start = *u.StartDate
	}

	if u.EndDate != nil {
		end = *u.EndDate
	}

	return checkOrder(start, end)
}

func parseRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDate("startDate", startValue)
	if err != nil {
		return start, start, err
	}

	end, err := parseDate("endDate", endValue)
	if err != nil {
		return start, end, err
	}

	return start, end, checkOrder(start, end)
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := shared.ParseDate(value)
	if err != nil {
		return parsed, failure.BadRequestFromString(field + " is not a valid date") //nolint:wrapcheck
	}

	return parsed, nil
}

func checkOrder(start, end time.Time) error {
	if end.Before(start) {
		return failure.BadRequestFromString("endDate must be on or after startDate") //nolint:wrapcheck
	}

	return nil
}
