package model

import "time"

const (
	TableName  = "anotaciones"
	EntityName = "annotation"

	FieldID            = "id"
	FieldReservationID = "reserva_id"
	FieldContent       = "contenido"
	FieldCreatedAt     = "created_at"
)

type Annotation struct {
	ID            int64     `db:"id"         readonly:"true"`
	ReservationID int64     `db:"reserva_id"`
	Content       string    `db:"contenido"`
	CreatedAt     time.Time `db:"created_at" readonly:"true"`
}
