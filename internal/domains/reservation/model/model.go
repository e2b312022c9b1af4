package model

import (
	"reservas/shared/amount"
	"time"
)

const (
	TableName  = "reservas"
	EntityName = "reservation"

	FieldID               = "id"
	FieldName             = "nombre"
	FieldRoomID           = "casa_id"
	FieldPartySize        = "cant_personas"
	FieldStateID          = "estado_id"
	FieldTotal            = "total"
	FieldDeposit          = "abono"
	FieldCommissionAmount = "comision_monto"
	FieldCommissionStatus = "comision_estado"
	FieldStartDate        = "fecha_inicio"
	FieldEndDate          = "fecha_fin"

	// CacheKeyViews prefixes every cached reservation view.
	CacheKeyViews = "reservas:views"
)

// Reservation is a reservas row with the names of its room and state resolved by left joins.
// RoomName and StateName are nil when the reference is null or dangling.
type Reservation struct {
	ID               int64         `db:"id"              readonly:"true"`
	Name             string        `db:"nombre"`
	RoomID           *int64        `db:"casa_id"`
	PartySize        int64         `db:"cant_personas"`
	StateID          *int64        `db:"estado_id"`
	Total            amount.Amount `db:"total"`
	Deposit          amount.Amount `db:"abono"`
	CommissionAmount amount.Amount `db:"comision_monto"`
	CommissionStatus string        `db:"comision_estado"`
	StartDate        time.Time     `db:"fecha_inicio"`
	EndDate          time.Time     `db:"fecha_fin"`
	RoomName         *string       `column:"nombre" db:"casa"   table:"casas"`
	StateName        *string       `column:"nombre" db:"estado" table:"estado"`
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN casas ON casas.id = reservas.casa_id LEFT JOIN estado ON estado.id = reservas.estado_id"
}
