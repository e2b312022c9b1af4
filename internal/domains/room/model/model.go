package model

const (
	TableName  = "casas"
	EntityName = "room"

	FieldID   = "id"
	FieldName = "nombre"
)

type Room struct {
	ID   int64  `db:"id"     readonly:"true"`
	Name string `db:"nombre"`
}
