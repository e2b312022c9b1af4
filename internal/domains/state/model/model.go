package model

const (
	TableName  = "estado"
	EntityName = "state"

	FieldID   = "id"
	FieldName = "nombre"
)

type State struct {
	ID   int64  `db:"id"     readonly:"true"`
	Name string `db:"nombre"`
}
