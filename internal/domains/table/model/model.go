package model

import (
	"database/sql"

	"github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
)

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID            = "table_id"
	FieldTableName     = "table_name"
	FieldCapacity      = "capacity"
	FieldReservationID = "reservation_id"
)

// Table is a physical dining table. ReservationID is null while the
// table is free and points at the seated reservation while occupied.
type Table struct {
	ID            int64         `db:"table_id"`
	TableName     string        `db:"table_name"`
	Capacity      int           `db:"capacity"`
	ReservationID sql.NullInt64 `db:"reservation_id"`
	model.Metadata
}

// Occupied reports whether the table currently has a seated reservation.
func (t *Table) Occupied() bool {
	return t.ReservationID.Valid
}
