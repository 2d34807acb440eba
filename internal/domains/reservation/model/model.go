package model

import (
	"time"

	"github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "reservation_id"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldMobileNumber    = "mobile_number"
	FieldReservationDate = "reservation_date"
	FieldReservationTime = "reservation_time"
	FieldPeople          = "people"
	FieldStatus          = "status"
)

type Reservation struct {
	ID              int64     `db:"reservation_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	MobileNumber    string    `db:"mobile_number"`
	ReservationDate time.Time `db:"reservation_date"`
	ReservationTime string    `db:"reservation_time"`
	People          int       `db:"people"`
	Status          string    `db:"status"`
	model.Metadata
}
