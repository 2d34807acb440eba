package dto

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	gModel "github.com/kadynthorpe/starter-restaurant-reservation/shared/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

type CreateReservationRequest struct {
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"        validate:"required"`
	MobileNumber    string `json:"mobile_number"    validate:"required,max=20"`
	ReservationDate string `json:"reservation_date" validate:"required"`
	ReservationTime string `json:"reservation_time" validate:"required"`
	People          int    `json:"people"           validate:"required,gte=1"`
	Status          string `json:"status"           validate:"omitempty"`
}

// Policy runs the restaurant booking rules against the payload, stopping
// at the first violation.
func (c *CreateReservationRequest) Policy(cfg *config.Config) error {
	return runRules(cfg, policyInput{
		date:   c.ReservationDate,
		time:   c.ReservationTime,
		status: c.Status,
	}, createRules)
}

func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	reservationDate, err := timezone.Parse(constant.ReservationDateFormat, c.ReservationDate)
	if err != nil {
		return model.Reservation{}, err //nolint:wrapcheck
	}

	status := model.StatusBooked
	if c.Status != "" {
		status = c.Status
	}

	return model.Reservation{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		MobileNumber:    c.MobileNumber,
		ReservationDate: reservationDate,
		ReservationTime: normalizeTime(c.ReservationTime),
		People:          c.People,
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateReservationRequest struct {
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"        validate:"required"`
	MobileNumber    string `json:"mobile_number"    validate:"required,max=20"`
	ReservationDate string `json:"reservation_date" validate:"required"`
	ReservationTime string `json:"reservation_time" validate:"required"`
	People          int    `json:"people"           validate:"required,gte=1"`
	Status          string `json:"status"           validate:"omitempty"`
}

func (u *UpdateReservationRequest) Policy(cfg *config.Config) error {
	return runRules(cfg, policyInput{
		date:   u.ReservationDate,
		time:   u.ReservationTime,
		status: u.Status,
	}, updateRules)
}

// ToFields maps the editable payload onto update columns. Status is
// deliberately absent: status changes go through the transition rules in
// the service layer.
func (u *UpdateReservationRequest) ToFields() (map[string]any, error) {
	reservationDate, err := timezone.Parse(constant.ReservationDateFormat, u.ReservationDate)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return map[string]any{
		model.FieldFirstName:       u.FirstName,
		model.FieldLastName:        u.LastName,
		model.FieldMobileNumber:    u.MobileNumber,
		model.FieldReservationDate: reservationDate,
		model.FieldReservationTime: normalizeTime(u.ReservationTime),
		model.FieldPeople:          u.People,
		constant.FieldModifiedAt:   timezone.Now(),
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReservationResponse struct {
	ID              int64  `json:"reservation_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	People          int    `json:"people"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.MobileNumber = model.MobileNumber
	r.ReservationDate = model.ReservationDate.Format(constant.ReservationDateFormat)
	r.ReservationTime = model.ReservationTime
	r.People = model.People
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func NewReservationsResponse(models []model.Reservation) []ReservationResponse {
	reservations := make([]ReservationResponse, len(models))
	for i, mod := range models {
		reservations[i].FromModel(mod)
	}

	return reservations
}
