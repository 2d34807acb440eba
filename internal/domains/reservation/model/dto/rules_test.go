package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

func policyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Restaurant.ClosedWeekday = int(time.Tuesday)
	cfg.App.Restaurant.OpeningTime = "10:30"
	cfg.App.Restaurant.ClosingTime = "21:30"

	return cfg
}

// openFutureDate returns a date at least a week out that does not fall on
// the configured closed weekday.
func openFutureDate() string {
	date := timezone.Now().AddDate(0, 0, 7)
	if date.Weekday() == time.Tuesday {
		date = date.AddDate(0, 0, 1)
	}

	return date.Format(constant.ReservationDateFormat)
}

// nextClosedDate returns the next Tuesday at least a week out.
func nextClosedDate() string {
	date := timezone.Now().AddDate(0, 0, 7)
	for date.Weekday() != time.Tuesday {
		date = date.AddDate(0, 0, 1)
	}

	return date.Format(constant.ReservationDateFormat)
}

func validCreateRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "(202) 555-0100",
		ReservationDate: openFutureDate(),
		ReservationTime: "18:00",
		People:          2,
	}
}

func TestCreateReservationRequest_Policy(t *testing.T) {
	cfg := policyConfig()

	tests := []struct {
		name    string
		mutate  func(req *dto.CreateReservationRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(req *dto.CreateReservationRequest) {},
		},
		{
			name: "booked status is acceptable",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Status = model.StatusBooked
			},
		},
		{
			name: "malformed date",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationDate = "not-a-date"
			},
			wantErr: "reservation_date must be a valid date format!",
		},
		{
			name: "closed weekday",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationDate = nextClosedDate()
			},
			wantErr: "Restaurant closed on Tuesday, please choose a different day of the week.",
		},
		{
			name: "malformed time",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "25:61"
			},
			wantErr: "reservation_time must be valid time.",
		},
		{
			name: "twelve hour time",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "6:00 PM"
			},
			wantErr: "reservation_time must be valid time.",
		},
		{
			name: "before opening",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "09:00"
			},
			wantErr: "reservation_time must be within business hours",
		},
		{
			name: "after closing",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "22:00"
			},
			wantErr: "reservation_time must be within business hours",
		},
		{
			name: "opening time itself is acceptable",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "10:30"
			},
		},
		{
			name: "closing time itself is acceptable",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationTime = "21:30"
			},
		},
		{
			name: "past date",
			mutate: func(req *dto.CreateReservationRequest) {
				date := timezone.Now().AddDate(0, 0, -7)
				if date.Weekday() == time.Tuesday {
					date = date.AddDate(0, 0, -1)
				}

				req.ReservationDate = date.Format(constant.ReservationDateFormat)
			},
			wantErr: "Reservation must be a future date.",
		},
		{
			name: "seated status submitted",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Status = model.StatusSeated
			},
			wantErr: "Status cannot be already seated or finished.",
		},
		{
			name: "finished status submitted",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Status = model.StatusFinished
			},
			wantErr: "Status cannot be already seated or finished.",
		},
		{
			name: "unknown status submitted",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Status = "waiting"
			},
			wantErr: "Status is unknown.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Policy(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateReservationRequest_Policy(t *testing.T) {
	cfg := policyConfig()

	req := dto.UpdateReservationRequest{
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "(202) 555-0100",
		ReservationDate: openFutureDate(),
		ReservationTime: "18:00",
		People:          4,
		// Updates carry the reservation's current status along, so the
		// create-only status rule must not apply here.
		Status: model.StatusSeated,
	}

	assert.NoError(t, req.Policy(cfg))

	req.ReservationTime = "08:00"
	assert.EqualError(t, req.Policy(cfg), "reservation_time must be within business hours")
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := validCreateRequest()

	reservation, err := req.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, req.FirstName, reservation.FirstName)
	assert.Equal(t, req.LastName, reservation.LastName)
	assert.Equal(t, req.MobileNumber, reservation.MobileNumber)
	assert.Equal(t, req.ReservationDate, reservation.ReservationDate.Format(constant.ReservationDateFormat))
	assert.Equal(t, "18:00:00", reservation.ReservationTime, "expected time to be normalized to HH:MM:SS")
	assert.Equal(t, req.People, reservation.People)
	assert.Equal(t, model.StatusBooked, reservation.Status, "expected omitted status to default to booked")
	assert.False(t, reservation.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, reservation.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestUpdateReservationRequest_ToFields(t *testing.T) {
	req := dto.UpdateReservationRequest{
		FirstName:       "Morty",
		LastName:        "Smith",
		MobileNumber:    "555-0101",
		ReservationDate: openFutureDate(),
		ReservationTime: "19:15",
		People:          3,
		Status:          model.StatusBooked,
	}

	fields, err := req.ToFields()

	assert.NoError(t, err)
	assert.Equal(t, req.FirstName, fields[model.FieldFirstName])
	assert.Equal(t, "19:15:00", fields[model.FieldReservationTime])
	assert.NotContains(t, fields, model.FieldStatus, "expected status changes to stay out of the field update")
	assert.Contains(t, fields, constant.FieldModifiedAt)
}
