package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
)

func TestKnownStatus(t *testing.T) {
	for _, status := range []string{model.StatusBooked, model.StatusSeated, model.StatusFinished, model.StatusCancelled} {
		assert.True(t, model.KnownStatus(status), status)
	}

	assert.False(t, model.KnownStatus("waiting"))
	assert.False(t, model.KnownStatus(""))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{model.StatusBooked, model.StatusSeated, true},
		{model.StatusBooked, model.StatusCancelled, true},
		{model.StatusSeated, model.StatusFinished, true},
		{model.StatusBooked, model.StatusFinished, false},
		{model.StatusSeated, model.StatusBooked, false},
		{model.StatusSeated, model.StatusCancelled, false},
		{model.StatusFinished, model.StatusBooked, false},
		{model.StatusFinished, model.StatusSeated, false},
		{model.StatusCancelled, model.StatusBooked, false},
		{"waiting", model.StatusSeated, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{
			name: "booked to seated",
			from: model.StatusBooked,
			to:   model.StatusSeated,
		},
		{
			name: "booked to cancelled",
			from: model.StatusBooked,
			to:   model.StatusCancelled,
		},
		{
			name: "seated to finished",
			from: model.StatusSeated,
			to:   model.StatusFinished,
		},
		{
			name:    "unknown target",
			from:    model.StatusBooked,
			to:      "waiting",
			wantErr: "Status is unknown.",
		},
		{
			name:    "finished is immutable",
			from:    model.StatusFinished,
			to:      model.StatusBooked,
			wantErr: "a finished reservation cannot be updated",
		},
		{
			name:    "seated cannot be cancelled",
			from:    model.StatusSeated,
			to:      model.StatusCancelled,
			wantErr: "status cannot change from seated to cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateTransition(tt.from, tt.to)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
