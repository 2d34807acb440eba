package model

import (
	"fmt"

	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"
)

const (
	StatusBooked    = "booked"
	StatusSeated    = "seated"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

// allowedTransitions defines the reservation lifecycle. The key is the
// current status, the value the statuses it may move to. Every status
// update in the system, whether through the status endpoint or the table
// seat/unseat flow, goes through this table.
var allowedTransitions = map[string][]string{
	StatusBooked: {
		StatusSeated,
		StatusCancelled,
	},
	StatusSeated: {
		StatusFinished,
	},
	StatusFinished:  {}, // Terminal state
	StatusCancelled: {}, // Terminal state
}

// KnownStatus reports whether the given status is one of the four
// lifecycle statuses.
func KnownStatus(status string) bool {
	_, known := allowedTransitions[status]

	return known
}

// CanTransition checks if a transition from one status to another is allowed.
func CanTransition(from, to string) bool {
	allowed, exists := allowedTransitions[from]
	if !exists {
		return false
	}

	for _, status := range allowed {
		if status == to {
			return true
		}
	}

	return false
}

// ValidateTransition returns a client-facing failure if the transition is
// not allowed.
func ValidateTransition(from, to string) error {
	if !KnownStatus(to) {
		return failure.BadRequestFromString("Status is unknown.") //nolint:wrapcheck
	}

	if from == StatusFinished {
		return failure.BadRequestFromString("a finished reservation cannot be updated") //nolint:wrapcheck
	}

	if !CanTransition(from, to) {
		return failure.BadRequestFromString(fmt.Sprintf("status cannot change from %s to %s", from, to)) //nolint:wrapcheck
	}

	return nil
}
