package dto

import (
	"fmt"
	"regexp"
	"time"

	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

// The booking policy is an ordered list of pure rules. Each rule owns
// exactly one concern and the chain stops at the first violation, so new
// rules can be added without touching existing ones.

type policyInput struct {
	date   string
	time   string
	status string
}

type policyRule func(cfg *config.Config, in policyInput) error

var (
	createRules = []policyRule{
		ruleValidDate,
		ruleOpenWeekday,
		ruleValidTime,
		ruleBusinessHours,
		ruleFutureDateTime,
		ruleCreatableStatus,
	}

	updateRules = []policyRule{
		ruleValidDate,
		ruleOpenWeekday,
		ruleValidTime,
		ruleBusinessHours,
		ruleFutureDateTime,
	}
)

func runRules(cfg *config.Config, in policyInput, rules []policyRule) error {
	for _, rule := range rules {
		if err := rule(cfg, in); err != nil {
			return err
		}
	}

	return nil
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func ruleValidDate(_ *config.Config, in policyInput) error {
	if _, err := timezone.Parse(constant.ReservationDateFormat, in.date); err != nil {
		return failure.BadRequestFromString("reservation_date must be a valid date format!") //nolint:wrapcheck
	}

	return nil
}

func ruleOpenWeekday(cfg *config.Config, in policyInput) error {
	date, err := timezone.Parse(constant.ReservationDateFormat, in.date)
	if err != nil {
		return failure.BadRequestFromString("reservation_date must be a valid date format!") //nolint:wrapcheck
	}

	closedWeekday := time.Weekday(cfg.App.Restaurant.ClosedWeekday)
	if date.Weekday() == closedWeekday {
		msg := fmt.Sprintf("Restaurant closed on %s, please choose a different day of the week.", closedWeekday)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ruleValidTime(_ *config.Config, in policyInput) error {
	if !timePattern.MatchString(in.time) {
		return failure.BadRequestFromString("reservation_time must be valid time.") //nolint:wrapcheck
	}

	return nil
}

func ruleBusinessHours(cfg *config.Config, in policyInput) error {
	requested, err := minutesOfDay(normalizeTime(in.time))
	if err != nil {
		return failure.BadRequestFromString("reservation_time must be valid time.") //nolint:wrapcheck
	}

	opening, err := minutesOfDay(normalizeTime(cfg.App.Restaurant.OpeningTime))
	if err != nil {
		return fmt.Errorf("invalid configured opening time: %w", err)
	}

	closing, err := minutesOfDay(normalizeTime(cfg.App.Restaurant.ClosingTime))
	if err != nil {
		return fmt.Errorf("invalid configured closing time: %w", err)
	}

	// Both bounds are inclusive: booking at opening or closing time is fine.
	if requested < opening || requested > closing {
		return failure.BadRequestFromString("reservation_time must be within business hours") //nolint:wrapcheck
	}

	return nil
}

func ruleFutureDateTime(_ *config.Config, in policyInput) error {
	moment, err := CombineDateTime(in.date, in.time)
	if err != nil {
		return failure.BadRequestFromString("reservation_date must be a valid date format!") //nolint:wrapcheck
	}

	if !moment.After(timezone.Now()) {
		return failure.BadRequestFromString("Reservation must be a future date.") //nolint:wrapcheck
	}

	return nil
}

func ruleCreatableStatus(_ *config.Config, in policyInput) error {
	switch in.status {
	case constant.Empty, model.StatusBooked:
		return nil
	case model.StatusSeated, model.StatusFinished:
		return failure.BadRequestFromString("Status cannot be already seated or finished.") //nolint:wrapcheck
	default:
		return failure.BadRequestFromString("Status is unknown.") //nolint:wrapcheck
	}
}

// CombineDateTime builds the reservation moment in the application
// timezone from its date and time-of-day parts.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	layout := constant.ReservationDateFormat + " " + constant.ReservationTimeFormat

	moment, err := timezone.Parse(layout, date+" "+normalizeTime(timeOfDay))
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return moment, nil
}

// normalizeTime pads HH:MM to HH:MM:SS so stored values compare uniformly.
func normalizeTime(timeOfDay string) string {
	if len(timeOfDay) == len("15:04") {
		return timeOfDay + ":00"
	}

	return timeOfDay
}

func minutesOfDay(timeOfDay string) (int, error) {
	parsed, err := time.Parse(constant.ReservationTimeFormat, timeOfDay)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
