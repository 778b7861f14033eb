package booking

import (
	"strings"
	"time"
)

// Placeholder is displayed for optional fields left empty.
const Placeholder = "—"

const hoursPerDay = 24

func (in *Input) validate() error {
	inputErr := newValidationError()

	if strings.TrimSpace(in.GuestName) == "" {
		inputErr.addError("guest_name", "provide guest name")
	}

	if strings.TrimSpace(in.Guests) == "" {
		inputErr.addError("guests", "provide number of guests")
	}

	if in.CheckIn.IsZero() {
		inputErr.addError("check_in", "provide check-in date")
	}

	if in.CheckOut.IsZero() {
		inputErr.addError("check_out", "provide check-out date")
	}

	if !in.CheckIn.IsZero() && !in.CheckOut.IsZero() && nights(in.CheckIn, in.CheckOut) <= 0 {
		inputErr.addError("check_out", "check-out must be after check-in")
	}

	if in.Price < 0 {
		inputErr.addError("price", "price must not be negative")
	}

	if in.EnvironmentTax < 0 {
		inputErr.addError("environment_tax", "environment tax must not be negative")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// calendarDay drops the time of day and the zone, keeping the date as written.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nights(checkIn, checkOut time.Time) int {
	return int(calendarDay(checkOut).Sub(calendarDay(checkIn)).Hours() / hoursPerDay)
}

// Build validates the input and derives the record that gets rendered.
// Any failure is a *ValidationError.
func Build(in Input) (Record, error) {
	if err := in.validate(); err != nil {
		return Record{}, err
	}

	roomType := strings.TrimSpace(in.RoomType)
	if roomType == "" {
		roomType = Placeholder
	}

	return Record{
		GuestName:      strings.TrimSpace(in.GuestName),
		RoomType:       roomType,
		Guests:         strings.TrimSpace(in.Guests),
		PaymentStatus:  strings.TrimSpace(in.PaymentStatus),
		CheckIn:        calendarDay(in.CheckIn),
		CheckOut:       calendarDay(in.CheckOut),
		Nights:         nights(in.CheckIn, in.CheckOut),
		Price:          FormatMoney(in.Price),
		EnvironmentTax: FormatMoney(in.EnvironmentTax),
		TotalCharge:    FormatMoney(in.Price + in.EnvironmentTax),
	}, nil
}
