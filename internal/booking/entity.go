package booking

import "time"

// Input is the raw booking data collected from the form. Nothing is assumed
// to be validated upstream.
type Input struct {
	GuestName      string    `json:"guest_name"`
	RoomType       string    `json:"room_type"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Guests         string    `json:"guests"`
	Price          float64   `json:"price"`
	EnvironmentTax float64   `json:"environment_tax"`
	PaymentStatus  string    `json:"payment_status"`
}

// Record is a validated booking with every derived value computed and every
// displayed value already formatted. It is returned by value from Build.
type Record struct {
	GuestName     string
	RoomType      string
	Guests        string
	PaymentStatus string

	CheckIn  time.Time
	CheckOut time.Time
	Nights   int

	Price          string
	EnvironmentTax string
	TotalCharge    string
}

func (r Record) CheckInText() string {
	return FormatDate(r.CheckIn)
}

func (r Record) CheckOutText() string {
	return FormatDate(r.CheckOut)
}

// PaymentStatusText returns the payment status or the placeholder when it is empty.
func (r Record) PaymentStatusText() string {
	if r.PaymentStatus == "" {
		return Placeholder
	}

	return r.PaymentStatus
}

func (r Record) Filename() string {
	return Filename(r.GuestName, r.CheckIn, r.CheckOut)
}
