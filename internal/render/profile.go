package render

import (
	"errors"
	"fmt"
)

var ErrProfile = errors.New("invalid hotel profile")

// Profile is the static content printed on every confirmation. It never
// comes from booking input.
type Profile struct {
	HotelName        string
	Tagline          string
	Address          string
	Coordinates      string
	Email            string
	Phones           []string
	Website          string
	TermsURL         string
	BankName         string
	IBAN             string
	BIC              string
	AccountHolder    string
	CancellationDays int
	ManagerName      string
	ManagerTitle     string
	Currency         string
	CheckInHours     string
	CheckOutHours    string
	ParkingNote      string
}

func DefaultProfile() Profile {
	return Profile{
		HotelName:        "Achillion Hotel",
		Tagline:          "We look forward to welcoming you soon.",
		Address:          "6, Nikis Str., Paralia Katerinis, Pieria, Greece",
		Coordinates:      "40.267814, 22.596908",
		Email:            "achillion.paralia@gmail.com",
		Phones:           []string{"+30 2351061320", "+30 6946 552892"},
		Website:          "www.achillion-paralia.gr",
		TermsURL:         "www.achillion-paralia.gr/terms",
		BankName:         "Alpha Bank",
		IBAN:             "GR5601408400840002002023605",
		BIC:              "CRBAGRAA",
		AccountHolder:    "Kampouridis Dimitris",
		CancellationDays: 14, //nolint:gomnd
		ManagerName:      "Kampouridis Dimitris",
		ManagerTitle:     "Hotel Manager",
		Currency:         "€",
		CheckInHours:     "15:00–23:00",
		CheckOutHours:    "08:00–11:00",
		ParkingNote:      "Please be informed that parking services are not available at the facility.",
	}
}

func (p Profile) validate() error {
	if p.HotelName == "" {
		return fmt.Errorf("hotel name is empty: %w", ErrProfile)
	}

	if p.CancellationDays < 0 {
		return fmt.Errorf("cancellation days %d: %w", p.CancellationDays, ErrProfile)
	}

	return nil
}

// DocumentTitle is stored in the PDF metadata.
func (p Profile) DocumentTitle() string {
	return p.HotelName + " Booking Confirmation"
}
