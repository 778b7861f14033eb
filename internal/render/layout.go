package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avstrong/confirmation/internal/booking"
)

type SectionKind int

const (
	SectionTable SectionKind = iota
	SectionNote
	SectionParagraph
	SectionPanels
)

// Span is a run of inline text. Bold and Accent change how it is drawn.
type Span struct {
	Text   string
	Bold   bool
	Accent bool
	Link   string
}

type Row struct {
	Label string
	Value string
}

type Panel struct {
	Title string
	Lines []string
}

type Section struct {
	Kind    SectionKind
	Heading string
	Rows    []Row
	Spans   []Span
	Panels  []Panel
}

// Layout is the engine independent content of one confirmation, in print order.
type Layout struct {
	Title    string
	Greeting []Span
	Tagline  string
	Sections []Section
	Footer   []Span
}

func (p Profile) money(amount string) string {
	if p.Currency == "" {
		return amount
	}

	return amount + " " + p.Currency
}

// Compose maps a record and the hotel profile onto the fixed section order.
func Compose(rec booking.Record, p Profile) Layout {
	stay := fmt.Sprintf("%s (%s) — %s (%s)",
		rec.CheckInText(), p.CheckInHours, rec.CheckOutText(), p.CheckOutHours)

	return Layout{
		Title: p.HotelName,
		Greeting: []Span{
			{Text: "Thank you for choosing ", Bold: true},
			{Text: p.HotelName, Bold: true, Accent: true},
			{Text: "!", Bold: true},
		},
		Tagline: p.Tagline,
		Sections: []Section{
			{
				Kind:    SectionTable,
				Heading: "Guest Details",
				Rows: []Row{
					{Label: "Guest Name", Value: rec.GuestName},
					{Label: "Room Type", Value: rec.RoomType},
					{Label: "Number of Guests", Value: rec.Guests},
				},
			},
			{
				Kind:    SectionTable,
				Heading: "Booking Details",
				Rows: []Row{
					{Label: "Check-In / Check-Out", Value: stay},
					{Label: "Total Nights", Value: strconv.Itoa(rec.Nights)},
					{Label: "Price (incl. Tax)", Value: p.money(rec.Price)},
					{Label: "Environment Tax", Value: p.money(rec.EnvironmentTax)},
					{Label: "Total Charge", Value: p.money(rec.TotalCharge)},
					{Label: "Payment Status", Value: rec.PaymentStatusText()},
				},
			},
			{
				Kind:  SectionNote,
				Spans: []Span{{Text: "Note: ", Bold: true}, {Text: p.ParkingNote}},
			},
			{
				Kind:    SectionParagraph,
				Heading: "Terms & Conditions",
				Spans: []Span{
					{Text: "For complete terms and conditions, please visit our website: "},
					{Text: p.TermsURL, Accent: true, Link: linkURL(p.TermsURL)},
				},
			},
			{
				Kind:    SectionPanels,
				Heading: "Hotel Contact Details & Bank Details",
				Panels: []Panel{
					{
						Title: "Hotel Contact Details",
						Lines: []string{
							"Address: " + p.Address,
							"Coordinates: " + p.Coordinates,
							"Email: " + p.Email,
							"Phone: " + strings.Join(p.Phones, ", "),
							"Website: " + p.Website,
						},
					},
					{
						Title: "Bank Details",
						Lines: []string{
							"Bank: " + p.BankName,
							"IBAN: " + p.IBAN,
							"BIC: " + p.BIC,
							"Name: " + p.AccountHolder,
						},
					},
				},
			},
			{
				Kind:    SectionParagraph,
				Heading: "Cancellation Policy",
				Spans: []Span{
					{Text: "There are no refunds for cancellations within "},
					{Text: fmt.Sprintf("%d days", p.CancellationDays), Bold: true},
					{Text: " prior to arrival."},
				},
			},
		},
		Footer: []Span{
			{Text: "Confirmed by: "},
			{Text: p.ManagerName, Bold: true},
			{Text: ", " + p.ManagerTitle},
		},
	}
}

func (s Section) row(label string) (Row, bool) {
	for _, r := range s.Rows {
		if r.Label == label {
			return r, true
		}
	}

	return Row{}, false
}

// Row finds a table row by label across all sections.
func (l Layout) Row(label string) (Row, bool) {
	for _, s := range l.Sections {
		if r, ok := s.row(label); ok {
			return r, true
		}
	}

	return Row{}, false
}

func linkURL(address string) string {
	if address == "" || strings.Contains(address, "://") {
		return address
	}

	return "https://" + address
}

func plain(spans []Span) string {
	var b strings.Builder

	for _, s := range spans {
		b.WriteString(s.Text)
	}

	return b.String()
}
