package web

import (
	"fmt"
	"time"
)

type formField struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Step        string
	Errors      []string
}

type formView struct {
	Action string
	Fields []formField
	Styles []string
	Style  string
}

func (s *Server) newFormView(req *confirmationRequest, errs map[string][]string) formView {
	if req == nil {
		today := time.Now()

		//nolint:exhaustruct
		req = &confirmationRequest{
			CheckIn:  today.Format(dateLayout),
			CheckOut: today.AddDate(0, 0, 1).Format(dateLayout),
		}
	}

	style := req.Style
	if style == "" {
		style = s.issuer.DefaultStyle()
	}

	fields := []formField{
		{Name: "guest_name", Label: "Guest Name", Type: "text", Value: req.GuestName, Placeholder: "Enter guest's full name"},
		{Name: "room_type", Label: "Room Type (Custom)", Type: "text", Value: req.RoomType},
		{Name: "check_in", Label: "Check-in Date", Type: "date", Value: req.CheckIn},
		{Name: "check_out", Label: "Check-out Date", Type: "date", Value: req.CheckOut},
		{Name: "guests", Label: "Number of Guests", Type: "text", Value: req.Guests, Placeholder: "e.g., 2 adults, 1 child"},
		{Name: "price", Label: "Price (incl. Tax)", Type: "number", Value: formValue(req.Price), Step: "0.01"},
		{Name: "environment_tax", Label: "Environment Tax", Type: "number", Value: formValue(req.EnvironmentTax), Step: "0.01"},
		{Name: "payment_status", Label: "Payment Status", Type: "text", Value: req.PaymentStatus, Placeholder: "e.g., Paid in full, Pending"},
	}

	for i := range fields {
		fields[i].Errors = errs[fields[i].Name]
	}

	return formView{
		Action: confirmationsPath,
		Fields: fields,
		Styles: s.issuer.Styles(),
		Style:  style,
	}
}

func formValue(v any) string {
	if v == nil {
		return ""
	}

	return fmt.Sprint(v)
}
