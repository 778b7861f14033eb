package web

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/avstrong/confirmation/internal/booking"
)

const dateLayout = "2006-01-02"

type confirmationRequest struct {
	GuestName      string `json:"guest_name"`
	RoomType       string `json:"room_type"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Guests         string `json:"guests"`
	Price          any    `json:"price"`
	EnvironmentTax any    `json:"environment_tax"`
	PaymentStatus  string `json:"payment_status"`
	Style          string `json:"style"`

	fromForm bool
}

func decodeRequest(r *http.Request, maxBodyBytes int64) (*confirmationRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedContent, err)
	}

	switch mediaType {
	case "application/json":
		var req confirmationRequest

		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}

		return &req, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, mediaType)
	}

	return &confirmationRequest{
		GuestName:      r.PostForm.Get("guest_name"),
		RoomType:       r.PostForm.Get("room_type"),
		CheckIn:        r.PostForm.Get("check_in"),
		CheckOut:       r.PostForm.Get("check_out"),
		Guests:         r.PostForm.Get("guests"),
		Price:          r.PostForm.Get("price"),
		EnvironmentTax: r.PostForm.Get("environment_tax"),
		PaymentStatus:  r.PostForm.Get("payment_status"),
		Style:          r.PostForm.Get("style"),
		fromForm:       true,
	}, nil
}

// amount treats a missing value as zero and reports whether v could be read.
func amount(v any) (float64, bool) {
	if v == nil {
		return 0, true
	}

	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return 0, true
	}

	f, ok := booking.ParseAmount(v)
	if !ok {
		return 0, false
	}

	return f, true
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return t, nil
}

// input converts the request into booking input. Unreadable amounts become
// zero and are listed in lenient; unreadable dates are returned as field errors.
func (req *confirmationRequest) input() (booking.Input, []string, map[string][]string) {
	var lenient []string

	fields := make(map[string][]string)

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		fields["check_in"] = append(fields["check_in"], "use YYYY-MM-DD")
	}

	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		fields["check_out"] = append(fields["check_out"], "use YYYY-MM-DD")
	}

	price, ok := amount(req.Price)
	if !ok {
		lenient = append(lenient, "price")
	}

	tax, ok := amount(req.EnvironmentTax)
	if !ok {
		lenient = append(lenient, "environment_tax")
	}

	return booking.Input{
		GuestName:      req.GuestName,
		RoomType:       req.RoomType,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         req.Guests,
		Price:          price,
		EnvironmentTax: tax,
		PaymentStatus:  req.PaymentStatus,
	}, lenient, fields
}
