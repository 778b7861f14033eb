package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func validInput() Input {
	return Input{
		GuestName:      "Maria Papas",
		Guests:         "2 adults",
		CheckIn:        date(2025, 6, 10),
		CheckOut:       date(2025, 6, 13),
		Price:          300.0,
		EnvironmentTax: 15.0,
	}
}

func TestBuild_MariaPapas(t *testing.T) {
	rec, err := Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, "Maria Papas", rec.GuestName)
	assert.Equal(t, 3, rec.Nights)
	assert.Equal(t, "300.00", rec.Price)
	assert.Equal(t, "15.00", rec.EnvironmentTax)
	assert.Equal(t, "315.00", rec.TotalCharge)
	assert.Equal(t, "10-06-2025", rec.CheckInText())
	assert.Equal(t, "13-06-2025", rec.CheckOutText())
	assert.Equal(t, Placeholder, rec.RoomType)
	assert.Equal(t, "Maria_Papas_10-06-2025_13-06-2025.pdf", rec.Filename())
}

func TestBuild_SameDayCheckOutFails(t *testing.T) {
	in := validInput()
	in.CheckOut = in.CheckIn

	rec, err := Build(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	verr := IsValidationError(err)
	require.NotNil(t, verr)
	assert.True(t, verr.Has("check_out"))
	assert.Equal(t, Record{}, rec)
}

func TestBuild_CheckOutBeforeCheckInFails(t *testing.T) {
	in := validInput()
	in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn

	_, err := Build(in)
	require.NotNil(t, IsValidationError(err))
}

func TestBuild_NightsMatchDayDifference(t *testing.T) {
	checkIn := date(2024, 2, 20)

	for days := 1; days <= 400; days += 17 {
		in := validInput()
		in.CheckIn = checkIn
		in.CheckOut = checkIn.AddDate(0, 0, days)

		rec, err := Build(in)
		require.NoError(t, err)
		assert.Equal(t, days, rec.Nights)
	}
}

func TestBuild_IgnoresTimeOfDayAndZone(t *testing.T) {
	athens := time.FixedZone("EEST", 3*60*60)

	in := validInput()
	in.CheckIn = time.Date(2025, 6, 10, 23, 30, 0, 0, athens)
	in.CheckOut = time.Date(2025, 6, 11, 0, 15, 0, 0, athens)

	rec, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Nights)
	assert.Equal(t, "10-06-2025", rec.CheckInText())
}

func TestBuild_BlankRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(in *Input)
		field string
	}{
		{name: "empty guest name", edit: func(in *Input) { in.GuestName = "" }, field: "guest_name"},
		{name: "whitespace guest name", edit: func(in *Input) { in.GuestName = " \t\n" }, field: "guest_name"},
		{name: "empty guests", edit: func(in *Input) { in.Guests = "" }, field: "guests"},
		{name: "whitespace guests", edit: func(in *Input) { in.Guests = "   " }, field: "guests"},
		{name: "missing check-in", edit: func(in *Input) { in.CheckIn = time.Time{} }, field: "check_in"},
		{name: "missing check-out", edit: func(in *Input) { in.CheckOut = time.Time{} }, field: "check_out"},
		{name: "negative price", edit: func(in *Input) { in.Price = -1 }, field: "price"},
		{name: "negative tax", edit: func(in *Input) { in.EnvironmentTax = -0.5 }, field: "environment_tax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)

			_, err := Build(in)

			verr := IsValidationError(err)
			require.NotNil(t, verr)
			assert.True(t, verr.Has(tt.field), "fields: %v", verr.Fields())
		})
	}
}

func TestBuild_CollectsEveryProblem(t *testing.T) {
	_, err := Build(Input{GuestName: " ", CheckIn: date(2025, 1, 2), CheckOut: date(2025, 1, 1)})

	verr := IsValidationError(err)
	require.NotNil(t, verr)
	assert.Len(t, verr.Fields(), 3)
	assert.Contains(t, verr.Error(), "guest_name")
	assert.Contains(t, verr.Error(), "check_out")
}

func TestBuild_TrimsAndDefaults(t *testing.T) {
	in := validInput()
	in.GuestName = "  Maria Papas  "
	in.Guests = " 2 adults, 1 child "
	in.RoomType = "  Double Sea View "
	in.PaymentStatus = "  Paid in full "

	rec, err := Build(in)
	require.NoError(t, err)

	assert.Equal(t, "Maria Papas", rec.GuestName)
	assert.Equal(t, "2 adults, 1 child", rec.Guests)
	assert.Equal(t, "Double Sea View", rec.RoomType)
	assert.Equal(t, "Paid in full", rec.PaymentStatusText())
}

func TestBuild_ZeroAmountsAndEmptyPaymentStatus(t *testing.T) {
	in := validInput()
	in.Price = 0
	in.EnvironmentTax = 0
	in.PaymentStatus = "   "

	rec, err := Build(in)
	require.NoError(t, err)

	assert.Equal(t, "0.00", rec.TotalCharge)
	assert.Equal(t, "", rec.PaymentStatus)
	assert.Equal(t, "—", rec.PaymentStatusText())
}

func TestBuild_TotalIsSumOfAmounts(t *testing.T) {
	amounts := [][2]float64{{0, 0}, {1234.5, 0.5}, {99.99, 0.01}, {1e6, 2.25}}

	for _, a := range amounts {
		in := validInput()
		in.Price, in.EnvironmentTax = a[0], a[1]

		rec, err := Build(in)
		require.NoError(t, err)
		assert.Equal(t, FormatMoney(a[0]+a[1]), rec.TotalCharge)
	}
}

func TestIsValidationError_Nil(t *testing.T) {
	assert.Nil(t, IsValidationError(nil))
	assert.Nil(t, IsValidationError(errors.New("other")))
}
