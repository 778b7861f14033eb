package booking

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	zeroMoney      = "0.00"
	dateLayout     = "02-01-2006"
	fallbackName   = "Guest"
	filenameSuffix = ".pdf"
)

// FormatMoney renders v with two decimals and comma thousands separators,
// e.g. 1234.5 -> "1,234.50". Anything that is not a finite number renders
// as "0.00".
func FormatMoney(v any) string {
	f, ok := ParseAmount(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return zeroMoney
	}

	return message.NewPrinter(language.English).Sprintf("%.2f", f)
}

// ParseAmount coerces numeric kinds, json.Number and numeric strings.
//
//nolint:cyclop
func ParseAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// SanitizeName keeps letters, digits and whitespace, then joins the
// remaining words with underscores: "O'Brien, Jr." -> "OBrien_Jr".
func SanitizeName(name string) string {
	var b strings.Builder

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "_")
}

// Filename builds <SanitizedName>_<dd-mm-yyyy>_<dd-mm-yyyy>.pdf.
func Filename(guestName string, checkIn, checkOut time.Time) string {
	name := SanitizeName(guestName)
	if name == "" {
		name = fallbackName
	}

	return name + "_" + FormatDate(checkIn) + "_" + FormatDate(checkOut) + filenameSuffix
}
