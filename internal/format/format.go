package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const gbPerTB = 1000

// FormatTB formats a gigabyte quantity as decimal terabytes with one decimal place.
// Example: 45000 → "45.0 TB".
func FormatTB(gb float64) string {
	return formatCommaFloat(gb/gbPerTB) + " TB"
}

// FormatCurrency formats a dollar amount with comma separators.
// Whole amounts drop the cents: 5300 → "$5,300", 1234.5 → "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := math.Round(amount * 100)
	if math.Mod(cents, 100) == 0 {
		return sign + "$" + insertCommas(strconv.FormatFloat(cents/100, 'f', 0, 64))
	}
	s := strconv.FormatFloat(cents/100, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	return sign + "$" + insertCommas(parts[0]) + "." + parts[1]
}

// FormatHours formats a duration in hours without trailing zeros.
// Example: 0.5 → "0.5h", 2 → "2h".
func FormatHours(h float64) string {
	return trimFloat(h) + "h"
}

// FormatMinutes formats a duration in minutes without trailing zeros.
// Example: 15 → "15min".
func FormatMinutes(m float64) string {
	return trimFloat(m) + "min"
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatPercent formats a percentage with one decimal place.
// Example: 97.345 → "97.3%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatAvailability formats an availability percentage with up to two decimals.
// Example: 99.99 → "99.99%", 100 → "100%".
func FormatAvailability(p float64) string {
	return trimFloat(p) + "%"
}

// FormatTimestamp renders a job start time in local time. The zero time renders as "---".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "---"
	}
	return t.Local().Format("Jan 2 15:04")
}

// trimFloat prints f with up to two decimals and no trailing zeros.
func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

// formatCommaFloat formats a float with comma-separated thousands and one decimal place.
func formatCommaFloat(f float64) string {
	formatted := fmt.Sprintf("%.1f", f)
	sign := ""
	if len(formatted) > 0 && formatted[0] == '-' {
		sign = "-"
		formatted = formatted[1:]
	}
	parts := strings.SplitN(formatted, ".", 2)
	intPart := insertCommas(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "." + parts[1]
	}
	return sign + intPart
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
