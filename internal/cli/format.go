// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatKcal formats a calorie value as a whole number with comma separators.
// e.g., 1234.6 -> "1,235"
func FormatKcal(kcal float64) string {
	return FormatNumber(int64(math.Round(kcal)))
}

// FormatSignedKcal formats a net calorie value with an explicit sign.
// e.g., 250 -> "+250", -480 -> "-480"
func FormatSignedKcal(kcal float64) string {
	n := int64(math.Round(kcal))
	if n >= 0 {
		return "+" + FormatNumber(n)
	}
	return "-" + FormatNumber(-n)
}

// FormatLbs formats a weight in pounds to one decimal.
// e.g., 180.25 -> "180.2 lbs"
func FormatLbs(lbs float64) string {
	return fmt.Sprintf("%.1f lbs", lbs)
}

// FormatMacro formats grams of a macro, dropping the decimal when whole.
// e.g., 38 -> "38g", 4.5 -> "4.5g"
func FormatMacro(grams float64) string {
	if grams == math.Trunc(grams) {
		return fmt.Sprintf("%.0fg", grams)
	}
	return fmt.Sprintf("%.1fg", grams)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatEntryTime formats a log timestamp for entry listings.
// Same-day entries show only the clock time.
func FormatEntryTime(t, now time.Time) string {
	if t.Local().Format("2006-01-02") == now.Local().Format("2006-01-02") {
		return t.Local().Format("15:04")
	}
	return t.Local().Format("Jan 2 15:04")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ShortID truncates an entry UUID for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
