package validator

import (
	"strings"
	"time"
)

const (
	maxHour = 23
	// maxMinute is inclusive of 60. Product has not confirmed whether "HH:60"
	// should be rejected, so the long-standing bound stays.
	maxMinute = 60
)

// Date validates a DD/MM/YYYY value by building the calendar date and checking
// that day and month survive normalisation, so 31/02 or 00/13 fail. Two-digit
// years are read as 19YY.
func Date(value string) bool {
	parts := strings.Split(value, "/")
	if len(parts) < 3 {
		return false
	}

	day, ok := digitsInt(parts[0])
	if !ok {
		return false
	}
	month, ok := digitsInt(parts[1])
	if !ok {
		return false
	}
	year, ok := digitsInt(parts[2])
	if !ok {
		return false
	}
	if year < 100 {
		year += 1900
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return date.Day() == day && int(date.Month()) == month
}

// Time validates an HH:MM value: hour at most 23, minute at most 60.
func Time(value string) bool {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return false
	}

	hour, ok := digitsInt(parts[0])
	if !ok {
		return false
	}
	minute, ok := digitsInt(parts[1])
	if !ok {
		return false
	}
	return hour <= maxHour && minute <= maxMinute
}

// digitsInt parses s as an unsigned decimal after trimming whitespace. Any
// other character makes the part malformed.
func digitsInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
