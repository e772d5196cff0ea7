package timeline

import (
	"strconv"
	"strings"
	"time"
)

var monthIndex = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// ParseMonthYear parses "<Month> <Year>" into the first day of that month.
// Only the first three letters of the month are matched, case-insensitively,
// so "Jan 2024" and "January 2024" are equal. ok is false for malformed input.
func ParseMonthYear(value string) (time.Time, bool) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return time.Time{}, false
	}
	rawMonth := []rune(strings.ToLower(fields[0]))
	if len(rawMonth) < 3 {
		return time.Time{}, false
	}
	month, ok := monthIndex[string(rawMonth[:3])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// MonthDiff returns the whole months from a to b. Negative when b precedes a.
func MonthDiff(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
