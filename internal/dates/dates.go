package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout names a bank date dialect. Each bank statement uses exactly one.
type Layout string

const (
	// Dotted matches 30.09.2025 and the compact 30.9.25 variant.
	Dotted Layout = "dotted"
	// Slashed matches 05/09/25 and 05/09/2025.
	Slashed Layout = "slashed"
	// DashedMonth matches 05-SEP-25 and 05-SEP-2025.
	DashedMonth Layout = "dashed-month"
	// SpacedMonth matches 20 Kor 25 with Albanian or English month names.
	SpacedMonth Layout = "spaced-month"
	// Timestamped matches 2025-10-02 14:13:29 +0200; the time part is dropped.
	Timestamped Layout = "timestamped"
)

// Month abbreviations as they appear in statements. Albanian names first,
// English ones because BKT and Union print English months.
var monthNames = map[string]time.Month{
	"jan": time.January, "shk": time.February, "mar": time.March,
	"pri": time.April, "maj": time.May, "qer": time.June,
	"kor": time.July, "gus": time.August, "sht": time.September,
	"tet": time.October, "nën": time.November, "nen": time.November,
	"dhj": time.December,
	"feb": time.February, "apr": time.April, "may": time.May,
	"jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

// Normalize parses a date token in the given layout and returns it as
// YYYY-MM-DD. Two-digit years are taken to be in the 2000s.
func Normalize(token string, layout Layout) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("empty date token")
	}

	var (
		day, year int
		month     time.Month
		err       error
	)

	switch layout {
	case Dotted:
		day, month, year, err = numericDMY(token, ".")
	case Slashed:
		day, month, year, err = numericDMY(token, "/")
	case DashedMonth:
		day, month, year, err = namedMonthDMY(token, "-")
	case SpacedMonth:
		day, month, year, err = namedMonthDMY(token, " ")
	case Timestamped:
		return normalizeTimestamped(token)
	default:
		return "", fmt.Errorf("unknown date layout %q", layout)
	}
	if err != nil {
		return "", fmt.Errorf("parse %q as %s: %w", token, layout, err)
	}

	return format(day, month, year)
}

func numericDMY(token, sep string) (int, time.Month, int, error) {
	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 parts, got %d", len(parts))
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad day %q", parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, fmt.Errorf("bad month %q", parts[1])
	}
	year, err := parseYear(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return day, time.Month(m), year, nil
}

func namedMonthDMY(token, sep string) (int, time.Month, int, error) {
	parts := strings.Split(token, sep)
	if sep == " " {
		parts = strings.Fields(token)
	}
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 parts, got %d", len(parts))
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad day %q", parts[0])
	}
	month, ok := monthNames[strings.ToLower(parts[1])]
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown month %q", parts[1])
	}
	year, err := parseYear(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return day, month, year, nil
}

func normalizeTimestamped(token string) (string, error) {
	// Only the leading date field matters; time and zone are discarded.
	datePart := strings.Fields(token)[0]
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return "", fmt.Errorf("parse %q as timestamped: %w", token, err)
	}
	return t.Format("2006-01-02"), nil
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad year %q", s)
	}
	switch len(s) {
	case 2:
		return 2000 + y, nil
	case 4:
		return y, nil
	}
	return 0, fmt.Errorf("bad year %q", s)
}

func format(day int, month time.Month, year int) (string, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so Feb 30 slides into March; reject that.
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return "", fmt.Errorf("no such date %d-%02d-%02d", year, month, day)
	}
	return t.Format("2006-01-02"), nil
}
