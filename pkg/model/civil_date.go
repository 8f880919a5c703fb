package model

import (
	"fmt"
	"time"
)

// CivilDate is a naive calendar day. Booking dates travel as "YYYY-MM-DD"
// strings and must be compared as year/month/day tuples: routing them
// through a timestamp shifts the day under non-UTC locales.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

// ParseCivilDate parses an ASCII, zero-padded "YYYY-MM-DD" string by
// splitting it into components directly.
func ParseCivilDate(s string) (CivilDate, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return CivilDate{}, fmt.Errorf("invalid calendar date %q: want YYYY-MM-DD", s)
	}

	var d CivilDate
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &d.Year, &d.Month, &d.Day); err != nil {
		return CivilDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	if !d.Valid() {
		return CivilDate{}, fmt.Errorf("invalid calendar date %q: no such day", s)
	}
	return d, nil
}

// CivilDateOf extracts the calendar day of t in t's location.
func CivilDateOf(t time.Time) CivilDate {
	y, m, day := t.Date()
	return CivilDate{Year: y, Month: int(m), Day: day}
}

// Today is the current local calendar day, time-zeroed by construction.
func Today() CivilDate {
	return CivilDateOf(time.Now())
}

// Valid reports whether the tuple names a real calendar day.
func (d CivilDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && int(t.Month()) == d.Month && t.Year() == d.Year
}

// Compare orders two dates: -1 if d is earlier, 0 if equal, 1 if later.
func (d CivilDate) Compare(o CivilDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d CivilDate) Before(o CivilDate) bool { return d.Compare(o) < 0 }

func (d CivilDate) After(o CivilDate) bool { return d.Compare(o) > 0 }

func (d CivilDate) Equal(o CivilDate) bool { return d.Compare(o) == 0 }

// String renders the zero-padded wire format.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
