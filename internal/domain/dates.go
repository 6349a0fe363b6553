package domain

import "time"

// DateLayout is the wire format for calendar dates (slot dates, week starts).
const DateLayout = "2006-01-02"

// DayOf truncates t to the start of its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns the start of the UTC day after day.
func NextDay(day time.Time) time.Time {
	return DayOf(day).AddDate(0, 0, 1)
}

// ParseDate parses a YYYY-MM-DD string into a UTC day. Only the format is
// checked; week starts are not required to be Mondays.
func ParseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, NewValidationError(field, "required")
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// FormatDate renders a day as YYYY-MM-DD.
func FormatDate(day time.Time) string {
	return day.UTC().Format(DateLayout)
}

// Clock abstracts the current time so expiry can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
