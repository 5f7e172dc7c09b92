package domain

import (
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DateRange is an inclusive span of calendar days [From, To].
// Both ends are expected to be normalized with DateOnly.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalizes both ends to calendar days.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: DateOnly(from), To: DateOnly(to)}
}

// IsValid returns true if From <= To
func (r DateRange) IsValid() bool {
	return !r.From.After(r.To)
}

// Contains returns true if day lies within [From, To], both ends inclusive
func (r DateRange) Contains(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(r.From) && !d.After(r.To)
}

// Overlaps returns true if both ranges share at least one calendar day.
// Touching ranges (one ends on the day the other starts) overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.From.After(other.To) && !r.To.Before(other.From)
}

// Days returns the number of calendar days in the range, ends included
func (r DateRange) Days() int {
	if !r.IsValid() {
		return 0
	}
	return DaysBetween(r.From, r.To) + 1
}

// String formats the range as "YYYY-MM-DD..YYYY-MM-DD"
func (r DateRange) String() string {
	return r.From.Format(DateFormat) + ".." + r.To.Format(DateFormat)
}

// DateOnly truncates t to midnight UTC of its UTC calendar day.
// All availability arithmetic works on UTC calendar days.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
// Works on Unix seconds: time.Duration saturates after ~292 years.
func DaysBetween(a, b time.Time) int {
	return int((DateOnly(b).Unix() - DateOnly(a).Unix()) / secondsPerDay)
}

// ParseDate parses "YYYY-MM-DD" or an RFC 3339 timestamp into a calendar day
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}

	return DateOnly(t), nil
}
