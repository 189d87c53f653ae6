package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates: "YYYY-MM-DD".
// Once a date string has been parsed at the handler boundary no timezone
// conversion is applied anywhere below it.
const DateLayout = "2006-01-02"

// dmyLayout is the display format used in export rows ("DD/MM/YYYY").
const dmyLayout = "02/01/2006"

// Date is a calendar day with no time-of-day component.
// Internally it is midnight UTC, which makes day arithmetic exact.
// The zero Date is "no date" — IsZero reports it.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t.UTC()}, nil
}

// MustParseDate is ParseDate that panics on malformed input.
// For use in tests and static fixtures only.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates an arbitrary time.Time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String returns the wire representation ("YYYY-MM-DD").
func (d Date) String() string { return d.t.Format(DateLayout) }

// DMY returns the local display representation ("DD/MM/YYYY").
func (d Date) DMY() string { return d.t.Format(dmyLayout) }

// Time returns the underlying midnight-UTC instant.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is an earlier calendar day than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is a later calendar day than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same calendar day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the signed number of days from d to o.
// d.DaysUntil(d.AddDays(3)) == 3.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MinDate returns the earlier of a and b.
func MinDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b.
func MaxDate(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// RangesOverlap reports whether the inclusive ranges [aFrom, aTo] and
// [bFrom, bTo] share at least one calendar day. A range where From equals To
// covers exactly that single day.
func RangesOverlap(aFrom, aTo, bFrom, bTo Date) bool {
	return !aTo.Before(bFrom) && !bTo.Before(aFrom)
}

// OverlapDays returns the number of calendar days in the intersection of the
// inclusive ranges [aFrom, aTo] and [bFrom, bTo], or 0 when they are disjoint.
func OverlapDays(aFrom, aTo, bFrom, bTo Date) int {
	lo := MaxDate(aFrom, bFrom)
	hi := MinDate(aTo, bTo)
	if hi.Before(lo) {
		return 0
	}
	return lo.DaysUntil(hi) + 1
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year int, month time.Month) (Date, Date) {
	first := NewDate(year, month, 1)
	return first, first.addMonths(1).AddDays(-1)
}

// YearRange returns January 1st and December 31st of the given year.
func YearRange(year int) (Date, Date) {
	return NewDate(year, time.January, 1), NewDate(year, time.December, 31)
}

func (d Date) addMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }
