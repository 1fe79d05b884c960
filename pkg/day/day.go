// Package day provides a local calendar date that is safe to use as a map key.
package day

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// LayoutUS is the layout accepted on the command line.
	LayoutUS = "01-02-2006"
	// LayoutSlash is the layout used when printing dates for people.
	LayoutSlash = "01/02/2006"
	// LayoutISO is the layout used for storage keys.
	LayoutISO = "2006-01-02"
)

// ErrFormat is returned when a date string does not match LayoutUS.
var ErrFormat = errors.New("incorrect date format, must be MM-DD-YYYY")

// Date is a calendar day with no time or zone. Two Dates for the same day are
// equal with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of returns the Date t falls on in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local date.
func Today() Date {
	return Of(time.Now())
}

// New normalizes y/m/d the way time.Date does, so New(2024, 1, 32) is Feb 1.
func New(y int, m time.Month, d int) Date {
	return Of(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Parse reads a MM-DD-YYYY date.
func Parse(v string) (Date, error) {
	t, err := time.Parse(LayoutUS, v)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrFormat, v)
	}
	return Of(t), nil
}

// ParseISO reads a YYYY-MM-DD date.
func ParseISO(v string) (Date, error) {
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Of(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real day.
func (d Date) Valid() bool {
	if d.IsZero() {
		return false
	}
	return New(d.Year, d.Month, d.Day) == d
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return d.In(time.UTC)
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// DaysSince returns the number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.utc().Sub(o.utc()).Hours() / 24)
}

// Weekday returns the day of the week, Sunday == 0.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.utc().Before(o.utc())
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.utc().After(o.utc())
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.utc().Format(layout)
}

func (d Date) String() string {
	return d.Format(LayoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseISO(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
