// Package calendar lays a date range out as a week-aligned grid of mood
// ratings and draws it as a framed block of text.
package calendar

import (
	"errors"
	"fmt"

	"tableflip.dev/mhc/pkg/day"
)

// DefaultSpan is how many days before the end date a range starts when no
// start is given.
const DefaultSpan = 365

// ErrRangeOrder is returned when a range ends before it starts.
var ErrRangeOrder = errors.New("end date is before start date")

// Range is an inclusive span of days.
type Range struct {
	start day.Date
	end   day.Date
}

// NewRange returns a validated range.
func NewRange(start, end day.Date) (Range, error) {
	r := Range{start: start, end: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// DefaultRange is the trailing year ending on end.
func DefaultRange(end day.Date) Range {
	return Range{start: end.AddDays(-DefaultSpan), end: end}
}

// Start is the first day in the range.
func (r Range) Start() day.Date { return r.start }

// End is the last day in the range.
func (r Range) End() day.Date { return r.end }

// SetStart parses a MM-DD-YYYY date into the start of the range. The order of
// start and end is checked by Validate so the two may be set in any order.
func (r *Range) SetStart(v string) error {
	d, err := day.Parse(v)
	if err != nil {
		return err
	}
	r.start = d
	return nil
}

// SetEnd parses a MM-DD-YYYY date into the end of the range.
func (r *Range) SetEnd(v string) error {
	d, err := day.Parse(v)
	if err != nil {
		return err
	}
	r.end = d
	return nil
}

// Validate checks both ends are set and in order.
func (r Range) Validate() error {
	if !r.start.Valid() || !r.end.Valid() {
		return fmt.Errorf("range %s to %s: invalid date", r.start, r.end)
	}
	if r.end.Before(r.start) {
		return fmt.Errorf("%w: %s < %s", ErrRangeOrder, r.end.Format(day.LayoutSlash), r.start.Format(day.LayoutSlash))
	}
	return nil
}

// Contains reports whether d is inside the range.
func (r Range) Contains(d day.Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Days is the number of days in the range.
func (r Range) Days() int {
	return r.end.DaysSince(r.start) + 1
}
