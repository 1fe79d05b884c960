package calendar

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/rating"
)

// DaysPerWeek is the height of a grid column.
const DaysPerWeek = 7

// Source looks up stored ratings. Every day in [start, end] is present in
// the result; days without a rating map to nil.
type Source interface {
	GetRange(ctx context.Context, start, end day.Date) (map[day.Date]*rating.Rating, error)
}

// Kind tags what a Cell shows.
type Kind int

const (
	// Padding is a day outside the range that only aligns a partial week.
	Padding Kind = iota
	// Empty is a day in the range with no rating.
	Empty
	// Rated is a day in the range with a rating.
	Rated
)

func (k Kind) String() string {
	switch k {
	case Padding:
		return "padding"
	case Empty:
		return "empty"
	case Rated:
		return "rated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cell is one day of the grid.
type Cell struct {
	Date   day.Date
	Kind   Kind
	Rating rating.Rating
}

// Week is a Sunday through Saturday column.
type Week struct {
	Days [DaysPerWeek]Cell
	// Month is the abbreviated month name when this week's Saturday is one of
	// the first seven days of its month, and empty otherwise.
	Month string
}

// Grid is the week aligned layout of a Range.
type Grid struct {
	Range Range
	// First is the Sunday on or before Range.Start().
	First day.Date
	Weeks []Week
}

// Build queries src once for r and lays the result out in weeks.
func Build(ctx context.Context, src Source, r Range) (*Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	ratings, err := src.GetRange(ctx, r.Start(), r.End())
	if err != nil {
		return nil, fmt.Errorf("calendar: load ratings: %w", err)
	}

	first := r.Start().AddDays(-int(r.Start().Weekday() - time.Sunday))
	days := r.End().DaysSince(first) + 1
	numWeeks := (days + DaysPerWeek - 1) / DaysPerWeek

	g := &Grid{
		Range: r,
		First: first,
		Weeks: make([]Week, numWeeks),
	}

	current := first
	for w := range g.Weeks {
		week := &g.Weeks[w]
		for i := range week.Days {
			week.Days[i] = cellFor(current, r, ratings)
			current = current.AddDays(1)
		}
		week.Month = monthLabel(week.Days[DaysPerWeek-1].Date)
	}

	return g, nil
}

func cellFor(d day.Date, r Range, ratings map[day.Date]*rating.Rating) Cell {
	c := Cell{Date: d, Kind: Padding}
	if !r.Contains(d) {
		return c
	}
	if v := ratings[d]; v != nil {
		c.Kind = Rated
		c.Rating = *v
		return c
	}
	c.Kind = Empty
	return c
}

func monthLabel(last day.Date) string {
	if last.Day > DaysPerWeek {
		return ""
	}
	return last.Month.String()[:3]
}
