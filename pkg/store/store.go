// Package store persists one mood rating per calendar day.
package store

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/rating"
)

// ErrInvalidDate is returned when a store call is given a date that does not
// name a real day.
var ErrInvalidDate = errors.New("store: invalid date")

// Record is a stored rating.
type Record struct {
	Date   day.Date      `json:"date"`
	Rating rating.Rating `json:"rating"`
}

// Store is a rating per day, keyed by date. Writing a date twice keeps the
// last rating.
type Store interface {
	Upsert(ctx context.Context, d day.Date, r rating.Rating) error
	Get(ctx context.Context, d day.Date) (rating.Rating, bool, error)
	// GetRange returns every date in [start, end]; days without a rating map
	// to nil.
	GetRange(ctx context.Context, start, end day.Date) (map[day.Date]*rating.Rating, error)
	// All returns every record ordered by date.
	All(ctx context.Context) ([]Record, error)
	Close() error
}

// Open returns the Store selected by cfg. Callers must Close it.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Driver() {
	case DriverDiskv, "":
		return openDiskv(cfg.BasePath())
	case DriverSQLite:
		return openSQLite(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver())
	}
}

func checkDate(d day.Date) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidDate, d)
	}
	return nil
}

func checkRange(start, end day.Date) error {
	if err := checkDate(start); err != nil {
		return err
	}
	if err := checkDate(end); err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("store: range %s to %s is reversed", start, end)
	}
	return nil
}

// emptyRange returns a map with a nil entry for each day in [start, end].
func emptyRange(start, end day.Date) map[day.Date]*rating.Rating {
	out := make(map[day.Date]*rating.Rating, end.DaysSince(start)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		out[d] = nil
	}
	return out
}
