package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/mhc/pkg/calendar"
	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/timeutil"
)

// RangeOptions captures the calendar window flags.
type RangeOptions struct {
	Start string
	End   string
	Last  string
}

// AddRangeArgs wires --start, --end and --last on the provided command.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		`First day of the calendar, example: --start="01-01-2024" (MM-DD-YYYY).`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`Last day of the calendar, example: --end="12-31-2024". Defaults to today.`)
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Show this many days up to the end, example: --last=12w (d, w, y).`)
	cmd.MarkFlagsMutuallyExclusive("start", "last")
}

// GetRange resolves the flags into a validated range. The end defaults to
// today and the start to a year before the end. --last counts the end day.
func (o *RangeOptions) GetRange(today day.Date) (calendar.Range, error) {
	r := calendar.DefaultRange(today)
	if o.End != "" {
		if err := r.SetEnd(o.End); err != nil {
			return calendar.Range{}, err
		}
		r = calendar.DefaultRange(r.End())
	}
	switch {
	case o.Start != "" && o.Last != "":
		return calendar.Range{}, errors.New("--start and --last can not be used together")
	case o.Start != "":
		if err := r.SetStart(o.Start); err != nil {
			return calendar.Range{}, err
		}
	case o.Last != "":
		days, _, err := timeutil.ParseSpan(o.Last)
		if err != nil {
			return calendar.Range{}, err
		}
		r, err = calendar.NewRange(r.End().AddDays(1-days), r.End())
		if err != nil {
			return calendar.Range{}, err
		}
	}
	if err := r.Validate(); err != nil {
		return calendar.Range{}, err
	}
	return r, nil
}
