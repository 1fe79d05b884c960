// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mhc/pkg/day"
)

// RateOptions picks which day the root command rates.
type RateOptions struct {
	Edit string
	Redo bool
}

// AddRateArgs wires --edit and --redo on the provided command.
func AddRateArgs(cmd *cobra.Command, o *RateOptions) {
	cmd.Flags().StringVar(&o.Edit, "edit", "",
		`Change a previous entry, example: --edit="01-31-2024" (MM-DD-YYYY).`)
	cmd.Flags().BoolVar(&o.Redo, "redo", false,
		"Change today's entry.")
}

// GetOn returns the day to rate, today unless --edit was given.
func (o *RateOptions) GetOn(today day.Date) (day.Date, error) {
	if o.Edit == "" {
		return today, nil
	}
	return day.Parse(o.Edit)
}

// Overwrite reports whether an existing rating should be replaced.
func (o *RateOptions) Overwrite() bool {
	return o.Redo || o.Edit != ""
}
