package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mhc/pkg/commands/options"
	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/runner/view"
	"tableflip.dev/mhc/pkg/store"
)

func addView(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the mood calendar.",
		Long: `Show a week by week calendar of your ratings.

Without flags the calendar covers the last year up to today.`,
		Example: `
mhc view
mhc view --start=01-01-2024 --end=06-30-2024
mhc view --last=12w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r, err := ro.GetRange(day.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			err = withStore(func(_ store.Config, s store.Store) error {
				v := view.View{
					Source: s,
					Range:  r,
					Out:    cmd.OutOrStdout(),
				}
				return v.Do(context.Background())
			})
			return oo.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)
	topLevel.AddCommand(cmd)
}
