package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mhc/pkg/calendar"
	"tableflip.dev/mhc/pkg/runner/palette"
)

func addColors(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "colors",
		Aliases: []string{"color-test"},
		Short:   "Print the rating colors to check your terminal supports them.",
		Example: `
mhc colors
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := palette.Palette{
				Scale: calendar.DefaultScale,
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(p.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
