package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mhc/pkg/runner/info"
	"tableflip.dev/mhc/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where ratings are stored.",
		Example: `
mhc info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withStore(func(cfg store.Config, s store.Store) error {
				i := info.Info{
					Config: cfg,
					Store:  s,
					Out:    cmd.OutOrStdout(),
				}
				return i.Do(context.Background())
			})
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
