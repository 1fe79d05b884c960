package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mhc/pkg/runner/dump"
	"tableflip.dev/mhc/pkg/store"
)

func addDump(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "List every stored rating.",
		Example: `
mhc dump
mhc dump --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withStore(func(_ store.Config, s store.Store) error {
				d := dump.Dump{
					Store: s,
					JSON:  oo.JSON,
					Out:   cmd.OutOrStdout(),
				}
				return d.Do(context.Background())
			})
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
