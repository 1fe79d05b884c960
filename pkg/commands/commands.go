package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mhc/pkg/commands/options"
	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/runner/quote"
	"tableflip.dev/mhc/pkg/runner/rate"
	"tableflip.dev/mhc/pkg/store"
)

var (
	oo = &base.OutputOptions{}

	// prompter is swapped out in tests.
	prompter rate.Prompter = rate.Terminal{}
)

// New returns the mhc root command. Run bare it asks for today's rating.
func New() *cobra.Command {
	ro := &options.RateOptions{}

	cmd := &cobra.Command{
		Use:   "mhc",
		Short: base.Wrap80("Mental Health Calendar. Keep track of your mental health without ever leaving your terminal."),
		Example: `
mhc
mhc --redo
mhc --edit=01-31-2024
mhc view --start=01-01-2024
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return oo.HandleError(runRate(context.Background(), ro))
		},
	}

	options.AddRateArgs(cmd, ro)
	cmd.MarkFlagsMutuallyExclusive("edit", "redo")
	base.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addView(topLevel)
	addColors(topLevel)
	addDump(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

func runRate(ctx context.Context, ro *options.RateOptions) error {
	today := day.Today()
	on, err := ro.GetOn(today)
	if err != nil {
		return err
	}

	return withStore(func(cfg store.Config, s store.Store) error {
		r := rate.Rate{
			Store:     s,
			Prompt:    prompter,
			On:        on,
			Overwrite: ro.Overwrite(),
		}
		if on == today {
			r.Day = "your day"
		}
		if err := r.Do(ctx); err != nil {
			return err
		}

		if ro.Overwrite() {
			return nil
		}
		q := quote.Quote{Path: cfg.QuotesPath()}
		return q.Do(ctx)
	})
}

// withStore opens the configured store for the length of fn.
func withStore(fn func(cfg store.Config, s store.Store) error) (err error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(cfg, s)
}
