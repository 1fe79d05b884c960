// Package info reports where mhc keeps its data.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/mhc/pkg/store"
)

// Info prints the resolved configuration and how many days are stored.
type Info struct {
	Config store.Config
	Store  store.Store
	Out    io.Writer
}

// Do writes the report.
func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MHC_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MHC_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "MHC_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:  ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.driver:", n.Config.Driver())
	_, _ = fmt.Fprintln(out, "Config.quotes:", n.Config.QuotesPath())

	if n.Store == nil {
		return fmt.Errorf("failed to open the rating store")
	}

	all, err := n.Store.All(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Days rated:    %d\n", len(all))
	return nil
}
