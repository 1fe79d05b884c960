// Package rate records a day's mood rating.
package rate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/rating"
	"tableflip.dev/mhc/pkg/store"
)

// Prompter asks the user for a rating.
type Prompter interface {
	Ask(label string) (rating.Rating, error)
}

// Rate asks for a rating and stores it for On.
type Rate struct {
	Store  store.Store
	Prompt Prompter
	On     day.Date
	// Day is how the prompt refers to On, like "your day".
	Day string
	// Overwrite replaces an existing rating instead of leaving it alone.
	Overwrite bool
	Out       io.Writer
}

// Do prompts and upserts. Without Overwrite a day that already has a rating
// is left as is.
func (n *Rate) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not rate, no store")
	}
	if n.Prompt == nil {
		return errors.New("can not rate, no prompt")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if !n.Overwrite {
		_, ok, err := n.Store.Get(ctx, n.On)
		if err != nil {
			return err
		}
		if ok {
			_, _ = fmt.Fprintln(out, "You've already entered a day rating today.")
			return nil
		}
	}

	label := n.Day
	if label == "" {
		label = n.On.Format(day.LayoutUS)
	}
	r, err := n.Prompt.Ask(fmt.Sprintf("How was %s (%d (worst) to %d (best))", label, rating.Worst, rating.Best))
	if err != nil {
		return err
	}

	return n.Store.Upsert(ctx, n.On, r)
}
