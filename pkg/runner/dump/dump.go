// Package dump lists every stored rating.
package dump

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mhc/pkg/calendar"
	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/glyph"
	"tableflip.dev/mhc/pkg/store"
)

// Dump prints all records, as a table or as JSON.
type Dump struct {
	Store store.Store
	JSON  bool
	Out   io.Writer
}

// Do writes the records in date order.
func (n *Dump) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not dump, no store")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all, err := n.Store.All(ctx)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(out, " none")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Rating"), "")
	for _, rec := range all {
		tbl.AddRow(rec.Date.Format(day.LayoutSlash), rec.Rating.String(), calendar.DefaultScale.Color(rec.Rating).Paint(glyph.Full))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
