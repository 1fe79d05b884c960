// Package palette prints the rating colors so a terminal's 24-bit color
// support can be checked by eye.
package palette

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mhc/pkg/calendar"
	"tableflip.dev/mhc/pkg/glyph"
	"tableflip.dev/mhc/pkg/rating"
)

// Palette prints Scale, one row per rating.
type Palette struct {
	Scale calendar.Scale
	Out   io.Writer
}

// Do renders the palette table.
func (p *Palette) Do(_ context.Context) error {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Rating"), bold.Sprint("Color"), "")
	for r := rating.Worst; r <= rating.Best; r++ {
		c := p.Scale.Color(r)
		tbl.AddRow(r.String(), c.Hex(), c.Paint(glyph.Full))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintf(out, "If you can see all %d colors, your terminal is working correctly\n", calendar.ScaleSize)
	return nil
}
