// Package view prints the mood calendar.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mhc/pkg/calendar"
)

// View renders Range from Source.
type View struct {
	Source calendar.Source
	Range  calendar.Range
	Out    io.Writer
}

// Do builds the grid and writes the framed calendar.
func (v *View) Do(ctx context.Context) error {
	if v.Source == nil {
		return errors.New("can not view, no store")
	}
	g, err := calendar.Build(ctx, v.Source, v.Range)
	if err != nil {
		return err
	}
	out := v.Out
	if out == nil {
		out = color.Output
	}
	_, err = fmt.Fprint(out, calendar.Render(g))
	return err
}
