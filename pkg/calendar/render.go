package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/glyph"
)

// labelWidth is the width of the weekday column, "Sun" plus its separator.
const labelWidth = len("Sun ")

// columnWidth is the width of one week column, a glyph plus its separator.
const columnWidth = 2

// Renderer draws a Grid.
type Renderer struct {
	Scale Scale
}

// Render draws g with the default colors.
func Render(g *Grid) string {
	return Renderer{Scale: DefaultScale}.Render(g)
}

// Glyph returns the (possibly colored) mark for c.
func (rr Renderer) Glyph(c Cell) string {
	switch c.Kind {
	case Rated:
		return rr.Scale.Color(c.Rating).Paint(glyph.Full)
	case Empty:
		return glyph.Empty
	default:
		return glyph.Blank
	}
}

// Render lays g out as a framed block: month labels, one line per weekday, a
// rule and a start/end footer. Every line has the same visible width and the
// result ends in a newline.
func (rr Renderer) Render(g *Grid) string {
	monthLine := rr.monthLine(g)
	rows := rr.dataRows(g)
	footer := "Start date: " + g.Range.Start().Format(day.LayoutSlash) +
		" | End date: " + g.Range.End().Format(day.LayoutSlash)

	maxWidth := ansi.StringWidth(monthLine)
	for _, row := range rows {
		maxWidth = max(maxWidth, ansi.StringWidth(row))
	}
	maxWidth = max(maxWidth, ansi.StringWidth(footer))

	var b strings.Builder
	rule(&b, glyph.NorthWest, glyph.North, glyph.NorthEast, maxWidth)
	padded(&b, monthLine, maxWidth)
	for _, row := range rows {
		padded(&b, row, maxWidth)
	}
	rule(&b, glyph.West, glyph.Rule, glyph.East, maxWidth)
	padded(&b, footer, maxWidth)
	rule(&b, glyph.SouthWest, glyph.South, glyph.SouthEast, maxWidth)
	return b.String()
}

// monthLine places each week's month label over that week's column.
func (rr Renderer) monthLine(g *Grid) string {
	line := []rune(strings.Repeat(" ", labelWidth+columnWidth*len(g.Weeks)+3))
	next := 0
	for w, week := range g.Weeks {
		if week.Month == "" {
			continue
		}
		at := labelWidth + columnWidth*w
		if at < next {
			continue
		}
		copy(line[at:], []rune(week.Month))
		next = at + len(week.Month) + 1
	}
	return strings.TrimRight(string(line), " ")
}

// dataRows returns one line per weekday, Sunday first.
func (rr Renderer) dataRows(g *Grid) []string {
	rows := make([]string, DaysPerWeek)
	for i := range rows {
		var b strings.Builder
		b.WriteString(time.Weekday(i).String()[:3])
		b.WriteString(" ")
		for _, week := range g.Weeks {
			b.WriteString(rr.Glyph(week.Days[i]))
			b.WriteString(" ")
		}
		rows[i] = b.String()
	}
	return rows
}

func rule(b *strings.Builder, left, fill, right string, width int) {
	b.WriteString(left)
	b.WriteString(strings.Repeat(fill, width))
	b.WriteString(right)
	b.WriteString("\n")
}

func padded(b *strings.Builder, text string, width int) {
	b.WriteString(glyph.West)
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", width-ansi.StringWidth(text)))
	b.WriteString(glyph.East)
	b.WriteString("\n")
}
