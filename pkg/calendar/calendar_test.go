package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/glyph"
	"tableflip.dev/mhc/pkg/rating"
)

type fakeSource struct {
	ratings map[day.Date]rating.Rating
	calls   int
}

func (f *fakeSource) GetRange(_ context.Context, start, end day.Date) (map[day.Date]*rating.Rating, error) {
	f.calls++
	out := make(map[day.Date]*rating.Rating)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if r, ok := f.ratings[d]; ok {
			r := r
			out[d] = &r
		} else {
			out[d] = nil
		}
	}
	return out, nil
}

type failingSource struct{}

func (failingSource) GetRange(context.Context, day.Date, day.Date) (map[day.Date]*rating.Rating, error) {
	return nil, errors.New("boom")
}

func mustRange(t *testing.T, start, end day.Date) Range {
	t.Helper()
	r, err := NewRange(start, end)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	return r
}

func TestBuildExampleWeek(t *testing.T) {
	src := &fakeSource{}
	r := mustRange(t, day.New(2024, time.January, 1), day.New(2024, time.January, 7))

	g, err := Build(context.Background(), src, r)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.First != day.New(2023, time.December, 31) {
		t.Fatalf("expected first day 2023-12-31, got %v", g.First)
	}
	if len(g.Weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(g.Weeks))
	}
	if k := g.Weeks[0].Days[0].Kind; k != Padding {
		t.Fatalf("expected 12-31 to be padding, got %v", k)
	}
	for i := 1; i < DaysPerWeek; i++ {
		if k := g.Weeks[0].Days[i].Kind; k != Empty {
			t.Errorf("week 0 day %d: expected empty, got %v", i, k)
		}
	}
	if k := g.Weeks[1].Days[0].Kind; k != Empty {
		t.Fatalf("expected 01-07 to be empty, got %v", k)
	}
	for i := 1; i < DaysPerWeek; i++ {
		if k := g.Weeks[1].Days[i].Kind; k != Padding {
			t.Errorf("week 1 day %d: expected padding, got %v", i, k)
		}
	}
	if src.calls != 1 {
		t.Fatalf("expected a single ranged lookup, got %d", src.calls)
	}

	out := Render(g)
	if !strings.Contains(out, "Start date: 01/01/2024 | End date: 01/07/2024") {
		t.Fatalf("footer missing from:\n%s", out)
	}
}

func TestBuildRejectsReversedRange(t *testing.T) {
	src := &fakeSource{}
	r := Range{start: day.New(2024, time.January, 7), end: day.New(2024, time.January, 1)}

	if _, err := Build(context.Background(), src, r); !errors.Is(err, ErrRangeOrder) {
		t.Fatalf("expected ErrRangeOrder, got %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("store must not be queried for a reversed range")
	}
	if _, err := NewRange(r.start, r.end); !errors.Is(err, ErrRangeOrder) {
		t.Fatalf("expected NewRange to reject reversed range, got %v", err)
	}
}

func TestBuildSourceError(t *testing.T) {
	r := mustRange(t, day.New(2024, time.January, 1), day.New(2024, time.January, 1))
	if _, err := Build(context.Background(), failingSource{}, r); err == nil {
		t.Fatal("expected source error to surface")
	}
}

func TestBuildSingleEmptyDay(t *testing.T) {
	d := day.New(2024, time.January, 3) // Wednesday
	g, err := Build(context.Background(), &fakeSource{}, mustRange(t, d, d))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(g.Weeks) != 1 {
		t.Fatalf("expected 1 week, got %d", len(g.Weeks))
	}
	padding, empty := 0, 0
	for _, c := range g.Weeks[0].Days {
		switch c.Kind {
		case Padding:
			padding++
		case Empty:
			empty++
			if c.Date != d {
				t.Fatalf("empty cell on %v, expected %v", c.Date, d)
			}
		default:
			t.Fatalf("unexpected cell %+v", c)
		}
	}
	if padding != 6 || empty != 1 {
		t.Fatalf("expected 6 padding and 1 empty, got %d and %d", padding, empty)
	}

	lines := strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
	if got, want := lines[5], glyph.West+"Wed "+glyph.Empty+" "; !strings.HasPrefix(got, want) {
		t.Fatalf("expected Wednesday row to start with %q, got %q", want, got)
	}
	if got, want := lines[2], glyph.West+"Sun "+glyph.Blank+" "; !strings.HasPrefix(got, want) {
		t.Fatalf("expected Sunday row to start with %q, got %q", want, got)
	}
}

func TestBuildClassifiesCells(t *testing.T) {
	start := day.New(2024, time.February, 7)
	end := day.New(2024, time.March, 20)
	src := &fakeSource{ratings: map[day.Date]rating.Rating{
		day.New(2024, time.February, 10): 2,
		day.New(2024, time.March, 1):     -5,
		day.New(2024, time.February, 1):  1, // outside the range
	}}

	g, err := Build(context.Background(), src, mustRange(t, start, end))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.First.Weekday() != time.Sunday {
		t.Fatalf("grid must start on Sunday, got %v", g.First.Weekday())
	}
	for _, w := range g.Weeks {
		for i, c := range w.Days {
			if c.Date.Weekday() != time.Weekday(i) {
				t.Fatalf("cell %v in weekday slot %d", c.Date, i)
			}
			r, stored := src.ratings[c.Date]
			switch {
			case !g.Range.Contains(c.Date):
				if c.Kind != Padding {
					t.Errorf("%v: expected padding, got %v", c.Date, c.Kind)
				}
			case stored:
				if c.Kind != Rated || c.Rating != r {
					t.Errorf("%v: expected rated %d, got %v %d", c.Date, r, c.Kind, c.Rating)
				}
			default:
				if c.Kind != Empty {
					t.Errorf("%v: expected empty, got %v", c.Date, c.Kind)
				}
			}
		}
	}
	if last := g.Weeks[len(g.Weeks)-1].Days[DaysPerWeek-1].Date; last.Before(end) {
		t.Fatalf("grid ends at %v, before %v", last, end)
	}
}

func TestBuildAlignsEveryStartDay(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		start := day.New(2024, time.May, 1).AddDays(offset)
		g, err := Build(context.Background(), &fakeSource{}, mustRange(t, start, start.AddDays(offset)))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if g.First.Weekday() != time.Sunday {
			t.Fatalf("start %v: grid begins on %v", start, g.First.Weekday())
		}
		if start.DaysSince(g.First) > 6 || g.First.After(start) {
			t.Fatalf("start %v: bad first day %v", start, g.First)
		}
		wantWeeks := (start.AddDays(offset).DaysSince(g.First) + 7) / 7
		if len(g.Weeks) != wantWeeks {
			t.Fatalf("start %v: expected %d weeks, got %d", start, wantWeeks, len(g.Weeks))
		}
	}
}

func TestMonthLabels(t *testing.T) {
	r := mustRange(t, day.New(2024, time.January, 1), day.New(2024, time.March, 30))
	g, err := Build(context.Background(), &fakeSource{}, r)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	labels := map[int]string{}
	for i, w := range g.Weeks {
		if w.Month != "" {
			labels[i] = w.Month
		}
	}
	want := map[int]string{0: "Jan", 4: "Feb", 8: "Mar"}
	if len(labels) != len(want) {
		t.Fatalf("expected labels %v, got %v", want, labels)
	}
	for i, m := range want {
		if labels[i] != m {
			t.Fatalf("week %d: expected %q, got %q", i, m, labels[i])
		}
	}

	lines := strings.Split(Render(g), "\n")
	if got := strings.TrimRight(strings.TrimSuffix(strings.TrimPrefix(lines[1], glyph.West), glyph.East), " "); got != "    Jan     Feb     Mar" {
		t.Fatalf("unexpected month line %q", got)
	}
}

func TestScaleIndex(t *testing.T) {
	tests := []struct {
		r    rating.Rating
		want int
	}{
		{-5, 0},
		{-3, 0},
		{-2, 1},
		{0, 3},
		{2, 5},
		{3, 6},
		{10, 6},
	}
	for _, tt := range tests {
		if got := DefaultScale.Index(tt.r); got != tt.want {
			t.Errorf("Index(%d) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if DefaultScale.Color(-5) != DefaultScale[0] || DefaultScale.Color(10) != DefaultScale[ScaleSize-1] {
		t.Fatal("out of band ratings must use the extreme colors")
	}
}

func TestNewScaleRequiresSevenColors(t *testing.T) {
	if _, err := NewScale("#000000", "#FFFFFF"); err == nil {
		t.Fatal("expected error for short scale")
	}
	if _, err := NewScale("#000000", "#111111", "#222222", "#333333", "#444444", "#555555", "nope"); err == nil {
		t.Fatal("expected error for bad hex")
	}
}

func TestRenderRowsShareWidth(t *testing.T) {
	ranges := []struct {
		start, end day.Date
	}{
		{day.New(2024, time.January, 3), day.New(2024, time.January, 3)},
		{day.New(2024, time.January, 1), day.New(2024, time.January, 7)},
		{day.New(2023, time.June, 14), day.New(2024, time.June, 14)},
		{day.New(2024, time.February, 25), day.New(2024, time.April, 2)},
	}
	src := &fakeSource{ratings: map[day.Date]rating.Rating{
		day.New(2024, time.January, 3): 3,
		day.New(2024, time.January, 5): -3,
		day.New(2024, time.March, 9):   10,
		day.New(2023, time.July, 4):    0,
	}}
	for _, tt := range ranges {
		g, err := Build(context.Background(), src, mustRange(t, tt.start, tt.end))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		out := Render(g)
		if !strings.HasSuffix(out, "\n") {
			t.Fatalf("output must end in a newline")
		}
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(lines) != 12 {
			t.Fatalf("expected 12 lines, got %d", len(lines))
		}
		width := ansi.StringWidth(lines[0])
		for i, l := range lines {
			if w := ansi.StringWidth(l); w != width {
				t.Fatalf("%v-%v line %d has width %d, want %d:\n%s", tt.start, tt.end, i, w, width, out)
			}
		}
		if !strings.HasPrefix(lines[0], glyph.NorthWest) || !strings.HasSuffix(lines[0], glyph.NorthEast) {
			t.Fatalf("bad top border %q", lines[0])
		}
		if !strings.HasPrefix(lines[11], glyph.SouthWest) || !strings.HasSuffix(lines[11], glyph.SouthEast) {
			t.Fatalf("bad bottom border %q", lines[11])
		}
		if lines[9] != glyph.West+strings.Repeat(glyph.Rule, width-2)+glyph.East {
			t.Fatalf("bad separator %q", lines[9])
		}
	}
}

func TestRenderColors(t *testing.T) {
	d := day.New(2024, time.January, 3)
	rr := Renderer{Scale: DefaultScale}

	if got := rr.Glyph(Cell{Date: d, Kind: Padding}); got != glyph.Blank {
		t.Fatalf("padding must render blank, got %q", got)
	}
	if got := rr.Glyph(Cell{Date: d, Kind: Empty}); got != glyph.Empty {
		t.Fatalf("empty must render uncolored, got %q", got)
	}
	low := rr.Glyph(Cell{Date: d, Kind: Rated, Rating: -5})
	if low != DefaultScale[0].Paint(glyph.Full) {
		t.Fatalf("expected worst color for -5, got %q", low)
	}
	if !strings.HasPrefix(low, "\x1b[38;2;105;26;26m") {
		t.Fatalf("expected 24-bit escape for #691A1A, got %q", low)
	}
	high := rr.Glyph(Cell{Date: d, Kind: Rated, Rating: 10})
	if high != DefaultScale[6].Paint(glyph.Full) {
		t.Fatalf("expected best color for 10, got %q", high)
	}
}

func TestRenderAllEmpty(t *testing.T) {
	r := mustRange(t, day.New(2024, time.January, 1), day.New(2024, time.January, 31))
	g, err := Build(context.Background(), &fakeSource{}, r)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out := Render(g)
	if strings.Contains(out, glyph.Full) {
		t.Fatalf("no rated days expected:\n%s", out)
	}
	if n := strings.Count(out, glyph.Empty); n != 31 {
		t.Fatalf("expected 31 empty glyphs, got %d", n)
	}
}

func TestRangeSetters(t *testing.T) {
	var r Range
	if err := r.SetEnd("01-07-2024"); err != nil {
		t.Fatalf("set end: %v", err)
	}
	if err := r.SetStart("01-01-2024"); err != nil {
		t.Fatalf("set start: %v", err)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if r.Days() != 7 {
		t.Fatalf("expected 7 days, got %d", r.Days())
	}
	if err := r.SetStart("2024-01-01"); !errors.Is(err, day.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if r.Start() != day.New(2024, time.January, 1) {
		t.Fatalf("failed setter must keep the previous value, got %v", r.Start())
	}
	if err := r.SetStart("02-01-2024"); err != nil {
		t.Fatalf("set start: %v", err)
	}
	if err := r.Validate(); !errors.Is(err, ErrRangeOrder) {
		t.Fatalf("expected ErrRangeOrder, got %v", err)
	}
}

func TestDefaultRange(t *testing.T) {
	end := day.New(2024, time.December, 31)
	r := DefaultRange(end)
	if r.End() != end || r.Start() != day.New(2024, time.January, 1) {
		t.Fatalf("unexpected default range %v..%v", r.Start(), r.End())
	}
}
