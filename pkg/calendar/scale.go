package calendar

import (
	"fmt"

	"tableflip.dev/mhc/pkg/glyph"
	"tableflip.dev/mhc/pkg/rating"
)

// ScaleSize is the number of colors in a Scale, one per clamped rating.
const ScaleSize = int(rating.Best-rating.Worst) + 1

// Scale maps clamped ratings to colors, worst first.
type Scale [ScaleSize]glyph.RGB

// DefaultScale runs from dark red through yellow to bright green.
var DefaultScale = MustScale("#691A1A", "#9F1E1E", "#C9231A", "#E6E620", "#4A8C19", "#47CB21", "#53FF00")

// NewScale builds a Scale from exactly ScaleSize hex codes.
func NewScale(hexes ...string) (Scale, error) {
	var s Scale
	if len(hexes) != ScaleSize {
		return s, fmt.Errorf("color scale needs %d colors, got %d", ScaleSize, len(hexes))
	}
	for i, h := range hexes {
		c, err := glyph.ParseHex(h)
		if err != nil {
			return s, err
		}
		s[i] = c
	}
	return s, nil
}

// MustScale is NewScale that panics on bad input.
func MustScale(hexes ...string) Scale {
	s, err := NewScale(hexes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Index returns the position of r's color.
func (s Scale) Index(r rating.Rating) int {
	return int(r.Clamp() - rating.Worst)
}

// Color returns the color for r.
func (s Scale) Color(r rating.Rating) glyph.RGB {
	return s[s.Index(r)]
}
