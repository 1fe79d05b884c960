// Package glyph holds the characters and escape sequences used to draw the
// calendar.
package glyph

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Full marks a day with a rating.
	Full = "◼"
	// Empty marks a day in range with no rating.
	Empty = "⬚"
	// Blank fills days outside the requested range.
	Blank = " "
)

// Box drawing characters for the calendar frame.
const (
	NorthWest = "╔"
	North     = "═"
	NorthEast = "╗"
	East      = "║"
	SouthEast = "╝"
	South     = "═"
	SouthWest = "╚"
	West      = "║"
	Rule      = "-"
)

const (
	escape    = "\x1b"
	resetCode = 0
	fgRGBCode = "38;2"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex reads a six digit hex code, with or without a leading '#'.
func ParseHex(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want 6 hex digits", hex)
	}
	var parts [3]uint8
	for i := range parts {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", hex, err)
		}
		parts[i] = uint8(v)
	}
	return RGB{R: parts[0], G: parts[1], B: parts[2]}, nil
}

// MustParseHex is ParseHex for constant tables.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders c as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Paint wraps in with a 24-bit foreground color and a reset.
func (c RGB) Paint(in string) string {
	return fmt.Sprintf("%s[%s;%d;%d;%dm%s%s[%dm", escape, fgRGBCode, c.R, c.G, c.B, in, escape, resetCode)
}
