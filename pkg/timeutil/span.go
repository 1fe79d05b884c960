// Package timeutil parses human friendly day spans.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays    = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
		"y":     365,
		"yr":    365,
		"yrs":   365,
		"year":  365,
		"years": 365,
	}
)

// ParseSpan parses a span like "12w", "30d" or "1y2w" into a number of days
// along with a canonical, compact representation.
func ParseSpan(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", fmt.Errorf("empty span")
	}

	total := 0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid span value %q: %w", matches[1], err)
		}
		base, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported span unit %q", matches[2])
		}
		total += value * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("span must be greater than zero")
	}
	return total, FormatSpan(total), nil
}

// FormatSpan renders days using year/week/day tokens.
func FormatSpan(days int) string {
	if days <= 0 {
		return "0d"
	}
	units := []struct {
		label string
		days  int
	}{
		{"y", 365},
		{"w", 7},
		{"d", 1},
	}
	var parts []string
	for _, u := range units {
		if days < u.days {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", days/u.days, u.label))
		days %= u.days
	}
	return strings.Join(parts, "")
}
