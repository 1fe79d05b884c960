// Package rating defines the daily mood score.
package rating

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Worst is the lowest rating that gets its own color.
	Worst Rating = -3
	// Best is the highest rating that gets its own color.
	Best Rating = 3
)

// Rating is a subjective mood score. Values outside [Worst, Best] are kept as
// entered and only pinned when picking a color.
type Rating int

// Clamp pins r to [Worst, Best].
func (r Rating) Clamp() Rating {
	switch {
	case r < Worst:
		return Worst
	case r > Best:
		return Best
	default:
		return r
	}
}

// Parse reads a whole number rating. Out of band values are accepted.
func Parse(v string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q", v)
	}
	return Rating(n), nil
}

func (r Rating) String() string {
	return strconv.Itoa(int(r))
}
