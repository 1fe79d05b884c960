// Package quote prints a random entry from a quotes file.
package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"strings"

	"github.com/fatih/color"
)

// separator splits quotes; each quote after the first starts with a line
// beginning with '.'.
const separator = "\n."

// Quote picks one quote from Path.
type Quote struct {
	Path string
	Out  io.Writer
	// Pick chooses an index in [0, n). Defaults to rand.Intn.
	Pick func(n int) int
}

// Do prints a quote. A missing file prints nothing.
func (q *Quote) Do(_ context.Context) error {
	data, err := os.ReadFile(q.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read quotes: %w", err)
	}

	quotes := Split(string(data))
	if len(quotes) == 0 {
		return nil
	}

	pick := q.Pick
	if pick == nil {
		pick = rand.Intn
	}
	out := q.Out
	if out == nil {
		out = color.Output
	}

	i := color.New(color.Italic)
	_, _ = fmt.Fprintln(out, "")
	_, _ = i.Fprintln(out, quotes[pick(len(quotes))])
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Split breaks a quotes file into trimmed, non-empty quotes.
func Split(data string) []string {
	var out []string
	for _, q := range strings.Split(data, separator) {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}
