// Package progress reports how many frames have been written.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// Counter counts completed frames out of a total. Done is safe to call from
// multiple goroutines.
type Counter struct {
	w     io.Writer
	total int64
	done  atomic.Int64
	// skipped frames were written by an earlier run.
	skipped int64

	// inPlace rewrites one status line with carriage returns instead of
	// printing a line per frame.
	inPlace bool
}

// NewCounter reports to w. Updates overwrite each other when w is a
// terminal. A nil w discards all output.
func NewCounter(w io.Writer, total int) *Counter {
	if w == nil {
		w = io.Discard
	}

	return &Counter{
		w:       w,
		total:   int64(total),
		inPlace: isTerminal(w),
	}
}

// Skip marks the first n frames as already written, so the next Done
// reports frame n+1. It must be called before any Done.
func (c *Counter) Skip(n int) {
	c.skipped = int64(n)
	c.done.Store(int64(n))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Done records one more finished frame and prints the status line.
func (c *Counter) Done() int64 {
	n := c.done.Add(1)

	if c.inPlace {
		fmt.Fprintf(c.w, "\rWrote image #%04d/%d", n, c.total)
	} else {
		fmt.Fprintf(c.w, "Wrote image #%04d/%d\n", n, c.total)
	}

	return n
}

// Count is the number of frames finished so far, skipped ones included.
func (c *Counter) Count() int64 {
	return c.done.Load()
}

// Finish ends an in-place status line.
func (c *Counter) Finish() {
	if c.inPlace && c.done.Load() > c.skipped {
		fmt.Fprintln(c.w)
	}
}
