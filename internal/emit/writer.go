package emit

import (
	"fmt"
	"io"
)

// stickyWriter wraps an io.Writer and remembers the first error any write
// to it produces. Every writer function in this package takes one of
// these instead of a bare io.Writer, so the dozens of Fprintf calls that
// build up the emitted file don't each need their own error check; Emit
// checks err once at the end, after the whole tree of writer calls has
// run. Once err is set, further writes are no-ops.
type stickyWriter struct {
	w   io.Writer
	err error
}

func newStickyWriter(w io.Writer) *stickyWriter {
	return &stickyWriter{w: w}
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	fmt.Fprintf(s, format, args...)
}
