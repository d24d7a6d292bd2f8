// Package ioutil provides writer helpers for RenderTo implementations.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, sums the bytes written and remembers the first error.
// After an error every further write is skipped.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// WriteString writes s unless a previous write failed.
func (cw *CountingWriter) WriteString(s string) *CountingWriter {
	if cw.err != nil || s == "" {
		return cw
	}
	n, err := io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return cw
}

// Call executes a RenderTo-style function unless a previous write failed.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	n, err := fn(cw.w)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return cw
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter returns a pooled CountingWriter wrapping w.
// Release it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
