// Package ioutil provides the position-counting sink wrapper described in
// spec.md §4.1: a thin layer over the caller's io.Writer that tracks the
// absolute byte offset written so far, so the file assembler can delimit
// regions (index, data, footer, postscript) by snapshotting the offset
// before and after each one.
package ioutil

import "io"

// CountingWriter wraps an io.Writer and counts bytes written through it.
type CountingWriter struct {
	w   io.Writer
	pos int64
}

// NewCountingWriter wraps w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer, forwarding to the wrapped sink and advancing
// the position counter by the number of bytes actually written.
func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.pos += int64(n)
	return n, err
}

// Pos returns the absolute number of bytes written so far.
func (c *CountingWriter) Pos() int64 { return c.pos }
