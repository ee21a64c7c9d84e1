// Package buffer provides a growable byte container: amortized-growth
// allocation plus in-place patch/extend operations. No other package in
// this module imports it; the encoders and compression streams write
// through plain byte slices.
package buffer

import "sync"

// defaultGrowth is the step used to grow small buffers; past
// largeThreshold growth switches to 25% of current capacity to avoid
// over-allocating for buffers that are already large.
const (
	defaultGrowth  = 16 * 1024
	largeThreshold = 4 * defaultGrowth
)

// Buffer is a growable byte container with in-place indexing for patching
// already-written bytes (used by callers that need to rewrite a
// placeholder, such as a length prefix recorded before its value is known)
// and a Reset that keeps the backing array.
type Buffer struct {
	b []byte
}

// New returns a Buffer with the given capacity hint.
func New(capacityHint int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacityHint)}
}

// Len returns the number of bytes currently stored.
func (buf *Buffer) Len() int { return len(buf.b) }

// Cap returns the allocated capacity.
func (buf *Buffer) Cap() int { return cap(buf.b) }

// Bytes returns the underlying slice. The caller must not retain it across
// a subsequent Append/Reset, since either may reallocate or truncate it.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Reset truncates the buffer to length zero without releasing the backing
// array, so the next round of appends reuses the existing allocation.
func (buf *Buffer) Reset() { buf.b = buf.b[:0] }

// Grow ensures at least n more bytes can be appended without a further
// reallocation.
func (buf *Buffer) Grow(n int) {
	if cap(buf.b)-len(buf.b) >= n {
		return
	}

	growBy := defaultGrowth
	if cap(buf.b) > largeThreshold {
		growBy = cap(buf.b) / 4
	}
	if growBy < n {
		growBy = n
	}

	grown := make([]byte, len(buf.b), len(buf.b)+growBy)
	copy(grown, buf.b)
	buf.b = grown
}

// AppendByte appends a single byte.
func (buf *Buffer) AppendByte(b byte) {
	buf.Grow(1)
	buf.b = append(buf.b, b)
}

// Append appends a byte slice.
func (buf *Buffer) Append(p []byte) {
	buf.Grow(len(p))
	buf.b = append(buf.b, p...)
}

// At returns the byte at index i, for patching checks.
func (buf *Buffer) At(i int) byte { return buf.b[i] }

// SetAt overwrites the byte at index i in place.
func (buf *Buffer) SetAt(i int, v byte) { buf.b[i] = v }

// Pool recycles Buffers sized for repeated per-stripe encoder resets: every
// column writer discards its encoder buffers when a stripe flushes and
// allocates fresh ones for the next stripe, so pooling avoids re-growing
// each buffer from zero on every stripe.
type Pool struct {
	pool         sync.Pool
	maxRetained  int
}

// NewPool creates a Pool whose buffers start at defaultSize capacity and
// are discarded (not retained) if they grow past maxRetained bytes.
func NewPool(defaultSize, maxRetained int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return New(defaultSize) },
		},
		maxRetained: maxRetained,
	}
}

// Get returns a reset Buffer from the pool.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns buf to the pool, unless it has grown past maxRetained.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxRetained > 0 && buf.Cap() > p.maxRetained {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}
