package rle

import (
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/internal/varint"
)

const (
	maxIntRunLength     = 130
	maxIntLiteralLength = 128
)

// IntEncoder implements ORC's integer RLE v1 (spec.md §4.3): literal groups
// of up to 128 varint-encoded values, or runs of 3..130 values advancing by
// a constant delta that fits in a signed byte. Signed streams (LONG, INT,
// SHORT, DATE data; the DECIMAL scale stream is constant-run-only but reuses
// this type) zig-zag the values before varint-encoding them; unsigned
// streams (LENGTH, SECONDARY nanos) varint-encode the raw bits.
type IntEncoder struct {
	stream *compress.Stream
	signed bool

	lits    [maxIntLiteralLength]int64
	numLits int
	repeat  bool
	delta   int64
}

// NewIntEncoder wraps a freshly constructed compression stream. signed
// selects zig-zag varint encoding for the DATA values; pass false for
// streams ORC defines as unsigned (LENGTH, the nanosecond SECONDARY
// stream).
func NewIntEncoder(stream *compress.Stream, signed bool) *IntEncoder {
	return &IntEncoder{stream: stream, signed: signed}
}

// Write appends one integer value to the run/literal state machine.
func (e *IntEncoder) Write(v int64) {
	if e.repeat {
		if e.numLits > 0 {
			expected := e.lits[e.numLits-1] + e.delta
			if v == expected {
				e.lits[e.numLits] = v
				e.numLits++
				if e.numLits == maxIntRunLength {
					e.flushRun()
				}
				return
			}
		}
		e.flushRun()
	}

	if e.numLits == 0 {
		e.lits[0] = v
		e.numLits = 1
		return
	}
	if e.numLits == 1 {
		e.lits[1] = v
		e.numLits = 2
		return
	}

	d1 := e.lits[e.numLits-1] - e.lits[e.numLits-2]
	d2 := v - e.lits[e.numLits-1]
	if d1 == d2 && d1 >= -128 && d1 <= 127 {
		first, second := e.lits[e.numLits-2], e.lits[e.numLits-1]
		prefixLen := e.numLits - 2
		if prefixLen > 0 {
			e.flushLiteralPrefix(prefixLen)
		}
		e.lits[0], e.lits[1], e.lits[2] = first, second, v
		e.numLits = 3
		e.repeat = true
		e.delta = d1
		return
	}

	e.lits[e.numLits] = v
	e.numLits++
	if e.numLits == maxIntLiteralLength {
		e.flushLiteral()
	}
}

func (e *IntEncoder) flushRun() {
	header := byte(e.numLits - minRunLength) // 0..127, run length 3..130
	e.stream.WriteByte(header)
	e.stream.WriteByte(byte(int8(e.delta))) //nolint:gosec
	e.writeValue(e.lits[0])
	e.numLits = 0
	e.repeat = false
}

func (e *IntEncoder) flushLiteral() {
	e.flushLiteralPrefix(e.numLits)
	e.numLits = 0
}

func (e *IntEncoder) flushLiteralPrefix(n int) {
	header := byte(-int8(n)) //nolint:gosec
	e.stream.WriteByte(header)
	for i := 0; i < n; i++ {
		e.writeValue(e.lits[i])
	}
	remaining := e.numLits - n
	for i := 0; i < remaining; i++ {
		e.lits[i] = e.lits[n+i]
	}
}

func (e *IntEncoder) writeValue(v int64) {
	var buf [10]byte
	var out []byte
	if e.signed {
		out = varint.AppendVarint(buf[:0], v)
	} else {
		out = varint.AppendUvarint(buf[:0], uint64(v))
	}
	_, _ = e.stream.Write(out)
}

// Finish flushes any pending literal or run group.
func (e *IntEncoder) Finish() {
	if e.repeat {
		e.flushRun()
	} else if e.numLits > 0 {
		e.flushLiteral()
	}
}

// Position composes the underlying stream position with the number of
// values already queued in the not-yet-flushed group.
func (e *IntEncoder) Position() []uint64 {
	return append(e.stream.Position().Ints(), uint64(e.numLits))
}

// DecodeIntRLEv1 decodes an integer RLE v1 stream into its logical int64
// values, undoing zig-zag mapping when signed is true.
func DecodeIntRLEv1(data []byte, signed bool) []int64 {
	var out []int64
	i := 0
	readValue := func() int64 {
		if signed {
			v, n := varint.Varint(data[i:])
			i += n
			return v
		}
		v, n := varint.Uvarint(data[i:])
		i += n
		return int64(v)
	}

	for i < len(data) {
		header := int8(data[i])
		i++
		if header >= 0 {
			runLen := int(header) + minRunLength
			delta := int64(int8(data[i]))
			i++
			base := readValue()
			for k := 0; k < runLen; k++ {
				out = append(out, base+delta*int64(k))
			}
		} else {
			count := int(-header)
			for k := 0; k < count; k++ {
				out = append(out, readValue())
			}
		}
	}
	return out
}
