// Package rle implements ORC's v1 run-length primitive encoders: byte RLE,
// boolean RLE (bit-packed byte RLE), and integer RLE v1 (signed and
// unsigned, with delta runs), per spec.md §4.3. Each encoder writes through
// a *compress.Stream and exposes Position() for row-index seeking.
//
// The buffering and "flush when a limit is hit" shape follows the same
// pattern a delta-of-delta timestamp encoder would use: a fixed-size array
// of pending values, a small fixed scratch array for encoding one value,
// and a Finish that flushes whatever is pending — generalized here from a
// single always-delta strategy to ORC's literal-or-run state machine. The
// encoders have no Reset; column writers construct fresh ones per stripe.
package rle

import "github.com/arloliu/orc/compress"

const (
	minRunLength     = 3
	maxRunLength     = 130
	maxLiteralLength = 128
)

// ByteEncoder implements ORC's byte RLE: runs of 3..130 repeats of one byte
// encode as a single header+byte pair; everything else accumulates into
// literal groups of up to 128 bytes with a length-prefixed header.
type ByteEncoder struct {
	stream *compress.Stream

	lits    [maxLiteralLength]byte
	numLits int
	repeat  bool
	runByte byte
}

// NewByteEncoder wraps a freshly constructed compression stream.
func NewByteEncoder(stream *compress.Stream) *ByteEncoder {
	return &ByteEncoder{stream: stream}
}

// WriteByte appends a single byte to the run/literal state machine.
func (e *ByteEncoder) WriteByte(b byte) {
	if e.repeat {
		if b == e.runByte {
			e.numLits++
			if e.numLits == maxRunLength {
				e.flushRun()
			}
			return
		}
		e.flushRun()
	}

	if e.numLits == 0 {
		e.lits[0] = b
		e.numLits = 1
		return
	}

	if e.numLits >= minRunLength-1 && b == e.lits[e.numLits-1] && b == e.lits[e.numLits-2] {
		prefixLen := e.numLits - 2
		if prefixLen > 0 {
			e.flushLiteralPrefix(prefixLen)
		}
		e.repeat = true
		e.runByte = b
		e.numLits = minRunLength
		return
	}

	e.lits[e.numLits] = b
	e.numLits++
	if e.numLits == maxLiteralLength {
		e.flushLiteral()
	}
}

// Write appends a byte slice.
func (e *ByteEncoder) Write(p []byte) {
	for _, b := range p {
		e.WriteByte(b)
	}
}

func (e *ByteEncoder) flushRun() {
	header := byte(e.numLits - minRunLength) // 0..127
	e.stream.WriteByte(header)
	e.stream.WriteByte(e.runByte)
	e.numLits = 0
	e.repeat = false
}

func (e *ByteEncoder) flushLiteral() {
	e.flushLiteralPrefix(e.numLits)
	e.numLits = 0
}

// flushLiteralPrefix emits the first n buffered literal bytes and shifts
// the remaining (numLits-n) bytes down to the front of the buffer; used
// when a trailing run is being carved out of the tail of the literal
// buffer.
func (e *ByteEncoder) flushLiteralPrefix(n int) {
	header := byte(-int8(n)) //nolint:gosec
	e.stream.WriteByte(header)
	for i := 0; i < n; i++ {
		e.stream.WriteByte(e.lits[i])
	}
	remaining := e.numLits - n
	for i := 0; i < remaining; i++ {
		e.lits[i] = e.lits[n+i]
	}
}

// Finish flushes any pending literal or run group.
func (e *ByteEncoder) Finish() {
	if e.repeat {
		e.flushRun()
	} else if e.numLits > 0 {
		e.flushLiteral()
	}
}

// Position returns the stream position composed with the number of values
// already queued in the not-yet-flushed literal/run group, per spec.md's
// "record the underlying compression-stream position plus ... the current
// intra-group value offset".
func (e *ByteEncoder) Position() []uint64 {
	return append(e.stream.Position().Ints(), uint64(e.numLits))
}

// DecodeByteRLE decodes a byte RLE stream, returning the logical byte
// sequence it represents. It exists to make the round-trip property in
// spec.md §8 testable from within this module; reading ORC files is
// otherwise out of scope (spec.md §1).
func DecodeByteRLE(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		header := int8(data[i])
		i++
		if header >= 0 {
			runLen := int(header) + minRunLength
			b := data[i]
			i++
			for k := 0; k < runLen; k++ {
				out = append(out, b)
			}
		} else {
			count := int(-header)
			out = append(out, data[i:i+count]...)
			i += count
		}
	}
	return out
}
