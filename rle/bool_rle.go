package rle

import "github.com/arloliu/orc/compress"

// BoolEncoder implements ORC's boolean RLE: bits are packed MSB-first into
// bytes, and the resulting byte stream is itself byte-RLE encoded. It backs
// PRESENT streams and BOOLEAN data streams alike (spec.md §4.3, §4.4).
type BoolEncoder struct {
	bytes   *ByteEncoder
	cur     byte
	nbits   int // bits already packed into cur, 0..7
	nvalues int // total booleans appended since the last reset
}

// NewBoolEncoder wraps a freshly constructed compression stream.
func NewBoolEncoder(stream *compress.Stream) *BoolEncoder {
	return &BoolEncoder{bytes: NewByteEncoder(stream)}
}

// WriteBool appends one boolean value.
func (e *BoolEncoder) WriteBool(v bool) {
	if v {
		e.cur |= 1 << (7 - uint(e.nbits))
	}
	e.nbits++
	e.nvalues++
	if e.nbits == 8 {
		e.bytes.WriteByte(e.cur)
		e.cur = 0
		e.nbits = 0
	}
}

// Finish flushes any partial byte (zero-padded) and the underlying byte RLE
// state.
func (e *BoolEncoder) Finish() {
	if e.nbits > 0 {
		e.bytes.WriteByte(e.cur)
		e.cur = 0
		e.nbits = 0
	}
	e.bytes.Finish()
}

// Position composes the underlying byte-RLE position with the bit offset
// within the current partially-packed byte, per spec.md's row-index
// position rules for bit-packed streams.
func (e *BoolEncoder) Position() []uint64 {
	return append(e.bytes.Position(), uint64(e.nbits))
}

// DecodeBoolRLE decodes a boolean RLE stream into n logical boolean values.
func DecodeBoolRLE(data []byte, n int) []bool {
	bytes := DecodeByteRLE(data)
	out := make([]bool, 0, n)
	for _, b := range bytes {
		for bit := 7; bit >= 0 && len(out) < n; bit-- {
			out = append(out, (b>>uint(bit))&1 == 1)
		}
		if len(out) >= n {
			break
		}
	}
	return out
}
