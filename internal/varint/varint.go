// Package varint implements the base-128 little-endian varint encoding and
// zig-zag signed mapping that ORC's integer RLE v1 and decimal streams use
// on the wire (spec.md §4.3):
// zigzag := (v << 1) ^ (v >> 63); binary.PutUvarint(...)
// the same shape a delta-of-delta timestamp encoder would use. This package
// covers 64-bit values only; the 128-bit decimal varint lives in package
// decimal128 (Decimal128.AppendVarint).
package varint

import "encoding/binary"

// ZigZag maps a signed 64-bit integer to an unsigned one so that small
// magnitude values (positive or negative) encode to few varint bytes.
func ZigZag(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// UnZigZag reverses ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendUvarint appends the unsigned varint encoding of v to dst.
func AppendUvarint(dst []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(dst, tmp[:n]...)
}

// AppendVarint appends the zig-zag + varint encoding of a signed v to dst.
func AppendVarint(dst []byte, v int64) []byte {
	return AppendUvarint(dst, ZigZag(v))
}

// Uvarint reads an unsigned varint from the front of p, returning the value
// and the number of bytes consumed (0 if p doesn't hold a complete value).
func Uvarint(p []byte) (uint64, int) {
	return binary.Uvarint(p)
}

// Varint reads a zig-zag + varint encoded signed integer.
func Varint(p []byte) (int64, int) {
	u, n := binary.Uvarint(p)
	if n <= 0 {
		return 0, n
	}
	return UnZigZag(u), n
}
