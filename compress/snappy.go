package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyCodec implements Kind.Snappy using the block (not framed) Snappy
// format, which is what ORC's SNAPPY codec expects inside each compression
// block — ORC supplies its own framing (the 3-byte block header), so the
// stream-framing variant of Snappy would be redundant.
type SnappyCodec struct{}

var _ Codec = SnappyCodec{}

func (SnappyCodec) Name() string { return "snappy" }

func (SnappyCodec) Compress(src, dst []byte) []byte {
	// snappy.Encode wants a destination sized for the worst case and
	// returns the slice it actually used; append that onto dst.
	base := len(dst)
	grown := append(dst, make([]byte, snappy.MaxEncodedLen(len(src)))...)
	encoded := snappy.Encode(grown[base:], src)
	return grown[:base+len(encoded)]
}

func (SnappyCodec) Decompress(src []byte, dstLen int) ([]byte, error) {
	out := make([]byte, dstLen)
	decoded, err := snappy.Decode(out[:0:dstLen], src)
	if err != nil {
		return nil, err
	}
	if len(decoded) != dstLen {
		return nil, fmt.Errorf("compress: snappy decompressed length mismatch: got %d want %d", len(decoded), dstLen)
	}
	return decoded, nil
}
