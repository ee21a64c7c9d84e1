package compress

import "fmt"

// NoOp is the Kind.None codec: it passes bytes through unchanged. Stream
// never frames its output in blocks when the configured kind is None, so
// this codec's Compress/Decompress only matter if a caller drives it
// directly (e.g. a test exercising the codec in isolation).
type NoOp struct{}

var _ Codec = NoOp{}

func (NoOp) Name() string { return "none" }

func (NoOp) Compress(src, dst []byte) []byte {
	return append(dst, src...)
}

func (NoOp) Decompress(src []byte, dstLen int) ([]byte, error) {
	if len(src) != dstLen {
		return nil, fmt.Errorf("compress: noop block length mismatch: got %d want %d", len(src), dstLen)
	}
	out := make([]byte, dstLen)
	copy(out, src)
	return out, nil
}
