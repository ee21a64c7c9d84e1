package compress

import (
	"fmt"
	"io"
)

// MaxBlockLength is the largest length a compression block header can
// encode (2^23 - 1): the header packs length<<1|isOriginal into 3 bytes.
const MaxBlockLength = 1<<23 - 1

// Stream turns a sequence of encoder bytes into ORC's on-wire block format
// (spec.md §4.2): writes are staged into a block-sized buffer; when the
// buffer fills, the block is compressed and framed with a 3-byte
// little-endian header, falling back to an "original" (uncompressed) block
// whenever compression doesn't shrink the data. When Kind is None the
// stream is unframed — bytes pass straight through with no header at all,
// matching the convention that ORC's block layout only exists when a
// PostScript compression kind other than NONE is in effect.
type Stream struct {
	codec     Codec
	kind      Kind
	blockSize int

	staging []byte
	out     []byte
	scratch []byte

	finished bool
}

// NewStream constructs a Stream for the given codec kind and block size.
// blockSize must be 0 < blockSize <= MaxBlockLength when kind != None; it is
// ignored when kind == None, since the unframed path has no block boundary.
func NewStream(kind Kind, blockSize int) (*Stream, error) {
	if kind != None {
		if blockSize <= 0 || blockSize > MaxBlockLength {
			return nil, fmt.Errorf("compress: invalid block size %d (must be 1..%d)", blockSize, MaxBlockLength)
		}
	}

	codec, err := New(kind)
	if err != nil {
		return nil, err
	}

	s := &Stream{codec: codec, kind: kind, blockSize: blockSize}
	if s.framed() {
		s.staging = make([]byte, 0, blockSize)
	}
	return s, nil
}

func (s *Stream) framed() bool { return s.kind != None }

// WriteByte appends a single byte.
func (s *Stream) WriteByte(b byte) error {
	if !s.framed() {
		s.out = append(s.out, b)
		return nil
	}
	s.staging = append(s.staging, b)
	if len(s.staging) >= s.blockSize {
		s.finalizeBlock()
	}
	return nil
}

// Write appends p, splitting across block boundaries as needed. It
// implements io.Writer so primitive encoders can use it as their sink.
func (s *Stream) Write(p []byte) (int, error) {
	if !s.framed() {
		s.out = append(s.out, p...)
		return len(p), nil
	}

	total := len(p)
	for len(p) > 0 {
		room := s.blockSize - len(s.staging)
		n := len(p)
		if n > room {
			n = room
		}
		s.staging = append(s.staging, p[:n]...)
		p = p[n:]
		if len(s.staging) >= s.blockSize {
			s.finalizeBlock()
		}
	}
	return total, nil
}

// finalizeBlock compresses the staging buffer (if non-empty) and appends
// its framed form to out.
func (s *Stream) finalizeBlock() {
	if len(s.staging) == 0 {
		return
	}

	s.scratch = s.scratch[:0]
	compressed := s.codec.Compress(s.staging, s.scratch)
	s.scratch = compressed

	var payload []byte
	var original bool
	if len(compressed) >= len(s.staging) {
		payload = s.staging
		original = true
	} else {
		payload = compressed
		original = false
	}

	if len(payload) > MaxBlockLength {
		panic(fmt.Errorf("compress: block of %d bytes exceeds max block length %d", len(payload), MaxBlockLength))
	}

	header := uint32(len(payload))<<1 | boolToUint32(original)
	s.out = append(s.out, byte(header), byte(header>>8), byte(header>>16))
	s.out = append(s.out, payload...)

	s.staging = s.staging[:0]
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Position returns the current seek coordinate: where the next finalized
// block would start in the output (only meaningful when framed) and the
// offset within the pending, not-yet-finalized block's uncompressed
// contents. Per spec.md's "record the position at the start of each
// row-group, before any value of that group has been appended", callers
// must snapshot this immediately after a reset, not at flush time.
func (s *Stream) Position() Position {
	if !s.framed() {
		return Position{Compressed: false, InBlock: len(s.out)}
	}
	return Position{Compressed: true, Block: int64(len(s.out)), InBlock: len(s.staging)}
}

// EstimatedSize is the number of bytes already finalized plus the pending
// staging buffer, used by the stripe assembler to decide when to roll over.
func (s *Stream) EstimatedSize() int {
	return len(s.out) + len(s.staging)
}

// Finish finalizes any partial block, writes all accumulated bytes to w,
// and resets the stream to an empty state so it can be reused for the next
// stripe. It returns the number of bytes written to w.
func (s *Stream) Finish(w io.Writer) (int64, error) {
	s.finalizeBlock()
	n, err := w.Write(s.out)
	s.out = s.out[:0]
	if s.staging != nil {
		s.staging = s.staging[:0]
	}
	return int64(n), err
}

// Len returns the number of bytes currently finalized (not counting the
// pending block), useful for tests asserting on intermediate state.
func (s *Stream) Len() int { return len(s.out) }
