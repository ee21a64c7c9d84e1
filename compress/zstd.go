package compress

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec implements Kind.Zstd. Encoders and decoders from
// klauspost/compress/zstd are expensive to construct, so one of each is
// built lazily and shared across all calls — both are documented safe for
// concurrent use by the underlying library.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

var (
	zstdEncOnce sync.Once
	zstdEnc     *zstd.Encoder

	zstdDecOnce sync.Once
	zstdDec     *zstd.Decoder
)

func zstdEncoder() *zstd.Encoder {
	zstdEncOnce.Do(func() {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			panic(fmt.Errorf("compress: zstd encoder init: %w", err))
		}
		zstdEnc = enc
	})
	return zstdEnc
}

func zstdDecoder() *zstd.Decoder {
	zstdDecOnce.Do(func() {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
		if err != nil {
			panic(fmt.Errorf("compress: zstd decoder init: %w", err))
		}
		zstdDec = dec
	})
	return zstdDec
}

// NewZstdCodec returns the shared Zstd codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Name() string { return "zstd" }

func (ZstdCodec) Compress(src, dst []byte) []byte {
	return zstdEncoder().EncodeAll(src, dst)
}

func (ZstdCodec) Decompress(src []byte, dstLen int) ([]byte, error) {
	out := make([]byte, 0, dstLen)
	decoded, err := zstdDecoder().DecodeAll(src, out)
	if err != nil {
		return nil, err
	}
	if len(decoded) != dstLen {
		return nil, fmt.Errorf("compress: zstd decompressed length mismatch: got %d want %d", len(decoded), dstLen)
	}
	return decoded, nil
}
