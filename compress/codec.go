package compress

import "fmt"

// Compressor compresses a single block of bytes. Compress must append the
// compressed contents of src to dst and return the extended slice; it must
// not retain src after returning. This append-into-dst shape lets
// Stream reuse one output buffer across many blocks instead of
// allocating per block.
type Compressor interface {
	// Name is the compression algorithm name, for diagnostics.
	Name() string
	// Compress appends the compressed form of src to dst and returns the result.
	Compress(src, dst []byte) []byte
}

// Decompressor decompresses a single block of bytes previously produced by
// the matching Compressor. The reader side of ORC is out of scope for this
// module (spec.md §1), but every codec implements Decompressor so the
// writer's own tests can verify a block round-trips before it is ever
// handed to a real ORC reader.
type Decompressor interface {
	Name() string
	// Decompress decompresses src into a newly allocated slice of exactly
	// dstLen bytes, returning an error if src doesn't decode to that length.
	Decompress(src []byte, dstLen int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// New constructs the Codec for the given Kind. It returns an error for any
// Kind this writer does not implement (see Kind.Supported).
func New(kind Kind) (Codec, error) {
	switch kind {
	case None:
		return NoOp{}, nil
	case Snappy:
		return SnappyCodec{}, nil
	case Zstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression kind %s", kind)
	}
}
