package compress

// Kind identifies a block compression algorithm. The numeric values match
// the Apache ORC CompressionKind enum so they can be written directly into
// a PostScript message and recognized by any conforming ORC reader.
type Kind uint8

const (
	None   Kind = 0
	Zlib   Kind = 1 // recognized on the wire but not implemented by this writer
	Snappy Kind = 2
	Lzo    Kind = 3 // recognized on the wire but not implemented by this writer
	Lz4    Kind = 4 // recognized on the wire but not implemented by this writer
	Zstd   Kind = 5
)

func (k Kind) String() string {
	switch k {
	case None:
		return "NONE"
	case Zlib:
		return "ZLIB"
	case Snappy:
		return "SNAPPY"
	case Lzo:
		return "LZO"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	default:
		return "UNKNOWN"
	}
}

// Supported reports whether this writer implements Kind. Zlib, Lzo and Lz4
// are valid ORC codecs that other writers may emit, but this module only
// implements the three spec.md names (None, Snappy, Zstd).
func (k Kind) Supported() bool {
	switch k {
	case None, Snappy, Zstd:
		return true
	default:
		return false
	}
}
