package orc

import (
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/internal/options"
)

// maxBlockSize is the largest compression block size the wire format can
// represent: a block's 3-byte header packs length<<1|is_original into 24
// bits (spec.md §4.2).
const maxBlockSize = 1<<23 - 1

// writerVersion is the fixed ORC writer-version number this module reports
// in every PostScript (spec.md §4.7 step 5).
const writerVersion = 6

// defaultRowIndexStride is the number of rows between row-group boundaries
// when row indexes are enabled (spec.md §4.7).
const defaultRowIndexStride = 10000

// defaultBlockSize is the compression block size in bytes (spec.md §4.7).
const defaultBlockSize = 262144

// defaultStripeSize is the uncompressed size, in bytes, at which a stripe
// is flushed (spec.md §4.7).
const defaultStripeSize = 64 * 1024 * 1024

// Config holds the tunables spec.md §4.7 lists for the file assembler:
// row-group granularity, block compression, and stripe rollover size, plus
// caller-supplied footer provenance (userMetadata).
type Config struct {
	rowIndexStride int64
	compression    compress.Kind
	blockSize      int
	stripeSize     int64
	userMetadata   map[string][]byte
}

// NewConfig builds a Config from the defaults (10000-row row index stride,
// no compression, a 256 KiB compression block, and a 64 MiB stripe size),
// applying opts in order.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		rowIndexStride: defaultRowIndexStride,
		compression:    compress.None,
		blockSize:      defaultBlockSize,
		stripeSize:     defaultStripeSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Option configures a Config; see WithRowIndexStride, WithCompression,
// WithBlockSize, and WithStripeSize.
type Option = options.Option[*Config]

// WithRowIndexStride sets the number of rows between row-group boundaries.
// A stride of 0 disables row indexes entirely; a negative stride is
// rejected.
func WithRowIndexStride(rows int64) Option {
	return options.New(func(c *Config) error {
		if rows < 0 {
			return errs.ErrInvalidRowIndexStride
		}
		c.rowIndexStride = rows
		return nil
	})
}

// WithCompression selects the block compression codec. Only the kinds
// this writer implements (None, Snappy, Zstd) are accepted.
func WithCompression(kind compress.Kind) Option {
	return options.New(func(c *Config) error {
		if !kind.Supported() {
			return errs.ErrUnsupportedCompression
		}
		c.compression = kind
		return nil
	})
}

// WithBlockSize sets the compression block size in bytes. Must be positive
// and small enough to fit the wire format's 23-bit length field.
func WithBlockSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 || n > maxBlockSize {
			return errs.ErrInvalidBlockSize
		}
		c.blockSize = n
		return nil
	})
}

// WithStripeSize sets the uncompressed byte threshold at which WriteBatch
// triggers a stripe flush.
func WithStripeSize(n int64) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return errs.ErrInvalidStripeSize
		}
		c.stripeSize = n
		return nil
	})
}

// WithUserMetadata attaches caller-supplied name/value pairs to the file
// footer (spec.md §4.7 step 4's UserMetadata addition), for provenance such
// as a producer version string. Values are copied so later mutation of the
// supplied map doesn't affect the written file.
func WithUserMetadata(meta map[string][]byte) Option {
	return options.New(func(c *Config) error {
		m := make(map[string][]byte, len(meta))
		for k, v := range meta {
			m[k] = append([]byte(nil), v...)
		}
		c.userMetadata = m
		return nil
	})
}
