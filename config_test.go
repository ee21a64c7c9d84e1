package orc

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, int64(defaultRowIndexStride), cfg.rowIndexStride)
	require.Equal(t, compress.None, cfg.compression)
	require.Equal(t, defaultBlockSize, cfg.blockSize)
	require.Equal(t, int64(defaultStripeSize), cfg.stripeSize)
}

func TestNewConfig_AppliesOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithRowIndexStride(0),
		WithCompression(compress.Zstd),
		WithBlockSize(4096),
		WithStripeSize(1024),
	)
	require.NoError(t, err)
	require.Equal(t, int64(0), cfg.rowIndexStride)
	require.Equal(t, compress.Zstd, cfg.compression)
	require.Equal(t, 4096, cfg.blockSize)
	require.Equal(t, int64(1024), cfg.stripeSize)
}

func TestNewConfig_RejectsNegativeRowIndexStride(t *testing.T) {
	_, err := NewConfig(WithRowIndexStride(-1))
	require.Error(t, err)
}

func TestNewConfig_RejectsUnsupportedCompression(t *testing.T) {
	_, err := NewConfig(WithCompression(compress.Zlib))
	require.Error(t, err)
}

func TestNewConfig_RejectsNonPositiveBlockSize(t *testing.T) {
	_, err := NewConfig(WithBlockSize(0))
	require.Error(t, err)
}

func TestNewConfig_RejectsOversizeBlockSize(t *testing.T) {
	_, err := NewConfig(WithBlockSize(maxBlockSize + 1))
	require.Error(t, err)
}

func TestNewConfig_RejectsNonPositiveStripeSize(t *testing.T) {
	_, err := NewConfig(WithStripeSize(0))
	require.Error(t, err)
}
