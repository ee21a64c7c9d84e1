package rle

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/stretchr/testify/require"
)

func newUncompressedStream(t *testing.T) *compress.Stream {
	t.Helper()
	stream, err := compress.NewStream(compress.None, 0)
	require.NoError(t, err)
	return stream
}

func TestByteEncoder_Run(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewByteEncoder(stream)
	for i := 0; i < 5; i++ {
		enc.WriteByte(0x2a)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, []byte{0x02, 0x2a}, out) // header = 5-3 = 2

	decoded := DecodeByteRLE(out)
	require.Equal(t, []byte{0x2a, 0x2a, 0x2a, 0x2a, 0x2a}, decoded)
}

func TestByteEncoder_Literal(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewByteEncoder(stream)
	values := []byte{1, 2, 3, 5, 8}
	for _, b := range values {
		enc.WriteByte(b)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	decoded := DecodeByteRLE(out)
	require.Equal(t, values, decoded)
}

func TestByteEncoder_RunLengthTwoEncodesAsLiteral(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewByteEncoder(stream)
	enc.WriteByte(9)
	enc.WriteByte(9)
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	// A 2-byte run is not allowed; must be a 2-byte literal group.
	require.Equal(t, byte(256-2), out[0])
	require.Equal(t, []byte{9, 9}, DecodeByteRLE(out))
}

func TestByteEncoder_MixedLiteralThenRun(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewByteEncoder(stream)
	values := []byte{1, 2, 3, 7, 7, 7, 7, 7, 9, 10}
	for _, b := range values {
		enc.WriteByte(b)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, values, DecodeByteRLE(out))
}

func TestByteEncoder_LongRunSplitsAtMaxLength(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewByteEncoder(stream)
	for i := 0; i < 400; i++ {
		enc.WriteByte(0x11)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	decoded := DecodeByteRLE(out)
	require.Len(t, decoded, 400)
	for _, b := range decoded {
		require.Equal(t, byte(0x11), b)
	}
}

// sliceWriter adapts a *[]byte to io.Writer for tests that need the bytes
// compress.Stream.Finish produces without going through a file.
type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
