package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolEncoder_RoundTrip(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewBoolEncoder(stream)

	values := []bool{true, false, false, true, true, true, true, true, false, true, true}
	for _, v := range values {
		enc.WriteBool(v)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	decoded := DecodeBoolRLE(out, len(values))
	require.Equal(t, values, decoded)
}

func TestBoolEncoder_AllTrue(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewBoolEncoder(stream)
	for i := 0; i < 17; i++ {
		enc.WriteBool(true)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	decoded := DecodeBoolRLE(out, 17)
	require.Len(t, decoded, 17)
	for _, v := range decoded {
		require.True(t, v)
	}
}

func TestBoolEncoder_Empty(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewBoolEncoder(stream)
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)
	require.Empty(t, out)
}
