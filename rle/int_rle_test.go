package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntEncoder_ConstantDeltaRun(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewIntEncoder(stream, true)
	values := []int64{100, 103, 106, 109, 112}
	for _, v := range values {
		enc.Write(v)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, values, DecodeIntRLEv1(out, true))
}

func TestIntEncoder_LiteralGroup(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewIntEncoder(stream, true)
	values := []int64{-5, 17, 0, 42, -1000, 8}
	for _, v := range values {
		enc.Write(v)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, values, DecodeIntRLEv1(out, true))
}

func TestIntEncoder_MixedRunsAndLiterals(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewIntEncoder(stream, true)
	values := []int64{1, 2, 3, 4, 5, 9, -3, 100, 101, 102, 103, 104, 105}
	for _, v := range values {
		enc.Write(v)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, values, DecodeIntRLEv1(out, true))
}

func TestIntEncoder_UnsignedLengths(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewIntEncoder(stream, false)
	values := []int64{0, 1, 1, 1, 5, 200, 65536}
	for _, v := range values {
		enc.Write(v)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	require.Equal(t, values, DecodeIntRLEv1(out, false))
}

func TestIntEncoder_ZeroDeltaRun(t *testing.T) {
	stream := newUncompressedStream(t)
	enc := NewIntEncoder(stream, true)
	for i := 0; i < 10; i++ {
		enc.Write(7)
	}
	enc.Finish()

	var out []byte
	_, err := stream.Finish(&sliceWriter{&out})
	require.NoError(t, err)

	decoded := DecodeIntRLEv1(out, true)
	require.Len(t, decoded, 10)
	for _, v := range decoded {
		require.Equal(t, int64(7), v)
	}
}
