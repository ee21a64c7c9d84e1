package column

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/stretchr/testify/require"
)

func TestFloatWriter_DoubleDataRoundTrips(t *testing.T) {
	w := NewFloatWriter(1, compress.None, 0, 0, 64)
	values := []float64{1.5, -2.25, 0, 3.125}
	for _, v := range values {
		w.WriteValue(v)
	}

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	data := streams[streamKey{1, pb.Stream_DATA}]
	require.Len(t, data, len(values)*8)
	for i, v := range values {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		require.InDelta(t, v, math.Float64frombits(bits), 1e-12)
	}
}

func TestFloatWriter_FloatBitWidthUsesFourBytes(t *testing.T) {
	w := NewFloatWriter(1, compress.None, 0, 0, 32)
	w.WriteValue(2.5)

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	require.Len(t, streams[streamKey{1, pb.Stream_DATA}], 4)
}
