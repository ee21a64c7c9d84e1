package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/stretchr/testify/require"
)

func TestStringWriter_DataAndLengthRoundTrip(t *testing.T) {
	w := NewStringWriter(1, compress.None, 0, 0)
	values := []string{"banana", "apple", "cherry"}
	for _, v := range values {
		w.WriteValue([]byte(v))
	}

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	lengths := rle.DecodeIntRLEv1(streams[streamKey{1, pb.Stream_LENGTH}], false)
	require.Equal(t, []int64{6, 5, 6}, lengths)

	off := 0
	data := streams[streamKey{1, pb.Stream_DATA}]
	for i, v := range values {
		require.Equal(t, v, string(data[off:off+int(lengths[i])]))
		off += int(lengths[i])
	}

	var stats []*pb.ColumnStatistics
	w.Statistics(&stats)
	require.Equal(t, "apple", *stats[0].StringStatistics.Minimum)
	require.Equal(t, "cherry", *stats[0].StringStatistics.Maximum)
	require.Equal(t, int64(17), *stats[0].StringStatistics.Sum)
}
