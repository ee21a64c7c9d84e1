package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/stretchr/testify/require"
)

func TestBooleanWriter_DataRoundTripsAndCounts(t *testing.T) {
	w := NewBooleanWriter(1, compress.None, 0, 0)
	values := []bool{true, false, true, true, false}
	for _, v := range values {
		w.WriteValue(v)
	}

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	decoded := rle.DecodeBoolRLE(streams[streamKey{1, pb.Stream_DATA}], len(values))
	require.Equal(t, values, decoded)

	var stats []*pb.ColumnStatistics
	w.Statistics(&stats)
	require.Equal(t, []uint64{3}, stats[0].BucketStatistics.Count)
}
