package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/stretchr/testify/require"
)

func TestIntegerWriter_DataRoundTrips(t *testing.T) {
	w := NewIntegerWriter(1, compress.None, 0, 0)
	values := []int64{1, 2, 3, 100, -7, -7, -7, -7}
	for _, v := range values {
		w.WriteValue(v)
	}

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	streams := splitStreams(buf, infos)
	decoded := rle.DecodeIntRLEv1(streams[streamKey{1, pb.Stream_DATA}], true)
	require.Equal(t, values, decoded)

	var stats []*pb.ColumnStatistics
	w.Statistics(&stats)
	require.Len(t, stats, 1)
	require.Equal(t, uint64(len(values)), *stats[0].NumberOfValues)
	require.Equal(t, int64(-7), *stats[0].IntStatistics.Minimum)
	require.Equal(t, int64(100), *stats[0].IntStatistics.Maximum)
}

func TestIntegerWriter_NullsElidePresentUntilFirstNull(t *testing.T) {
	w := NewIntegerWriter(1, compress.None, 0, 0)
	w.WriteValue(1)
	w.WriteValue(2)

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)
	require.Len(t, infos, 1) // DATA only, no PRESENT

	w.Reset()
	w.WriteValue(1)
	w.WriteNull()
	w.WriteValue(3)

	buf = nil
	infos = nil
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)
	require.Len(t, infos, 2) // PRESENT then DATA

	streams := splitStreams(buf, infos)
	present := rle.DecodeBoolRLE(streams[streamKey{1, pb.Stream_PRESENT}], 3)
	require.Equal(t, []bool{true, false, true}, present)

	decoded := rle.DecodeIntRLEv1(streams[streamKey{1, pb.Stream_DATA}], true)
	require.Equal(t, []int64{1, 3}, decoded)
}

func TestIntegerWriter_VerifyRowCountMismatchPanics(t *testing.T) {
	w := NewIntegerWriter(1, compress.None, 0, 0)
	w.WriteValue(1)
	require.Panics(t, func() { w.VerifyRowCount(2) })
}

// TestIntegerWriter_RowIndexPositionsCapturedAtGroupStart pins the row-index
// position to the stream offset *before* a row-group's first value, not
// after its last. The first group starts at the all-zero position; if the
// position were instead captured when the group is finalized (after its
// values were written), it would no longer be all zero.
func TestIntegerWriter_RowIndexPositionsCapturedAtGroupStart(t *testing.T) {
	w := NewIntegerWriter(1, compress.None, 0, 2)
	w.WriteValue(10)
	w.WriteValue(20)
	w.WriteValue(30)
	w.WriteValue(40)

	require.Len(t, w.rowIndexEntries, 2)
	for _, v := range w.rowIndexEntries[0].Positions {
		require.Zero(t, v)
	}

	secondGroupStart := w.rowIndexEntries[1].Positions
	require.NotEmpty(t, secondGroupStart)
	require.NotEqual(t, w.rowIndexEntries[0].Positions, secondGroupStart)
}
