package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/decimal128"
	"github.com/arloliu/orc/pb"
	"github.com/stretchr/testify/require"
)

func TestDecimalWriter_RejectsValueExceedingPrecision(t *testing.T) {
	w := NewDecimalWriter(1, compress.None, 0, 0, 3, 1) // max unscaled = 999
	require.Panics(t, func() { w.WriteValue(decimal128.FromInt64(1000)) })
}

func TestDecimalWriter_AcceptsValueWithinPrecision(t *testing.T) {
	w := NewDecimalWriter(1, compress.None, 0, 0, 3, 1)
	require.NotPanics(t, func() { w.WriteValue(decimal128.FromInt64(-999)) })
}

func TestDecimalWriter_StatisticsReflectScale(t *testing.T) {
	w := NewDecimalWriter(1, compress.None, 0, 0, 5, 2)
	w.WriteValue(decimal128.FromInt64(1234))
	w.WriteValue(decimal128.FromInt64(-50))

	var buf []byte
	var infos []StreamInfo
	w.WriteDataStreams(&sliceWriter{&buf}, &infos)

	var stats []*pb.ColumnStatistics
	w.Statistics(&stats)
	require.Equal(t, "-0.50", *stats[0].DecimalStatistics.Minimum)
	require.Equal(t, "12.34", *stats[0].DecimalStatistics.Maximum)
}
