package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// IntegerWriter backs Long, Int, Short, and Date columns: a single signed
// int RLE v1 DATA stream plus Integer statistics (spec.md §4.4's table
// entry "Long/Short/Int/Date | DATA (signed int RLE v1)"). Date values are
// days since 1970-01-01, encoded with the exact same machinery as Long.
type IntegerWriter struct {
	base

	dataStream *compress.Stream
	data       *rle.IntEncoder

	rowGroupStats statistics.Integer
	stripeStats   statistics.Integer
}

// NewIntegerWriter constructs a writer for a Long/Int/Short/Date column.
func NewIntegerWriter(id int, kind compress.Kind, blockSize int, stride int64) *IntegerWriter {
	w := &IntegerWriter{base: newBase(id, kind, blockSize, stride)}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *IntegerWriter) positions() []uint64 {
	return append(w.presentPositions(), w.data.Position()...)
}

func (w *IntegerWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = stream
	w.data = rle.NewIntEncoder(stream, true)
}

// WriteValue appends a non-null value.
func (w *IntegerWriter) WriteValue(v int64) {
	w.observe(true)
	w.data.Write(v)
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

// WriteNull appends a null.
func (w *IntegerWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *IntegerWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := integerStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Integer{}
	return stats
}

func (w *IntegerWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *IntegerWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *IntegerWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)
	w.data.Finish()
	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})
}

func (w *IntegerWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *IntegerWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, integerStatsProto(w.stripeStats))
}

func (w *IntegerWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize()
}

func (w *IntegerWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Integer{}
	w.stripeStats = statistics.Integer{}
}

func integerStatsProto(s statistics.Integer) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	if s.HasMinMax {
		is := &pb.IntegerStatistics{Minimum: &s.Min, Maximum: &s.Max}
		if s.SumValid {
			is.Sum = &s.Sum
		}
		cs.IntStatistics = is
	}
	return cs
}
