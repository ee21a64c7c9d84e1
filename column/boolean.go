package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// BooleanWriter backs Boolean columns: a single bool RLE DATA stream plus
// Boolean (true/false count) statistics (spec.md §4.4).
type BooleanWriter struct {
	base

	dataStream *compress.Stream
	data       *rle.BoolEncoder

	rowGroupStats statistics.Boolean
	stripeStats   statistics.Boolean
}

func NewBooleanWriter(id int, kind compress.Kind, blockSize int, stride int64) *BooleanWriter {
	w := &BooleanWriter{base: newBase(id, kind, blockSize, stride)}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *BooleanWriter) positions() []uint64 {
	return append(w.presentPositions(), w.data.Position()...)
}

func (w *BooleanWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = stream
	w.data = rle.NewBoolEncoder(stream)
}

func (w *BooleanWriter) WriteValue(v bool) {
	w.observe(true)
	w.data.WriteBool(v)
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *BooleanWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *BooleanWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := booleanStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Boolean{}
	return stats
}

func (w *BooleanWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *BooleanWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *BooleanWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)
	w.data.Finish()
	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})
}

func (w *BooleanWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *BooleanWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, booleanStatsProto(w.stripeStats))
}

func (w *BooleanWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize()
}

func (w *BooleanWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Boolean{}
	w.stripeStats = statistics.Boolean{}
}

func booleanStatsProto(s statistics.Boolean) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	counts := []uint64{uint64(s.TrueCount)}
	cs.BucketStatistics = &pb.BucketStatistics{Count: counts}
	return cs
}
