package column

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/statistics"
)

// FloatWriter backs Float and Double columns: a single raw little-endian
// DATA stream (no RLE, spec.md §4.4) plus Double statistics. bitWidth
// selects 4-byte (Float) or 8-byte (Double) encoding; both share Go's
// float64 statistics since ORC's FLOAT column still reports DoubleStatistics.
type FloatWriter struct {
	base

	bitWidth   int
	dataStream *compress.Stream

	rowGroupStats statistics.Double
	stripeStats   statistics.Double

	valuesInStream int // values written to the DATA stream this stripe; row-index positions come from the stream's byte position
}

// NewFloatWriter constructs a writer for a Float (bitWidth=32) or Double
// (bitWidth=64) column.
func NewFloatWriter(id int, kind compress.Kind, blockSize int, stride int64, bitWidth int) *FloatWriter {
	w := &FloatWriter{base: newBase(id, kind, blockSize, stride), bitWidth: bitWidth}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *FloatWriter) positions() []uint64 {
	return append(w.presentPositions(), w.dataStream.Position().Ints()...)
}

func (w *FloatWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = stream
	w.valuesInStream = 0
}

func (w *FloatWriter) WriteValue(v float64) {
	w.observe(true)
	var buf [8]byte
	if w.bitWidth == 32 {
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(float32(v)))
		_, _ = w.dataStream.Write(buf[:4])
	} else {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v))
		_, _ = w.dataStream.Write(buf[:8])
	}
	w.valuesInStream++
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *FloatWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *FloatWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := doubleStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Double{}
	return stats
}

func (w *FloatWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *FloatWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *FloatWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)
	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})
}

func (w *FloatWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *FloatWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, doubleStatsProto(w.stripeStats))
}

func (w *FloatWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize()
}

func (w *FloatWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Double{}
	w.stripeStats = statistics.Double{}
}

func doubleStatsProto(s statistics.Double) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	ds := &pb.DoubleStatistics{Sum: &s.Sum}
	if s.HasMinMax {
		ds.Minimum, ds.Maximum = &s.Min, &s.Max
	}
	cs.DoubleStatistics = ds
	return cs
}
