package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// StringWriter backs String, Char, and VarChar columns: raw UTF-8 bytes in
// a DATA stream plus an unsigned int RLE v1 LENGTH stream of byte lengths
// (spec.md §4.4). Char and VarChar differ from String only in the
// maximumLength recorded on their schema Type, not in wire layout.
type StringWriter struct {
	base

	dataStream *compress.Stream

	lengthStream *compress.Stream
	length       *rle.IntEncoder

	rowGroupStats statistics.String
	stripeStats   statistics.String
}

func NewStringWriter(id int, kind compress.Kind, blockSize int, stride int64) *StringWriter {
	w := &StringWriter{base: newBase(id, kind, blockSize, stride)}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *StringWriter) positions() []uint64 {
	positions := append(w.presentPositions(), w.dataStream.Position().Ints()...)
	return append(positions, w.length.Position()...)
}

func (w *StringWriter) resetStreams() {
	dataStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = dataStream

	lengthStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.lengthStream = lengthStream
	w.length = rle.NewIntEncoder(lengthStream, false)
}

func (w *StringWriter) WriteValue(v []byte) {
	w.observe(true)
	_, _ = w.dataStream.Write(v)
	w.length.Write(int64(len(v)))
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *StringWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *StringWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := stringStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.String{}
	return stats
}

func (w *StringWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *StringWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *StringWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})

	w.length.Finish()
	n, err = w.lengthStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_LENGTH, Column: uint32(w.id), Length: uint64(n)})
}

func (w *StringWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *StringWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, stringStatsProto(w.stripeStats))
}

func (w *StringWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize() + w.lengthStream.EstimatedSize()
}

func (w *StringWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.String{}
	w.stripeStats = statistics.String{}
}

func stringStatsProto(s statistics.String) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	ss := &pb.StringStatistics{Sum: &s.SumLength}
	if s.HasMinMax {
		minStr, maxStr := string(s.Min), string(s.Max)
		ss.Minimum, ss.Maximum = &minStr, &maxStr
	}
	cs.StringStatistics = ss
	return cs
}
