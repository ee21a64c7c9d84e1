package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// BinaryWriter backs Binary columns: raw bytes in a DATA stream plus an
// unsigned int RLE v1 LENGTH stream (spec.md §4.4). ORC defines no
// min/max for Binary, only a total byte-length sum.
type BinaryWriter struct {
	base

	dataStream *compress.Stream

	lengthStream *compress.Stream
	length       *rle.IntEncoder

	rowGroupStats statistics.Binary
	stripeStats   statistics.Binary
}

func NewBinaryWriter(id int, kind compress.Kind, blockSize int, stride int64) *BinaryWriter {
	w := &BinaryWriter{base: newBase(id, kind, blockSize, stride)}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *BinaryWriter) positions() []uint64 {
	positions := append(w.presentPositions(), w.dataStream.Position().Ints()...)
	return append(positions, w.length.Position()...)
}

func (w *BinaryWriter) resetStreams() {
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

func (w *BinaryWriter) WriteValue(v []byte) {
	w.observe(true)
	_, _ = w.dataStream.Write(v)
	w.length.Write(int64(len(v)))
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *BinaryWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *BinaryWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := binaryStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Binary{}
	return stats
}

func (w *BinaryWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *BinaryWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *BinaryWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
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

func (w *BinaryWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *BinaryWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, binaryStatsProto(w.stripeStats))
}

func (w *BinaryWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize() + w.lengthStream.EstimatedSize()
}

func (w *BinaryWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Binary{}
	w.stripeStats = statistics.Binary{}
}

func binaryStatsProto(s statistics.Binary) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	return &pb.ColumnStatistics{
		NumberOfValues:   &n,
		BinaryStatistics: &pb.BinaryStatistics{Sum: &s.SumLength},
	}
}
