package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// ListWriter backs List columns: an unsigned int RLE v1 LENGTH stream of
// per-row element counts, followed by the element child (spec.md §4.4).
// The caller may write the child's values before or after the
// corresponding WriteValue(length) call; only the totals are reconciled,
// at VerifyRowCount time.
type ListWriter struct {
	base

	lengthStream *compress.Stream
	length       *rle.IntEncoder

	element Writer

	totalLength int64

	rowGroupStats statistics.Generic
	stripeStats   statistics.Generic
}

func NewListWriter(id int, kind compress.Kind, blockSize int, stride int64, element Writer) *ListWriter {
	w := &ListWriter{base: newBase(id, kind, blockSize, stride), element: element}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *ListWriter) positions() []uint64 {
	return append(w.presentPositions(), w.length.Position()...)
}

func (w *ListWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.lengthStream = stream
	w.length = rle.NewIntEncoder(stream, false)
}

// Element returns the list's element child writer (spec.md §6's
// ListHandle navigation).
func (w *ListWriter) Element() Writer { return w.element }

// WriteValue appends a non-null list row with the given element count.
func (w *ListWriter) WriteValue(length int64) {
	w.observe(true)
	w.length.Write(length)
	w.totalLength += length
	w.rowGroupStats.Update(true)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *ListWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Update(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *ListWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := genericStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Generic{}
	return stats
}

// VerifyRowCount checks this column's own count, then the element child's
// count against the running sum of lengths (spec.md §3's List invariant).
func (w *ListWriter) VerifyRowCount(expected int64) {
	verifyCount(w.numValuesSoFar, expected)
	w.element.VerifyRowCount(w.totalLength)
}

func (w *ListWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
	w.element.WriteIndexStreams(sink, infos)
}

func (w *ListWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	w.length.Finish()
	n, err := w.lengthStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_LENGTH, Column: uint32(w.id), Length: uint64(n)})

	w.element.WriteDataStreams(sink, infos)
}

func (w *ListWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
	w.element.ColumnEncodings(out)
}

func (w *ListWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, genericStatsProto(w.stripeStats))
	w.element.Statistics(out)
}

func (w *ListWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.lengthStream.EstimatedSize() + w.element.EstimatedSize()
}

func (w *ListWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.totalLength = 0
	w.rowGroupStats = statistics.Generic{}
	w.stripeStats = statistics.Generic{}
	w.element.Reset()
}
