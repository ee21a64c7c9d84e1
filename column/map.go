package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// MapWriter backs Map columns: an unsigned int RLE v1 LENGTH stream of
// per-row entry counts, followed by the key child and then the value
// child (spec.md §4.4). Both children's rows are reconciled against the
// running sum of lengths, at VerifyRowCount time.
type MapWriter struct {
	base

	lengthStream *compress.Stream
	length       *rle.IntEncoder

	key   Writer
	value Writer

	totalLength int64

	rowGroupStats statistics.Generic
	stripeStats   statistics.Generic
}

func NewMapWriter(id int, kind compress.Kind, blockSize int, stride int64, key, value Writer) *MapWriter {
	w := &MapWriter{base: newBase(id, kind, blockSize, stride), key: key, value: value}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *MapWriter) positions() []uint64 {
	return append(w.presentPositions(), w.length.Position()...)
}

func (w *MapWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.lengthStream = stream
	w.length = rle.NewIntEncoder(stream, false)
}

// Key and Value return the map's key and value child writers (spec.md
// §6's MapHandle.children()).
func (w *MapWriter) Key() Writer   { return w.key }
func (w *MapWriter) Value() Writer { return w.value }

// WriteValue appends a non-null map row with the given entry count.
func (w *MapWriter) WriteValue(length int64) {
	w.observe(true)
	w.length.Write(length)
	w.totalLength += length
	w.rowGroupStats.Update(true)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *MapWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Update(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *MapWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := genericStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Generic{}
	return stats
}

// VerifyRowCount checks this column's own count, then both the key and
// value children's counts against the running sum of lengths.
func (w *MapWriter) VerifyRowCount(expected int64) {
	verifyCount(w.numValuesSoFar, expected)
	w.key.VerifyRowCount(w.totalLength)
	w.value.VerifyRowCount(w.totalLength)
}

func (w *MapWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
	w.key.WriteIndexStreams(sink, infos)
	w.value.WriteIndexStreams(sink, infos)
}

func (w *MapWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	w.length.Finish()
	n, err := w.lengthStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_LENGTH, Column: uint32(w.id), Length: uint64(n)})

	w.key.WriteDataStreams(sink, infos)
	w.value.WriteDataStreams(sink, infos)
}

func (w *MapWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
	w.key.ColumnEncodings(out)
	w.value.ColumnEncodings(out)
}

func (w *MapWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, genericStatsProto(w.stripeStats))
	w.key.Statistics(out)
	w.value.Statistics(out)
}

func (w *MapWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.lengthStream.EstimatedSize() + w.key.EstimatedSize() + w.value.EstimatedSize()
}

func (w *MapWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.totalLength = 0
	w.rowGroupStats = statistics.Generic{}
	w.stripeStats = statistics.Generic{}
	w.key.Reset()
	w.value.Reset()
}
