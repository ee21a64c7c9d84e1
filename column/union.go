package column

import (
	"fmt"
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// UnionWriter backs Union columns: a byte RLE DATA stream of variant tags
// (0..len(variants)-1), followed by the variant children in schema order
// (spec.md §4.4). Each variant's expected row count, at VerifyRowCount
// time, is the number of rows that carried its tag.
type UnionWriter struct {
	base

	dataStream *compress.Stream
	data       *rle.ByteEncoder

	variants  []Writer
	tagCounts []int64

	rowGroupStats statistics.Generic
	stripeStats   statistics.Generic
}

func NewUnionWriter(id int, kind compress.Kind, blockSize int, stride int64, variants []Writer) *UnionWriter {
	w := &UnionWriter{
		base:      newBase(id, kind, blockSize, stride),
		variants:  variants,
		tagCounts: make([]int64, len(variants)),
	}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *UnionWriter) positions() []uint64 {
	return append(w.presentPositions(), w.data.Position()...)
}

func (w *UnionWriter) resetStreams() {
	stream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = stream
	w.data = rle.NewByteEncoder(stream)
}

// Variant returns the child writer for the given tag (spec.md §6's
// UnionHandle.child(tag)).
func (w *UnionWriter) Variant(tag int) Writer { return w.variants[tag] }

// WriteValue appends a non-null union row tagged with the given variant
// index. Panics with a ContractError if tag is out of range for the
// configured variant set (spec.md §7's "union tag out of range").
func (w *UnionWriter) WriteValue(tag int) {
	if tag < 0 || tag >= len(w.variants) {
		errs.NewContractError(fmt.Errorf("%w: tag %d, %d variants", errs.ErrUnionTagOutOfRange, tag, len(w.variants)))
	}

	w.observe(true)
	w.data.WriteByte(byte(tag))
	w.tagCounts[tag]++
	w.rowGroupStats.Update(true)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *UnionWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Update(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *UnionWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := genericStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Generic{}
	return stats
}

// VerifyRowCount checks this column's own count, then every variant
// child's count against the number of rows tagged for that variant.
func (w *UnionWriter) VerifyRowCount(expected int64) {
	verifyCount(w.numValuesSoFar, expected)
	for i, c := range w.variants {
		c.VerifyRowCount(w.tagCounts[i])
	}
}

func (w *UnionWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
	for _, c := range w.variants {
		c.WriteIndexStreams(sink, infos)
	}
}

func (w *UnionWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	w.data.Finish()
	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})

	for _, c := range w.variants {
		c.WriteDataStreams(sink, infos)
	}
}

func (w *UnionWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
	for _, c := range w.variants {
		c.ColumnEncodings(out)
	}
}

func (w *UnionWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, genericStatsProto(w.stripeStats))
	for _, c := range w.variants {
		c.Statistics(out)
	}
}

func (w *UnionWriter) EstimatedSize() int {
	total := w.estimatedPresentSize() + w.dataStream.EstimatedSize()
	for _, c := range w.variants {
		total += c.EstimatedSize()
	}
	return total
}

func (w *UnionWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	for i := range w.tagCounts {
		w.tagCounts[i] = 0
	}
	w.rowGroupStats = statistics.Generic{}
	w.stripeStats = statistics.Generic{}
	for _, c := range w.variants {
		c.Reset()
	}
}
