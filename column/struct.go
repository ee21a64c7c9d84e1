package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/statistics"
)

// StructWriter backs Struct columns: no data stream of its own (just an
// optional PRESENT stream), with children writing their own values
// independently (spec.md §4.4's "Struct | children only (plus its
// PRESENT)").
type StructWriter struct {
	base

	children []Writer

	totalPresent int64

	rowGroupStats statistics.Generic
	stripeStats   statistics.Generic
}

// NewStructWriter constructs a Struct writer over already-constructed
// child writers, in schema field order.
func NewStructWriter(id int, kind compress.Kind, blockSize int, stride int64, children []Writer) *StructWriter {
	w := &StructWriter{base: newBase(id, kind, blockSize, stride), children: children}
	w.setPositionRecorder(w.positions)
	return w
}

func (w *StructWriter) positions() []uint64 { return w.presentPositions() }

// Children returns the child writers in schema field order, for callers
// that need to navigate into them (spec.md §6's StructHandle.child(i)).
func (w *StructWriter) Children() []Writer { return w.children }

// WriteRow appends a non-null struct row marker; the caller is responsible
// for writing the corresponding values (or nulls) to every child.
func (w *StructWriter) WriteRow() {
	w.observe(true)
	w.totalPresent++
	w.rowGroupStats.Update(true)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *StructWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Update(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *StructWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := genericStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Generic{}
	return stats
}

// VerifyRowCount checks this column's own count against expected, then
// recurses into every child with this column's non-null count as their
// expected total (spec.md §3's invariant).
func (w *StructWriter) VerifyRowCount(expected int64) {
	verifyCount(w.numValuesSoFar, expected)
	for _, c := range w.children {
		c.VerifyRowCount(w.totalPresent)
	}
}

func (w *StructWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
	for _, c := range w.children {
		c.WriteIndexStreams(sink, infos)
	}
}

func (w *StructWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)
	for _, c := range w.children {
		c.WriteDataStreams(sink, infos)
	}
}

func (w *StructWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
	for _, c := range w.children {
		c.ColumnEncodings(out)
	}
}

func (w *StructWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, genericStatsProto(w.stripeStats))
	for _, c := range w.children {
		c.Statistics(out)
	}
}

func (w *StructWriter) EstimatedSize() int {
	total := w.estimatedPresentSize()
	for _, c := range w.children {
		total += c.EstimatedSize()
	}
	return total
}

func (w *StructWriter) Reset() {
	w.base.reset()
	w.setPositionRecorder(w.positions)
	w.totalPresent = 0
	w.rowGroupStats = statistics.Generic{}
	w.stripeStats = statistics.Generic{}
	for _, c := range w.children {
		c.Reset()
	}
}

func genericStatsProto(s statistics.Generic) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	return &pb.ColumnStatistics{NumberOfValues: &n}
}
