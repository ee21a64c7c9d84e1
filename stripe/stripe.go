// Package stripe implements the stripe assembler (spec.md §4.6): it owns
// the root column writer tree for the stripe currently being filled,
// tracks the stripe's absolute starting offset and accumulated row count,
// and knows how to flush — writing index streams, data streams, and a
// StripeFooter message, then resetting the tree for the next stripe.
package stripe

import (
	"github.com/arloliu/orc/column"
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/internal/ioutil"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/schema"
	"github.com/gogo/protobuf/proto"
)

// Stripe accumulates rows for the column tree rooted at Root until Flush is
// called; after Flush it is reset in place and ready for the next stripe.
type Stripe struct {
	schema    *schema.Schema
	kind      compress.Kind
	blockSize int
	stride    int64

	root column.Writer

	offset  uint64
	numRows int64
}

// New constructs a Stripe whose column tree mirrors s (already numbered by
// schema.Assign), starting at the given absolute file offset.
func New(s *schema.Schema, kind compress.Kind, blockSize int, stride int64, offset uint64) *Stripe {
	return &Stripe{
		schema:    s,
		kind:      kind,
		blockSize: blockSize,
		stride:    stride,
		root:      column.Build(s, kind, blockSize, stride),
		offset:    offset,
	}
}

// Root returns the column writer tree rows are pushed into.
func (st *Stripe) Root() column.Writer { return st.root }

// Schema returns the schema this stripe's column tree was built from.
func (st *Stripe) Schema() *schema.Schema { return st.schema }

// NumRows returns the number of rows accumulated since the last flush.
func (st *Stripe) NumRows() int64 { return st.numRows }

// Offset returns this stripe's absolute starting offset in the file.
func (st *Stripe) Offset() uint64 { return st.offset }

// EstimatedSize returns the column tree's current estimated encoded size,
// used by the file assembler to decide when to roll the stripe.
func (st *Stripe) EstimatedSize() int { return st.root.EstimatedSize() }

// WriteBatch advances the accumulated row count by n and verifies every
// column in the tree received exactly that many values this stripe
// (spec.md §4.6: "write_batch(n) advances the row count and calls
// verify_row_count").
func (st *Stripe) WriteBatch(n int64) {
	st.numRows += n
	st.root.VerifyRowCount(st.numRows)
}

// Flush implements spec.md §4.6 steps 1-7: if the stripe is empty it is a
// no-op (nil, nil); otherwise it writes the index and data streams and the
// stripe footer through sink, returning a StripeInformation describing the
// emitted regions and a StripeStatistics snapshot of this stripe's
// per-column stats, then resets the column tree so the Stripe can be
// reused for the next one.
func (st *Stripe) Flush(sink *ioutil.CountingWriter) (*pb.StripeInformation, *pb.StripeStatistics) {
	if st.numRows == 0 {
		return nil, nil
	}

	startOffset := st.offset
	before := sink.Pos()

	var infos []column.StreamInfo
	st.root.WriteIndexStreams(sink, &infos)
	afterIndex := sink.Pos()

	// Snapshot statistics only after WriteIndexStreams has finalized every
	// column's partial last row-group into its stripe statistics.
	var colStats []*pb.ColumnStatistics
	st.root.Statistics(&colStats)

	st.root.WriteDataStreams(sink, &infos)
	afterData := sink.Pos()

	footerLength := st.writeFooter(sink, infos)
	afterFooter := sink.Pos()

	indexLength := uint64(afterIndex - before)
	dataLength := uint64(afterData - afterIndex)

	numRows := uint64(st.numRows)
	info := &pb.StripeInformation{
		Offset:       &startOffset,
		IndexLength:  &indexLength,
		DataLength:   &dataLength,
		FooterLength: &footerLength,
		NumberOfRows: &numRows,
	}
	stats := &pb.StripeStatistics{ColStats: colStats}

	st.offset = uint64(afterFooter)
	st.numRows = 0
	st.root.Reset()

	return info, stats
}

// writeFooter marshals and emits the StripeFooter message through a fresh
// compression stream, returning its encoded length.
func (st *Stripe) writeFooter(sink *ioutil.CountingWriter, infos []column.StreamInfo) uint64 {
	footer := &pb.StripeFooter{Streams: toStreamProtos(infos)}
	st.root.ColumnEncodings(&footer.Columns)

	data, err := proto.Marshal(footer)
	if err != nil {
		errs.NewInternalError(err)
	}

	stream, err := compress.NewStream(st.kind, st.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	if _, err := stream.Write(data); err != nil {
		errs.NewInternalError(err)
	}

	before := sink.Pos()
	if _, err := stream.Finish(sink); err != nil {
		panic(err)
	}
	return uint64(sink.Pos() - before)
}

func toStreamProtos(infos []column.StreamInfo) []*pb.Stream {
	out := make([]*pb.Stream, len(infos))
	for i, info := range infos {
		kind := info.Kind
		col := info.Column
		length := info.Length
		out[i] = &pb.Stream{Kind: &kind, Column: &col, Length: &length}
	}
	return out
}
