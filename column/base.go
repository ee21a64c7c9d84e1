// Package column implements the per-type column writer tree that mirrors a
// schema (spec.md §4.4): one Writer per schema node, each owning a PRESENT
// stream (elided when the stripe has no nulls), zero or more typed data
// streams, rolling row-group statistics, and the row-index entries those
// statistics get rolled into.
package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/gogo/protobuf/proto"
)

// StreamInfo records one emitted stream's placement, in the emission order
// the stripe footer requires (spec.md §4.4, §4.6 step 5).
type StreamInfo struct {
	Kind   pb.Stream_Kind
	Column uint32
	Length uint64
}

// Writer is the uniform contract every column-tree node satisfies,
// regardless of its schema category (spec.md §4.4's "common contract for
// every column writer").
type Writer interface {
	ColumnID() int
	WriteNull()
	VerifyRowCount(expected int64)
	WriteIndexStreams(sink io.Writer, infos *[]StreamInfo)
	WriteDataStreams(sink io.Writer, infos *[]StreamInfo)
	ColumnEncodings(out *[]*pb.ColumnEncoding)
	Statistics(out *[]*pb.ColumnStatistics)
	EstimatedSize() int
	Reset()
}

// rowGroupFinalizer captures how a concrete writer turns its current
// rolling row-group state into a statistics snapshot, rolling it into the
// stripe statistics and resetting the row-group accumulator. Returning
// this via a closure lets base's rollover bookkeeping stay independent of
// which concrete statistics type (Integer, String, ...) the caller tracks.
type rowGroupFinalizer func() (stats *pb.ColumnStatistics)

// positionRecorder snapshots a concrete writer's current encoder seek
// positions (PRESENT plus whatever typed streams it owns). It must be
// callable at any time without mutating encoder state, since base calls it
// both once up front and again after every row-group rollover.
type positionRecorder func() []uint64

// base is embedded by every concrete column writer; it owns the mechanics
// common to all of them (spec.md §4.4): the optional PRESENT stream with
// its lazy-creation-on-first-null elision rule, and row-group rollover.
type base struct {
	id             int
	kind           compress.Kind
	blockSize      int
	rowIndexStride int64

	presentStream *compress.Stream
	present       *rle.BoolEncoder
	hasNulls      bool

	numValuesSoFar int64 // values (null + non-null) since the last stripe reset
	numInRowGroup  int64 // values since the last row-group boundary

	rowIndexEntries []*pb.RowIndexEntry

	positionFn     positionRecorder
	startPositions []uint64 // positions snapshotted before the current row-group's first value
}

func newBase(id int, kind compress.Kind, blockSize int, stride int64) base {
	return base{id: id, kind: kind, blockSize: blockSize, rowIndexStride: stride}
}

func (b *base) ColumnID() int { return b.id }

// observe must be called exactly once per value (null or non-null) written
// to this column, before any type-specific encoding of a non-null value.
func (b *base) observe(present bool) {
	if !present {
		b.ensurePresent()
	}
	if b.present != nil {
		b.present.WriteBool(present)
	}
	if !present {
		b.hasNulls = true
	}
	b.numValuesSoFar++
}

// ensurePresent lazily creates the PRESENT stream on the first null this
// stripe, backfilling "true" for every value already seen so the stream
// stays aligned with the column's full history (spec.md §4.4's
// PRESENT-stream elision rule).
func (b *base) ensurePresent() {
	if b.present != nil {
		return
	}
	stream, err := compress.NewStream(b.kind, b.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	b.presentStream = stream
	b.present = rle.NewBoolEncoder(stream)
	for i := int64(0); i < b.numValuesSoFar; i++ {
		b.present.WriteBool(true)
	}
}

// presentPositions returns the PRESENT stream's position tuple, or nil if
// the stream doesn't exist — row-index positions skip PRESENT exactly when
// the stream itself is elided.
func (b *base) presentPositions() []uint64 {
	if b.present == nil {
		return nil
	}
	return b.present.Position()
}

// setPositionRecorder installs fn as this column's position snapshotter
// and immediately captures the starting position of the row-group about to
// begin (construction, or the first group of a fresh stripe after reset).
// Concrete writers call this once their streams exist: in their
// constructor and again in Reset after resetStreams.
func (b *base) setPositionRecorder(fn positionRecorder) {
	b.positionFn = fn
	b.startPositions = fn()
}

// maybeRollRowGroup must be called after every observe(); it finalizes the
// rolling row-group once its value count hits the configured stride. With
// row indexes disabled (stride <= 0) no index entry is recorded, but every
// value's statistics are rolled straight into the stripe statistics.
func (b *base) maybeRollRowGroup(finalize rowGroupFinalizer) {
	if b.rowIndexStride <= 0 {
		finalize()
		return
	}
	b.numInRowGroup++
	if b.numInRowGroup < b.rowIndexStride {
		return
	}
	b.finalizeRowGroup(finalize)
}

// finalizeRowGroup closes out the current row-group: the RowIndexEntry
// pairs the position snapshotted *before* this group's first value (per
// spec.md §9) with the statistics accumulated *through* its last value,
// then immediately re-snapshots the position for the next group, before
// any of its values have been written.
func (b *base) finalizeRowGroup(finalize rowGroupFinalizer) {
	stats := finalize()
	b.rowIndexEntries = append(b.rowIndexEntries, &pb.RowIndexEntry{Positions: b.startPositions, Statistics: stats})
	b.numInRowGroup = 0
	b.startPositions = b.positionFn()
}

// finishPartialRowGroup finalizes a non-empty but sub-stride row-group at
// stripe-flush time (spec.md §4.4: "At stripe finish, any partial row-group
// is finalized too").
func (b *base) finishPartialRowGroup(finalize rowGroupFinalizer) {
	if b.rowIndexStride <= 0 || b.numInRowGroup == 0 {
		return
	}
	b.finalizeRowGroup(finalize)
}

// writeIndexStream encodes the accumulated RowIndex through a fresh
// compression stream and records it as a ROW_INDEX StreamInfo, per
// spec.md §4.4.
func (b *base) writeIndexStream(sink io.Writer, infos *[]StreamInfo) {
	if b.rowIndexStride <= 0 || len(b.rowIndexEntries) == 0 {
		return
	}
	data, err := proto.Marshal(&pb.RowIndex{Entry: b.rowIndexEntries})
	if err != nil {
		errs.NewInternalError(err)
	}
	stream, err := compress.NewStream(b.kind, b.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	if _, err := stream.Write(data); err != nil {
		errs.NewInternalError(err)
	}
	n, err := stream.Finish(sink)
	if err != nil {
		panic(err) // io failure: propagate, not an internal invariant
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_ROW_INDEX, Column: uint32(b.id), Length: uint64(n)})
}

// writePresentDataStream emits the PRESENT stream, if one exists, as the
// first data stream (spec.md §4.4: "data streams emitted in this order,
// after PRESENT if present").
func (b *base) writePresentDataStream(sink io.Writer, infos *[]StreamInfo) {
	if b.present == nil {
		return
	}
	b.present.Finish()
	n, err := b.presentStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_PRESENT, Column: uint32(b.id), Length: uint64(n)})
}

func (b *base) estimatedPresentSize() int {
	if b.presentStream == nil {
		return 0
	}
	return b.presentStream.EstimatedSize()
}

// reset clears per-stripe state so the writer can start a fresh stripe
// (spec.md §4.6 step 7).
func (b *base) reset() {
	b.presentStream = nil
	b.present = nil
	b.hasNulls = false
	b.numValuesSoFar = 0
	b.numInRowGroup = 0
	b.rowIndexEntries = nil
	b.positionFn = nil
	b.startPositions = nil
}

// verifyCount panics with a ContractError if the number of values
// observed this stripe doesn't match expected — used by every concrete
// writer's VerifyRowCount.
func verifyCount(got, expected int64) {
	if got != expected {
		errs.NewContractError(errs.ErrBatchLengthMismatch)
	}
}
