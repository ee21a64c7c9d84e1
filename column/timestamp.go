package column

import (
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// epoch2015Seconds is 2015-01-01T00:00:00Z expressed as seconds since the
// UNIX epoch; ORC's TIMESTAMP DATA stream stores seconds relative to this
// base (spec.md §3, §4.4).
const epoch2015Seconds = 1420070400

// TimestampWriter backs Timestamp columns: a signed int RLE v1 DATA stream
// of seconds-since-2015, an unsigned int RLE v1 SECONDARY stream of
// packed nanoseconds, and Timestamp statistics in epoch milliseconds.
type TimestampWriter struct {
	base

	dataStream *compress.Stream
	data       *rle.IntEncoder

	nanosStream *compress.Stream
	nanos       *rle.IntEncoder

	rowGroupStats statistics.Timestamp
	stripeStats   statistics.Timestamp
}

func NewTimestampWriter(id int, kind compress.Kind, blockSize int, stride int64) *TimestampWriter {
	w := &TimestampWriter{base: newBase(id, kind, blockSize, stride)}
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *TimestampWriter) positions() []uint64 {
	positions := append(w.presentPositions(), w.data.Position()...)
	return append(positions, w.nanos.Position()...)
}

func (w *TimestampWriter) resetStreams() {
	dataStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = dataStream
	w.data = rle.NewIntEncoder(dataStream, true)

	nanosStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.nanosStream = nanosStream
	w.nanos = rle.NewIntEncoder(nanosStream, false)
}

// WriteValue appends a non-null timestamp given as UNIX seconds and a
// nanosecond-of-second remainder (0..999999999).
func (w *TimestampWriter) WriteValue(unixSeconds int64, nanos int32) {
	w.observe(true)
	w.data.Write(unixSeconds - epoch2015Seconds)
	w.nanos.Write(int64(packNanos(nanos)))
	millis := unixSeconds*1000 + int64(nanos)/1_000_000
	w.rowGroupStats.Update(millis)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *TimestampWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *TimestampWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := timestampStatsProto(w.rowGroupStats)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Timestamp{}
	return stats
}

func (w *TimestampWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *TimestampWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *TimestampWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	w.data.Finish()
	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})

	w.nanos.Finish()
	n, err = w.nanosStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_SECONDARY, Column: uint32(w.id), Length: uint64(n)})
}

func (w *TimestampWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *TimestampWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, timestampStatsProto(w.stripeStats))
}

func (w *TimestampWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize() + w.nanosStream.EstimatedSize()
}

func (w *TimestampWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Timestamp{}
	w.stripeStats = statistics.Timestamp{}
}

func timestampStatsProto(s statistics.Timestamp) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	if s.HasMinMax {
		cs.TimestampStatistics = &pb.TimestampStatistics{Minimum: &s.MinMillis, Maximum: &s.MaxMillis}
	}
	return cs
}

// packNanos implements spec.md §3's nanosecond packing: strip trailing
// base-10 zeros in fixed cascading chunks (divide by 100, then
// conditionally by 10000, 100, and 10), accumulating a non-uniform
// trailing-zero counter that still fits the low 3 bits (max 7).
func packNanos(n int32) uint64 {
	var trailingZeros uint64
	nanos := uint64(n)

	if nanos != 0 && nanos%100 == 0 {
		trailingZeros = 1
		nanos /= 100
		if nanos%10000 == 0 {
			trailingZeros += 4
			nanos /= 10000
		}
		if nanos%100 == 0 {
			trailingZeros += 2
			nanos /= 100
		}
		if nanos%10 == 0 {
			trailingZeros += 1
			nanos /= 10
		}
	}

	return nanos<<3 | trailingZeros
}

// unpackNanos reverses packNanos: the low 3 bits count how many extra
// factors of 10 to reapply (zeros+1 multiplications, not zeros), matching
// the encoder's cascading chunks collapsing to a single counter.
func unpackNanos(packed uint64) int32 {
	trailingZeros := packed & 0x7
	n := packed >> 3
	if trailingZeros != 0 {
		for i := uint64(0); i <= trailingZeros; i++ {
			n *= 10
		}
	}
	return int32(n)
}
