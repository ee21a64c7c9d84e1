package column

import (
	"fmt"
	"io"

	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/decimal128"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/rle"
	"github.com/arloliu/orc/statistics"
)

// DecimalWriter backs Decimal(precision, scale) columns: a signed zig-zag
// varint DATA stream of unscaled i128 values, and a SECONDARY stream that
// is a signed int RLE v1 constant run equal to the column's scale, written
// once per non-null value (spec.md §4.4, §3's "Decimal scale is written
// once per non-null as a constant SECONDARY value to satisfy ORC v1").
type DecimalWriter struct {
	base

	precision, scale int
	maxUnscaled      decimal128.Decimal128 // 10^precision - 1, for the ValueContract range check

	dataStream *compress.Stream

	secondaryStream *compress.Stream
	secondary       *rle.IntEncoder

	rowGroupStats statistics.Decimal
	stripeStats   statistics.Decimal
}

func NewDecimalWriter(id int, kind compress.Kind, blockSize int, stride int64, precision, scale int) *DecimalWriter {
	w := &DecimalWriter{base: newBase(id, kind, blockSize, stride), precision: precision, scale: scale}
	w.maxUnscaled = pow10Minus1(precision)
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	return w
}

func (w *DecimalWriter) positions() []uint64 {
	positions := append(w.presentPositions(), w.dataStream.Position().Ints()...)
	return append(positions, w.secondary.Position()...)
}

// pow10Minus1 returns 10^n - 1 as a Decimal128, the largest unscaled
// magnitude a DECIMAL(n, _) column may hold.
func pow10Minus1(n int) decimal128.Decimal128 {
	v := decimal128.FromInt64(1)
	ten := decimal128.FromInt64(10)
	for i := 0; i < n; i++ {
		v = mulSmall(v, ten)
	}
	return sub1(v)
}

func mulSmall(a, b decimal128.Decimal128) decimal128.Decimal128 {
	// Only ever called with b == 10, so repeated addition is simplest and
	// avoids adding a general 128-bit multiply to decimal128 for one caller.
	sum := decimal128.Zero
	for i := 0; i < 10; i++ {
		var overflow bool
		sum, overflow = sum.Add(a)
		if overflow {
			return sum
		}
	}
	return sum
}

func sub1(v decimal128.Decimal128) decimal128.Decimal128 {
	sum, _ := v.Add(decimal128.FromInt64(-1))
	return sum
}

func (w *DecimalWriter) resetStreams() {
	dataStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.dataStream = dataStream

	secStream, err := compress.NewStream(w.kind, w.blockSize)
	if err != nil {
		errs.NewInternalError(err)
	}
	w.secondaryStream = secStream
	w.secondary = rle.NewIntEncoder(secStream, true)
}

// WriteValue appends a non-null unscaled decimal value. Panics with a
// ContractError if the magnitude exceeds the column's declared precision
// (spec.md §7's "decimal value too large for declared precision").
func (w *DecimalWriter) WriteValue(v decimal128.Decimal128) {
	mag := v
	if v.IsNeg() {
		mag = v.Neg()
	}
	if mag.Cmp(w.maxUnscaled) > 0 {
		errs.NewContractError(fmt.Errorf("%w: precision %d", errs.ErrDecimalOutOfRange, w.precision))
	}

	w.observe(true)
	var buf [24]byte
	w.dataStream.Write(v.AppendVarint(buf[:0]))
	w.secondary.Write(int64(w.scale))
	w.rowGroupStats.Update(v)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *DecimalWriter) WriteNull() {
	w.observe(false)
	w.rowGroupStats.Observe(false)
	w.maybeRollRowGroup(w.finalizeRowGroup)
}

func (w *DecimalWriter) finalizeRowGroup() *pb.ColumnStatistics {
	stats := decimalStatsProto(w.rowGroupStats, w.scale)
	w.stripeStats = w.stripeStats.Merge(w.rowGroupStats)
	w.rowGroupStats = statistics.Decimal{}
	return stats
}

func (w *DecimalWriter) VerifyRowCount(expected int64) { verifyCount(w.numValuesSoFar, expected) }

func (w *DecimalWriter) WriteIndexStreams(sink io.Writer, infos *[]StreamInfo) {
	w.finishPartialRowGroup(w.finalizeRowGroup)
	w.writeIndexStream(sink, infos)
}

func (w *DecimalWriter) WriteDataStreams(sink io.Writer, infos *[]StreamInfo) {
	w.writePresentDataStream(sink, infos)

	n, err := w.dataStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_DATA, Column: uint32(w.id), Length: uint64(n)})

	w.secondary.Finish()
	n, err = w.secondaryStream.Finish(sink)
	if err != nil {
		panic(err)
	}
	*infos = append(*infos, StreamInfo{Kind: pb.Stream_SECONDARY, Column: uint32(w.id), Length: uint64(n)})
}

func (w *DecimalWriter) ColumnEncodings(out *[]*pb.ColumnEncoding) {
	kind := pb.ColumnEncoding_DIRECT
	*out = append(*out, &pb.ColumnEncoding{Kind: &kind})
}

func (w *DecimalWriter) Statistics(out *[]*pb.ColumnStatistics) {
	*out = append(*out, decimalStatsProto(w.stripeStats, w.scale))
}

func (w *DecimalWriter) EstimatedSize() int {
	return w.estimatedPresentSize() + w.dataStream.EstimatedSize() + w.secondaryStream.EstimatedSize()
}

func (w *DecimalWriter) Reset() {
	w.base.reset()
	w.resetStreams()
	w.setPositionRecorder(w.positions)
	w.rowGroupStats = statistics.Decimal{}
	w.stripeStats = statistics.Decimal{}
}

func decimalStatsProto(s statistics.Decimal, scale int) *pb.ColumnStatistics {
	n := uint64(s.NumValues)
	cs := &pb.ColumnStatistics{NumberOfValues: &n}
	if s.HasMinMax {
		ds := &pb.DecimalStatistics{}
		minStr, maxStr := s.Min.String(scale), s.Max.String(scale)
		ds.Minimum, ds.Maximum = &minStr, &maxStr
		if s.SumValid {
			sumStr := s.Sum.String(scale)
			ds.Sum = &sumStr
		}
		cs.DecimalStatistics = ds
	}
	return cs
}
