package orc

import (
	"github.com/arloliu/orc/decimal128"
	"github.com/arloliu/orc/errs"
	"github.com/arloliu/orc/pb"
)

// mergeAllStripeStatistics combines every stripe's per-column statistics,
// in pre-order DFS column order, into the file-level statistics list
// Footer.Statistics carries (spec.md §4.7 step 4). Each stripe's ColStats
// slice has one entry per column, in the same order, so the merge is
// purely column-index-wise.
func mergeAllStripeStatistics(stripeStats []*pb.StripeStatistics) []*pb.ColumnStatistics {
	if len(stripeStats) == 0 {
		return nil
	}

	out := make([]*pb.ColumnStatistics, len(stripeStats[0].ColStats))
	for _, ss := range stripeStats {
		for i, cs := range ss.ColStats {
			out[i] = mergeColumnStatistics(out[i], cs)
		}
	}
	return out
}

// mergeColumnStatistics combines two ColumnStatistics for the same column
// from different stripes. a may be nil (the zero value for the running
// merge); b is never nil. Exactly one typed sub-message is populated per
// column, consistently across every stripe, because it is determined
// solely by the column's schema category.
func mergeColumnStatistics(a, b *pb.ColumnStatistics) *pb.ColumnStatistics {
	if a == nil {
		return b
	}

	n := numberOfValues(a) + numberOfValues(b)
	out := &pb.ColumnStatistics{NumberOfValues: &n}

	switch {
	case a.IntStatistics != nil || b.IntStatistics != nil:
		out.IntStatistics = mergeIntegerStats(a.IntStatistics, b.IntStatistics)
	case a.DoubleStatistics != nil || b.DoubleStatistics != nil:
		out.DoubleStatistics = mergeDoubleStats(a.DoubleStatistics, b.DoubleStatistics)
	case a.StringStatistics != nil || b.StringStatistics != nil:
		out.StringStatistics = mergeStringStats(a.StringStatistics, b.StringStatistics)
	case a.BucketStatistics != nil || b.BucketStatistics != nil:
		out.BucketStatistics = mergeBucketStats(a.BucketStatistics, b.BucketStatistics)
	case a.DecimalStatistics != nil || b.DecimalStatistics != nil:
		out.DecimalStatistics = mergeDecimalStats(a.DecimalStatistics, b.DecimalStatistics)
	case a.TimestampStatistics != nil || b.TimestampStatistics != nil:
		out.TimestampStatistics = mergeTimestampStats(a.TimestampStatistics, b.TimestampStatistics)
	case a.BinaryStatistics != nil || b.BinaryStatistics != nil:
		out.BinaryStatistics = mergeBinaryStats(a.BinaryStatistics, b.BinaryStatistics)
	}

	return out
}

func numberOfValues(cs *pb.ColumnStatistics) uint64 {
	if cs == nil || cs.NumberOfValues == nil {
		return 0
	}
	return *cs.NumberOfValues
}

func mergeIntegerStats(a, b *pb.IntegerStatistics) *pb.IntegerStatistics {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := &pb.IntegerStatistics{}
	out.Minimum, out.Maximum = mergeMinMaxI64(a.Minimum, a.Maximum, b.Minimum, b.Maximum)
	out.Sum = mergeSumI64(a.Sum, b.Sum)
	return out
}

func mergeDoubleStats(a, b *pb.DoubleStatistics) *pb.DoubleStatistics {
	out := &pb.DoubleStatistics{}
	out.Minimum, out.Maximum = mergeMinMaxF64(a, b)
	sum := sumF64(a) + sumF64(b)
	out.Sum = &sum
	return out
}

func mergeStringStats(a, b *pb.StringStatistics) *pb.StringStatistics {
	out := &pb.StringStatistics{}
	switch {
	case a.Minimum == nil && a.Maximum == nil:
		out.Minimum, out.Maximum = b.Minimum, b.Maximum
	case b.Minimum == nil && b.Maximum == nil:
		out.Minimum, out.Maximum = a.Minimum, a.Maximum
	default:
		min, max := *a.Minimum, *a.Maximum
		if *b.Minimum < min {
			min = *b.Minimum
		}
		if *b.Maximum > max {
			max = *b.Maximum
		}
		out.Minimum, out.Maximum = &min, &max
	}
	sum := sumI64(a.Sum) + sumI64(b.Sum)
	out.Sum = &sum
	return out
}

func mergeBucketStats(a, b *pb.BucketStatistics) *pb.BucketStatistics {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	counts := make([]uint64, len(a.Count))
	for i := range counts {
		counts[i] = a.Count[i] + b.Count[i]
	}
	return &pb.BucketStatistics{Count: counts}
}

// mergeDecimalStats reconstructs Decimal128 values from the wire strings so
// the min/max/sum comparisons happen numerically, then re-renders them at
// the same scale (spec.md §4.5's decimal merge rule). scale is recovered
// from the number of fractional digits each string already carries, so no
// caller needs to thread the column's declared scale through here.
func mergeDecimalStats(a, b *pb.DecimalStatistics) *pb.DecimalStatistics {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	out := &pb.DecimalStatistics{}

	switch {
	case a.Minimum == nil:
		out.Minimum, out.Maximum = b.Minimum, b.Maximum
	case b.Minimum == nil:
		out.Minimum, out.Maximum = a.Minimum, a.Maximum
	default:
		scale := decimalScale(*a.Minimum)
		aMin, err := decimal128.ParseUnscaled(*a.Minimum, scale)
		if err != nil {
			errs.NewInternalError(err)
		}
		aMax, err := decimal128.ParseUnscaled(*a.Maximum, scale)
		if err != nil {
			errs.NewInternalError(err)
		}
		bMin, err := decimal128.ParseUnscaled(*b.Minimum, scale)
		if err != nil {
			errs.NewInternalError(err)
		}
		bMax, err := decimal128.ParseUnscaled(*b.Maximum, scale)
		if err != nil {
			errs.NewInternalError(err)
		}

		min, max := aMin, aMax
		if bMin.Cmp(min) < 0 {
			min = bMin
		}
		if bMax.Cmp(max) > 0 {
			max = bMax
		}
		minStr, maxStr := min.String(scale), max.String(scale)
		out.Minimum, out.Maximum = &minStr, &maxStr
	}

	if a.Sum == nil || b.Sum == nil {
		return out
	}
	scale := decimalScale(*a.Sum)
	aSum, errA := decimal128.ParseUnscaled(*a.Sum, scale)
	bSum, errB := decimal128.ParseUnscaled(*b.Sum, scale)
	if errA != nil || errB != nil {
		return out
	}
	sum, overflow := aSum.Add(bSum)
	if overflow {
		return out
	}
	sumStr := sum.String(scale)
	out.Sum = &sumStr
	return out
}

// decimalScale recovers the scale a Decimal128.String(scale) rendering
// used, by counting digits after the decimal point (0 if there is none).
func decimalScale(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}

func mergeTimestampStats(a, b *pb.TimestampStatistics) *pb.TimestampStatistics {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := &pb.TimestampStatistics{}
	out.Minimum, out.Maximum = mergeMinMaxI64(a.Minimum, a.Maximum, b.Minimum, b.Maximum)
	return out
}

func mergeBinaryStats(a, b *pb.BinaryStatistics) *pb.BinaryStatistics {
	sum := sumI64(a.Sum) + sumI64(b.Sum)
	return &pb.BinaryStatistics{Sum: &sum}
}

func mergeMinMaxI64(aMin, aMax, bMin, bMax *int64) (*int64, *int64) {
	switch {
	case aMin == nil:
		return bMin, bMax
	case bMin == nil:
		return aMin, aMax
	default:
		min, max := *aMin, *aMax
		if *bMin < min {
			min = *bMin
		}
		if *bMax > max {
			max = *bMax
		}
		return &min, &max
	}
}

func mergeSumI64(a, b *int64) *int64 {
	if a == nil || b == nil {
		return nil
	}
	sum := *a + *b
	overflowed := (*a > 0 && *b > 0 && sum < 0) || (*a < 0 && *b < 0 && sum >= 0)
	if overflowed {
		return nil
	}
	return &sum
}

func sumI64(s *int64) int64 {
	if s == nil {
		return 0
	}
	return *s
}

func sumF64(s *pb.DoubleStatistics) float64 {
	if s == nil || s.Sum == nil {
		return 0
	}
	return *s.Sum
}

func mergeMinMaxF64(a, b *pb.DoubleStatistics) (*float64, *float64) {
	switch {
	case a == nil || a.Minimum == nil:
		if b == nil {
			return nil, nil
		}
		return b.Minimum, b.Maximum
	case b == nil || b.Minimum == nil:
		return a.Minimum, a.Maximum
	default:
		min, max := *a.Minimum, *a.Maximum
		if *b.Minimum < min {
			min = *b.Minimum
		}
		if *b.Maximum > max {
			max = *b.Maximum
		}
		return &min, &max
	}
}
