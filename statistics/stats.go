// Package statistics implements the per-type statistics ORC tracks at
// row-group, stripe, and file granularity (spec.md §4.5). Every type embeds
// Counts and exposes an Update method for a single value plus a Merge
// method that is associative and commutative, so the same code rolls
// row-group stats up into stripe stats and stripe stats up into file stats.
package statistics

import (
	"bytes"
	"math"
	"math/bits"

	"github.com/arloliu/orc/decimal128"
)

// Counts is embedded by every statistics flavor: num_values counts every
// value including nulls, num_present counts only the non-null ones.
type Counts struct {
	NumValues int64
	NumPresent int64
}

// Observe records the presence/absence of one value.
func (c *Counts) Observe(present bool) {
	c.NumValues++
	if present {
		c.NumPresent++
	}
}

// Merge combines two Counts; the operation is associative and commutative.
func (c Counts) Merge(o Counts) Counts {
	return Counts{NumValues: c.NumValues + o.NumValues, NumPresent: c.NumPresent + o.NumPresent}
}

// Generic is used for Struct, List, Map, and Union columns, which track
// only presence counts (spec.md §4.5).
type Generic struct {
	Counts
}

func (g *Generic) Update(present bool) { g.Counts.Observe(present) }

func (g Generic) Merge(o Generic) Generic {
	return Generic{Counts: g.Counts.Merge(o.Counts)}
}

// Integer holds min/max/sum for Boolean-adjacent integral columns (Short,
// Int, Long, Date). Sum becomes permanently invalid once it overflows a
// signed 64-bit integer, matching ORC's "sum becomes None on i64 overflow"
// rule, and a once-invalid sum stays invalid through every later merge.
type Integer struct {
	Counts
	Min, Max   int64
	HasMinMax  bool
	Sum        int64
	SumValid   bool
	sumStarted bool
}

func (s *Integer) Update(v int64) {
	s.Counts.Observe(true)
	if !s.HasMinMax {
		s.Min, s.Max, s.HasMinMax = v, v, true
	} else {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	if !s.sumStarted {
		s.Sum, s.SumValid, s.sumStarted = v, true, true
		return
	}
	if !s.SumValid {
		return
	}
	sum, carry := addOverflows64(s.Sum, v)
	if carry {
		s.SumValid = false
		return
	}
	s.Sum = sum
}

func (s Integer) Merge(o Integer) Integer {
	out := Integer{Counts: s.Counts.Merge(o.Counts)}
	out.HasMinMax = s.HasMinMax || o.HasMinMax
	switch {
	case s.HasMinMax && o.HasMinMax:
		out.Min = minI64(s.Min, o.Min)
		out.Max = maxI64(s.Max, o.Max)
	case s.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
	case o.HasMinMax:
		out.Min, out.Max = o.Min, o.Max
	}

	out.sumStarted = s.sumStarted || o.sumStarted
	switch {
	case !s.sumStarted:
		out.Sum, out.SumValid = o.Sum, o.SumValid
	case !o.sumStarted:
		out.Sum, out.SumValid = s.Sum, s.SumValid
	case !s.SumValid || !o.SumValid:
		out.SumValid = false
	default:
		sum, carry := addOverflows64(s.Sum, o.Sum)
		if carry {
			out.SumValid = false
		} else {
			out.Sum, out.SumValid = sum, true
		}
	}
	return out
}

// addOverflows64 adds a and b, reporting whether the signed result
// overflowed int64.
func addOverflows64(a, b int64) (sum int64, overflow bool) {
	sum = a + b
	overflow = (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
	return sum, overflow
}

// Double holds min/max/sum for Float and Double columns. NaN values update
// num_values/num_present but never participate in min/max (spec.md §4.5,
// resolving the Open Question of whether NaN should poison the range: it is
// simply excluded).
type Double struct {
	Counts
	Min, Max  float64
	HasMinMax bool
	Sum       float64
}

func (s *Double) Update(v float64) {
	s.Counts.Observe(true)
	s.Sum += v
	if math.IsNaN(v) {
		return
	}
	if !s.HasMinMax {
		s.Min, s.Max, s.HasMinMax = v, v, true
		return
	}
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
}

func (s Double) Merge(o Double) Double {
	out := Double{Counts: s.Counts.Merge(o.Counts), Sum: s.Sum + o.Sum}
	out.HasMinMax = s.HasMinMax || o.HasMinMax
	switch {
	case s.HasMinMax && o.HasMinMax:
		out.Min = math.Min(s.Min, o.Min)
		out.Max = math.Max(s.Max, o.Max)
	case s.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
	case o.HasMinMax:
		out.Min, out.Max = o.Min, o.Max
	}
	return out
}

// Decimal holds min/max/sum for DECIMAL columns, carried as the unscaled
// 128-bit integer at the column's fixed scale.
type Decimal struct {
	Counts
	Min, Max   decimal128.Decimal128
	HasMinMax  bool
	Sum        decimal128.Decimal128
	SumValid   bool
	sumStarted bool
}

func (s *Decimal) Update(v decimal128.Decimal128) {
	s.Counts.Observe(true)
	if !s.HasMinMax {
		s.Min, s.Max, s.HasMinMax = v, v, true
	} else {
		if v.Cmp(s.Min) < 0 {
			s.Min = v
		}
		if v.Cmp(s.Max) > 0 {
			s.Max = v
		}
	}

	if !s.sumStarted {
		s.Sum, s.SumValid, s.sumStarted = v, true, true
		return
	}
	if !s.SumValid {
		return
	}
	sum, overflow := s.Sum.Add(v)
	if overflow {
		s.SumValid = false
		return
	}
	s.Sum = sum
}

func (s Decimal) Merge(o Decimal) Decimal {
	out := Decimal{Counts: s.Counts.Merge(o.Counts)}
	out.HasMinMax = s.HasMinMax || o.HasMinMax
	switch {
	case s.HasMinMax && o.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
		if o.Min.Cmp(out.Min) < 0 {
			out.Min = o.Min
		}
		if o.Max.Cmp(out.Max) > 0 {
			out.Max = o.Max
		}
	case s.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
	case o.HasMinMax:
		out.Min, out.Max = o.Min, o.Max
	}

	out.sumStarted = s.sumStarted || o.sumStarted
	switch {
	case !s.sumStarted:
		out.Sum, out.SumValid = o.Sum, o.SumValid
	case !o.sumStarted:
		out.Sum, out.SumValid = s.Sum, s.SumValid
	case !s.SumValid || !o.SumValid:
		out.SumValid = false
	default:
		sum, overflow := s.Sum.Add(o.Sum)
		if overflow {
			out.SumValid = false
		} else {
			out.Sum, out.SumValid = sum, true
		}
	}
	return out
}

// String holds lexicographic min/max and total UTF-8 byte length for
// String, Char, and VarChar columns.
type String struct {
	Counts
	Min, Max  []byte
	HasMinMax bool
	SumLength int64
}

func (s *String) Update(v []byte) {
	s.Counts.Observe(true)
	s.SumLength += int64(len(v))
	if !s.HasMinMax {
		s.Min = append([]byte(nil), v...)
		s.Max = append([]byte(nil), v...)
		s.HasMinMax = true
		return
	}
	if bytes.Compare(v, s.Min) < 0 {
		s.Min = append([]byte(nil), v...)
	}
	if bytes.Compare(v, s.Max) > 0 {
		s.Max = append([]byte(nil), v...)
	}
}

func (s String) Merge(o String) String {
	out := String{Counts: s.Counts.Merge(o.Counts), SumLength: s.SumLength + o.SumLength}
	out.HasMinMax = s.HasMinMax || o.HasMinMax
	switch {
	case s.HasMinMax && o.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
		if bytes.Compare(o.Min, out.Min) < 0 {
			out.Min = o.Min
		}
		if bytes.Compare(o.Max, out.Max) > 0 {
			out.Max = o.Max
		}
	case s.HasMinMax:
		out.Min, out.Max = s.Min, s.Max
	case o.HasMinMax:
		out.Min, out.Max = o.Min, o.Max
	}
	return out
}

// Binary holds total byte length for Binary columns; ORC defines no
// min/max for raw binary (spec.md §4.5).
type Binary struct {
	Counts
	SumLength int64
}

func (s *Binary) Update(v []byte) {
	s.Counts.Observe(true)
	s.SumLength += int64(len(v))
}

func (s Binary) Merge(o Binary) Binary {
	return Binary{Counts: s.Counts.Merge(o.Counts), SumLength: s.SumLength + o.SumLength}
}

// Timestamp holds min/max in milliseconds since the UNIX epoch.
type Timestamp struct {
	Counts
	MinMillis, MaxMillis int64
	HasMinMax            bool
}

func (s *Timestamp) Update(millis int64) {
	s.Counts.Observe(true)
	if !s.HasMinMax {
		s.MinMillis, s.MaxMillis, s.HasMinMax = millis, millis, true
		return
	}
	if millis < s.MinMillis {
		s.MinMillis = millis
	}
	if millis > s.MaxMillis {
		s.MaxMillis = millis
	}
}

func (s Timestamp) Merge(o Timestamp) Timestamp {
	out := Timestamp{Counts: s.Counts.Merge(o.Counts)}
	out.HasMinMax = s.HasMinMax || o.HasMinMax
	switch {
	case s.HasMinMax && o.HasMinMax:
		out.MinMillis = minI64(s.MinMillis, o.MinMillis)
		out.MaxMillis = maxI64(s.MaxMillis, o.MaxMillis)
	case s.HasMinMax:
		out.MinMillis, out.MaxMillis = s.MinMillis, s.MaxMillis
	case o.HasMinMax:
		out.MinMillis, out.MaxMillis = o.MinMillis, o.MaxMillis
	}
	return out
}

// Boolean holds true/false counts.
type Boolean struct {
	Counts
	TrueCount, FalseCount int64
}

func (s *Boolean) Update(v bool) {
	s.Counts.Observe(true)
	if v {
		s.TrueCount++
	} else {
		s.FalseCount++
	}
}

func (s Boolean) Merge(o Boolean) Boolean {
	return Boolean{
		Counts:     s.Counts.Merge(o.Counts),
		TrueCount:  s.TrueCount + o.TrueCount,
		FalseCount: s.FalseCount + o.FalseCount,
	}
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// bitLen64 returns the number of bits needed to represent v. It is
// unexported and has no callers in this package.
func bitLen64(v uint64) int { return bits.Len64(v) }
