package statistics

import (
	"math"
	"testing"

	"github.com/arloliu/orc/decimal128"
	"github.com/stretchr/testify/require"
)

func TestInteger_MinMaxSum(t *testing.T) {
	var s Integer
	for _, v := range []int64{5, -2, 9, 0} {
		s.Update(v)
	}
	require.Equal(t, int64(-2), s.Min)
	require.Equal(t, int64(9), s.Max)
	require.Equal(t, int64(12), s.Sum)
	require.True(t, s.SumValid)
	require.Equal(t, int64(4), s.NumPresent)
}

func TestInteger_SumOverflowStaysInvalid(t *testing.T) {
	var s Integer
	s.Update(math.MaxInt64)
	s.Update(1)
	require.False(t, s.SumValid)
	s.Update(-5) // a later, non-overflowing value must not resurrect the sum
	require.False(t, s.SumValid)
}

func TestInteger_MergeIsAssociativeOnDisjointGroups(t *testing.T) {
	var a, b, c Integer
	for _, v := range []int64{1, 2, 3} {
		a.Update(v)
	}
	for _, v := range []int64{10, -10} {
		b.Update(v)
	}
	for _, v := range []int64{100} {
		c.Update(v)
	}

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	require.Equal(t, left, right)
	require.Equal(t, int64(-10), left.Min)
	require.Equal(t, int64(100), left.Max)
	require.Equal(t, int64(106), left.Sum)
}

func TestDouble_NaNNeverUpdatesMinMax(t *testing.T) {
	var s Double
	s.Update(1.5)
	s.Update(math.NaN())
	s.Update(-3.0)

	require.Equal(t, -3.0, s.Min)
	require.Equal(t, 1.5, s.Max)
	require.Equal(t, int64(3), s.NumPresent)
	require.True(t, math.IsNaN(s.Sum))
}

func TestDecimal_MergeRollsUpMinMaxSum(t *testing.T) {
	var a, b Decimal
	a.Update(decimal128.FromInt64(1234))
	a.Update(decimal128.FromInt64(-50))
	b.Update(decimal128.FromInt64(1000))

	merged := a.Merge(b)
	require.Equal(t, 0, merged.Min.Cmp(decimal128.FromInt64(-50)))
	require.Equal(t, 0, merged.Max.Cmp(decimal128.FromInt64(1234)))
	require.True(t, merged.SumValid)
	require.Equal(t, 0, merged.Sum.Cmp(decimal128.FromInt64(2184)))
}

func TestString_LexicographicMinMax(t *testing.T) {
	var s String
	s.Update([]byte("banana"))
	s.Update([]byte("apple"))
	s.Update([]byte("cherry"))

	require.Equal(t, "apple", string(s.Min))
	require.Equal(t, "cherry", string(s.Max))
	require.Equal(t, int64(len("banana")+len("apple")+len("cherry")), s.SumLength)
}

func TestBoolean_Counts(t *testing.T) {
	var s Boolean
	s.Update(true)
	s.Update(true)
	s.Update(false)

	require.Equal(t, int64(2), s.TrueCount)
	require.Equal(t, int64(1), s.FalseCount)
}

func TestGeneric_CountsOnly(t *testing.T) {
	var s Generic
	s.Update(true)
	s.Update(false)
	require.Equal(t, int64(2), s.NumValues)
	require.Equal(t, int64(1), s.NumPresent)
}
