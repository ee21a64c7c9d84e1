package column

import (
	"testing"

	"github.com/arloliu/orc/compress"
	"github.com/stretchr/testify/require"
)

func TestListWriter_ReconcilesElementCountAgainstSumOfLengths(t *testing.T) {
	elem := NewIntegerWriter(2, compress.None, 0, 0)
	l := NewListWriter(1, compress.None, 0, 0, elem)

	l.WriteValue(2)
	elem.WriteValue(1)
	elem.WriteValue(2)
	l.WriteValue(3)
	elem.WriteValue(3)
	elem.WriteValue(4)
	elem.WriteValue(5)

	l.VerifyRowCount(2)
}

func TestListWriter_MismatchedSumPanics(t *testing.T) {
	elem := NewIntegerWriter(2, compress.None, 0, 0)
	l := NewListWriter(1, compress.None, 0, 0, elem)

	l.WriteValue(2)
	elem.WriteValue(1) // only one element written, but length said 2

	require.Panics(t, func() { l.VerifyRowCount(1) })
}
