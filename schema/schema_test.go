package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssign_PreOrderColumnIDs(t *testing.T) {
	xs := NewList(NewLong())
	root, err := NewStruct(
		Field{Name: "a", Type: NewLong()},
		Field{Name: "xs", Type: xs},
	)
	require.NoError(t, err)

	n := Assign(root)
	require.Equal(t, 4, n)
	require.Equal(t, 0, root.ColumnID)
	require.Equal(t, 1, root.Fields[0].Type.ColumnID)
	require.Equal(t, 2, root.Fields[1].Type.ColumnID)
	require.Equal(t, 2, xs.ColumnID)
	require.Equal(t, 3, xs.Element.ColumnID)
}

func TestAssign_MapNumbersKeyThenValue(t *testing.T) {
	m := NewMap(NewString(), NewBoolean())
	root, err := NewStruct(Field{Name: "m", Type: m})
	require.NoError(t, err)

	Assign(root)
	require.Equal(t, 0, root.ColumnID)
	require.Equal(t, 1, m.ColumnID)
	require.Equal(t, 2, m.Key.ColumnID)
	require.Equal(t, 3, m.Value.ColumnID)
}

func TestAssign_UnionNumbersVariantsInOrder(t *testing.T) {
	u, err := NewUnion(NewLong(), NewString(), NewBoolean())
	require.NoError(t, err)
	root, err := NewStruct(Field{Name: "u", Type: u})
	require.NoError(t, err)

	Assign(root)
	require.Equal(t, 1, u.ColumnID)
	require.Equal(t, 2, u.Variants[0].ColumnID)
	require.Equal(t, 3, u.Variants[1].ColumnID)
	require.Equal(t, 4, u.Variants[2].ColumnID)
}

func TestNewDecimal_RejectsOutOfRange(t *testing.T) {
	_, err := NewDecimal(0, 0)
	require.Error(t, err)

	_, err = NewDecimal(10, 20)
	require.Error(t, err)

	d, err := NewDecimal(15, 2)
	require.NoError(t, err)
	require.Equal(t, 15, d.Precision)
	require.Equal(t, 2, d.Scale)
}

func TestNewStruct_RejectsDuplicateFieldNames(t *testing.T) {
	_, err := NewStruct(
		Field{Name: "a", Type: NewLong()},
		Field{Name: "a", Type: NewString()},
	)
	require.Error(t, err)
}

func TestNewStruct_RejectsEmptyFields(t *testing.T) {
	_, err := NewStruct()
	require.Error(t, err)
}

func TestNewUnion_RejectsTooManyVariants(t *testing.T) {
	variants := make([]*Schema, 257)
	for i := range variants {
		variants[i] = NewLong()
	}
	_, err := NewUnion(variants...)
	require.Error(t, err)
}
