package column

import (
	"github.com/arloliu/orc/compress"
	"github.com/arloliu/orc/schema"
)

// Build constructs the column writer tree that mirrors s, one Writer per
// schema node, using the column ids schema.Assign already numbered (spec.md
// §3, §9's "children can be created bottom-up with a mutable id counter
// passed by reference" — here the counter has already run, so Build just
// reads each node's ColumnID back).
func Build(s *schema.Schema, kind compress.Kind, blockSize int, stride int64) Writer {
	switch s.Category {
	case schema.Boolean:
		return NewBooleanWriter(s.ColumnID, kind, blockSize, stride)
	case schema.Short, schema.Int, schema.Long, schema.Date:
		return NewIntegerWriter(s.ColumnID, kind, blockSize, stride)
	case schema.Float:
		return NewFloatWriter(s.ColumnID, kind, blockSize, stride, 32)
	case schema.Double:
		return NewFloatWriter(s.ColumnID, kind, blockSize, stride, 64)
	case schema.Timestamp:
		return NewTimestampWriter(s.ColumnID, kind, blockSize, stride)
	case schema.Decimal:
		return NewDecimalWriter(s.ColumnID, kind, blockSize, stride, s.Precision, s.Scale)
	case schema.String, schema.Char, schema.VarChar:
		return NewStringWriter(s.ColumnID, kind, blockSize, stride)
	case schema.Binary:
		return NewBinaryWriter(s.ColumnID, kind, blockSize, stride)
	case schema.Struct:
		children := make([]Writer, len(s.Fields))
		for i, f := range s.Fields {
			children[i] = Build(f.Type, kind, blockSize, stride)
		}
		return NewStructWriter(s.ColumnID, kind, blockSize, stride, children)
	case schema.List:
		return NewListWriter(s.ColumnID, kind, blockSize, stride, Build(s.Element, kind, blockSize, stride))
	case schema.Map:
		key := Build(s.Key, kind, blockSize, stride)
		value := Build(s.Value, kind, blockSize, stride)
		return NewMapWriter(s.ColumnID, kind, blockSize, stride, key, value)
	case schema.Union:
		variants := make([]Writer, len(s.Variants))
		for i, v := range s.Variants {
			variants[i] = Build(v, kind, blockSize, stride)
		}
		return NewUnionWriter(s.ColumnID, kind, blockSize, stride, variants)
	default:
		panic("orc: unknown schema category")
	}
}
