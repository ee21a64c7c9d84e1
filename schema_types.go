package orc

import (
	"github.com/arloliu/orc/pb"
	"github.com/arloliu/orc/schema"
)

// schemaToTypes walks s by the same pre-order DFS schema.Assign uses to
// number columns, producing one *pb.Type per column indexed by column id —
// the Footer.Types list spec.md §4.7 step 4 requires.
func schemaToTypes(s *schema.Schema) []*pb.Type {
	var types []*pb.Type

	var walk func(n *schema.Schema)
	walk = func(n *schema.Schema) {
		kind := categoryToTypeKind(n.Category)
		t := &pb.Type{Kind: &kind}

		switch n.Category {
		case schema.Struct:
			for _, f := range n.Fields {
				t.Subtypes = append(t.Subtypes, uint32(f.Type.ColumnID))
				t.FieldNames = append(t.FieldNames, f.Name)
			}
		case schema.List:
			t.Subtypes = []uint32{uint32(n.Element.ColumnID)}
		case schema.Map:
			t.Subtypes = []uint32{uint32(n.Key.ColumnID), uint32(n.Value.ColumnID)}
		case schema.Union:
			for _, v := range n.Variants {
				t.Subtypes = append(t.Subtypes, uint32(v.ColumnID))
			}
		case schema.Decimal:
			precision, scale := uint32(n.Precision), uint32(n.Scale)
			t.Precision, t.Scale = &precision, &scale
		case schema.Char, schema.VarChar:
			maxLength := uint32(n.MaxLength)
			t.MaximumLength = &maxLength
		}

		for len(types) <= n.ColumnID {
			types = append(types, nil)
		}
		types[n.ColumnID] = t

		switch n.Category {
		case schema.Struct:
			for _, f := range n.Fields {
				walk(f.Type)
			}
		case schema.List:
			walk(n.Element)
		case schema.Map:
			walk(n.Key)
			walk(n.Value)
		case schema.Union:
			for _, v := range n.Variants {
				walk(v)
			}
		}
	}
	walk(s)

	return types
}

func categoryToTypeKind(c schema.Category) pb.Type_Kind {
	switch c {
	case schema.Boolean:
		return pb.Type_BOOLEAN
	case schema.Short:
		return pb.Type_SHORT
	case schema.Int:
		return pb.Type_INT
	case schema.Long:
		return pb.Type_LONG
	case schema.Float:
		return pb.Type_FLOAT
	case schema.Double:
		return pb.Type_DOUBLE
	case schema.Date:
		return pb.Type_DATE
	case schema.Timestamp:
		return pb.Type_TIMESTAMP
	case schema.Decimal:
		return pb.Type_DECIMAL
	case schema.String:
		return pb.Type_STRING
	case schema.Char:
		return pb.Type_CHAR
	case schema.VarChar:
		return pb.Type_VARCHAR
	case schema.Binary:
		return pb.Type_BINARY
	case schema.Struct:
		return pb.Type_STRUCT
	case schema.List:
		return pb.Type_LIST
	case schema.Map:
		return pb.Type_MAP
	case schema.Union:
		return pb.Type_UNION
	default:
		panic("orc: unknown schema category")
	}
}
