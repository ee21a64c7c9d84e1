// Package schema defines the algebraic type a writer's column tree is built
// from (spec.md §3) and the pre-order column-id numbering ORC's streams and
// encodings are keyed on.
package schema

import (
	"fmt"

	"github.com/arloliu/orc/errs"
)

// Category enumerates the leaves and composites of the Schema algebra.
type Category uint8

const (
	Boolean Category = iota
	Short
	Int
	Long
	Float
	Double
	Date
	Timestamp
	Decimal
	String
	Char
	VarChar
	Binary
	Struct
	List
	Map
	Union
)

func (c Category) String() string {
	switch c {
	case Boolean:
		return "boolean"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Date:
		return "date"
	case Timestamp:
		return "timestamp"
	case Decimal:
		return "decimal"
	case String:
		return "string"
	case Char:
		return "char"
	case VarChar:
		return "varchar"
	case Binary:
		return "binary"
	case Struct:
		return "struct"
	case List:
		return "list"
	case Map:
		return "map"
	case Union:
		return "union"
	default:
		return "unknown"
	}
}

// Field is a named child of a Struct schema.
type Field struct {
	Name string
	Type *Schema
}

// Schema is the algebraic description of one logical value, as laid out in
// spec.md §3. Exactly one of the type-specific fields applies, selected by
// Category; composite categories (Struct, List, Map, Union) recurse through
// Fields / Element / Key+Value / Variants.
type Schema struct {
	Category Category

	// Decimal.
	Precision int
	Scale     int

	// Char / VarChar.
	MaxLength int

	// Struct.
	Fields []Field

	// List.
	Element *Schema

	// Map.
	Key   *Schema
	Value *Schema

	// Union.
	Variants []*Schema

	// ColumnID is assigned by Assign and is the column id used throughout
	// all stream names and encodings.
	ColumnID int
}

func leaf(cat Category) *Schema { return &Schema{Category: cat} }

func NewBoolean() *Schema   { return leaf(Boolean) }
func NewShort() *Schema     { return leaf(Short) }
func NewInt() *Schema       { return leaf(Int) }
func NewLong() *Schema      { return leaf(Long) }
func NewFloat() *Schema     { return leaf(Float) }
func NewDouble() *Schema    { return leaf(Double) }
func NewDate() *Schema      { return leaf(Date) }
func NewTimestamp() *Schema { return leaf(Timestamp) }
func NewBinary() *Schema    { return leaf(Binary) }
func NewString() *Schema    { return leaf(String) }

// NewDecimal builds a DECIMAL(precision, scale) schema; precision must be
// 1..38 and scale 0..precision (spec.md §3).
func NewDecimal(precision, scale int) (*Schema, error) {
	if precision < 1 || precision > 38 || scale < 0 || scale > precision {
		return nil, fmt.Errorf("%w: precision=%d scale=%d", errs.ErrInvalidDecimal, precision, scale)
	}
	return &Schema{Category: Decimal, Precision: precision, Scale: scale}, nil
}

// NewChar builds a CHAR(len) schema.
func NewChar(maxLength int) (*Schema, error) {
	if maxLength <= 0 {
		return nil, errs.ErrInvalidCharLength
	}
	return &Schema{Category: Char, MaxLength: maxLength}, nil
}

// NewVarChar builds a VARCHAR(len) schema.
func NewVarChar(maxLength int) (*Schema, error) {
	if maxLength <= 0 {
		return nil, errs.ErrInvalidCharLength
	}
	return &Schema{Category: VarChar, MaxLength: maxLength}, nil
}

// NewStruct builds a STRUCT schema from ordered (name, type) fields.
func NewStruct(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errs.ErrEmptySchema
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return &Schema{Category: Struct, Fields: fields}, nil
}

// NewList builds a LIST(element) schema.
func NewList(element *Schema) *Schema {
	return &Schema{Category: List, Element: element}
}

// NewMap builds a MAP(key, value) schema.
func NewMap(key, value *Schema) *Schema {
	return &Schema{Category: Map, Key: key, Value: value}
}

// NewUnion builds a UNION(variants) schema; 1..256 variants (spec.md §3).
func NewUnion(variants ...*Schema) (*Schema, error) {
	if len(variants) == 0 || len(variants) > 256 {
		return nil, fmt.Errorf("orc: union must have 1..256 variants, got %d", len(variants))
	}
	return &Schema{Category: Union, Variants: variants}, nil
}

// Assign numbers every node in the tree by pre-order DFS starting at 0 for
// the root, and returns the total column count. The root must be a Struct
// for the resulting tree to be well-formed ORC (spec.md §3), but Assign
// itself imposes no such restriction so the same numbering can be reused
// for sub-schemas in tests.
func Assign(root *Schema) int {
	next := 0
	var walk func(s *Schema)
	walk = func(s *Schema) {
		s.ColumnID = next
		next++
		switch s.Category {
		case Struct:
			for _, f := range s.Fields {
				walk(f.Type)
			}
		case List:
			walk(s.Element)
		case Map:
			walk(s.Key)
			walk(s.Value)
		case Union:
			for _, v := range s.Variants {
				walk(v)
			}
		}
	}
	walk(root)
	return next
}
