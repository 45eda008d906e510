package graph

import (
	"slices"
	"sort"
)

// ColumnType is the declared value type of an attribute column.
type ColumnType int

const (
	// ColumnAny holds values of mixed or unrecognized types.
	ColumnAny ColumnType = iota
	// ColumnString holds string values.
	ColumnString
	// ColumnFloat holds float64 values.
	ColumnFloat
	// ColumnInt holds integer values.
	ColumnInt
	// ColumnBool holds boolean values.
	ColumnBool
)

var columnTypeNames = map[ColumnType]string{
	ColumnAny:    "any",
	ColumnString: "string",
	ColumnFloat:  "float",
	ColumnInt:    "int",
	ColumnBool:   "bool",
}

func (t ColumnType) String() string {
	if s, ok := columnTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Columns is the schema of an attribute table: column names and their
// declared types, in declaration order.
type Columns struct {
	types map[string]ColumnType
	order []string
}

func newColumns() *Columns {
	return &Columns{types: make(map[string]ColumnType)}
}

// declare adds a column if absent. A column first declared with a concrete
// type and later seen with a different one degrades to ColumnAny.
func (c *Columns) declare(name string, t ColumnType) {
	prev, ok := c.types[name]
	if !ok {
		c.types[name] = t
		c.order = append(c.order, name)
		return
	}
	if prev != t && prev != ColumnAny {
		c.types[name] = ColumnAny
	}
}

// Has reports whether the column is declared.
func (c *Columns) Has(name string) bool {
	_, ok := c.types[name]
	return ok
}

// Type returns the declared type of a column and whether it exists.
func (c *Columns) Type(name string) (ColumnType, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Names returns column names in declaration order.
func (c *Columns) Names() []string { return slices.Clone(c.order) }

// Sorted returns column names in lexical order.
func (c *Columns) Sorted() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}

// Len returns the number of declared columns.
func (c *Columns) Len() int { return len(c.order) }

func typeOf(v any) ColumnType {
	switch v.(type) {
	case string:
		return ColumnString
	case float32, float64:
		return ColumnFloat
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ColumnInt
	case bool:
		return ColumnBool
	default:
		return ColumnAny
	}
}
