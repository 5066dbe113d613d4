package schema

import (
	"unicode/utf8"

	"github.com/memtab/memtab/internal/domain/value"
)

// Column declares a named column with a fixed value kind
type Column struct {
	Name string
	Kind value.Kind
}

// TableSchema is an ordered column list with a name lookup and a
// per-column render-width cache. Column order determines iteration and
// display order; the width cache holds the running maximum over the
// column name and every value observed in that column.
type TableSchema struct {
	Columns []Column
	index   map[string]int
	widths  []int
}

// NewTableSchema builds a schema for the given columns.
// Each column's width starts at the length of its name so headers
// never truncate.
func NewTableSchema(columns []Column) *TableSchema {
	s := &TableSchema{
		Columns: append([]Column(nil), columns...),
		index:   make(map[string]int, len(columns)),
		widths:  make([]int, len(columns)),
	}
	for i, col := range s.Columns {
		s.index[col.Name] = i
		s.widths[i] = utf8.RuneCountInString(col.Name)
	}
	return s
}

// ColumnIndex returns the position of the named column
func (s *TableSchema) ColumnIndex(name string) (int, bool) {
	pos, ok := s.index[name]
	return pos, ok
}

// Width returns the cached render width of the column at pos
func (s *TableSchema) Width(pos int) int {
	return s.widths[pos]
}

// Observe raises the cached width of the column at pos to w if w
// exceeds the current maximum. Widths never shrink.
func (s *TableSchema) Observe(pos, w int) {
	if w > s.widths[pos] {
		s.widths[pos] = w
	}
}

// Clone returns an independent copy of the schema
func (s *TableSchema) Clone() *TableSchema {
	c := NewTableSchema(s.Columns)
	copy(c.widths, s.widths)
	return c
}
