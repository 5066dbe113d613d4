package schema

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/memtab/memtab/internal/domain/value"
)

// Table holds a schema and its rows. Rows use fixed-position storage:
// row[i] is the value of Schema.Columns[i], so every column is present
// by construction and unset columns are typed nulls.
//
// A table exclusively owns its schema and rows. Derived tables (from
// Select, LessThan, Like, LeftJoin) never alias the source's storage.
type Table struct {
	ID     string
	Name   string
	Schema *TableSchema
	Rows   [][]value.Value
}

// Entry pairs a column name with a value for Insert
type Entry struct {
	Column string
	Value  value.Value
}

// Col builds an Entry
func Col(column string, v value.Value) Entry {
	return Entry{Column: column, Value: v}
}

// New creates an empty table with the given columns
func New(name string, columns []Column) *Table {
	t := &Table{
		ID:     uuid.New().String(),
		Name:   name,
		Schema: NewTableSchema(columns),
	}
	slog.Debug("table created",
		slog.String("table", t.Name),
		slog.String("id", t.ID),
		slog.Int("columns", len(columns)),
	)
	return t
}

// NewDerived wraps an already-built schema and row set as a table.
// Used by query operations; the caller must not retain ts or rows.
func NewDerived(name string, ts *TableSchema, rows [][]value.Value) *Table {
	return &Table{
		ID:     uuid.New().String(),
		Name:   name,
		Schema: ts,
		Rows:   rows,
	}
}

// Insert validates the entries and appends one row.
//
// It fails with an unknown-column error if an entry names a column not
// in the schema, and with a duplicate-column error if the same column
// appears twice in one call. A failed insert leaves the table
// untouched. On success the width cache is raised for every column of
// the new row (columns not named in the entries become typed nulls).
func (t *Table) Insert(entries ...Entry) error {
	row := make([]value.Value, len(t.Schema.Columns))
	for i, col := range t.Schema.Columns {
		row[i] = value.Null(col.Kind)
	}

	seen := make([]bool, len(row))
	for _, e := range entries {
		pos, ok := t.Schema.ColumnIndex(e.Column)
		if !ok {
			return NewUnknownColumn(t.Name, e.Column)
		}
		if seen[pos] {
			return NewDuplicateColumn(t.Name, e.Column)
		}
		seen[pos] = true
		row[pos] = e.Value
	}

	for pos, v := range row {
		t.Schema.Observe(pos, v.Width())
	}
	t.Rows = append(t.Rows, row)

	slog.Debug("row inserted",
		slog.String("table", t.Name),
		slog.String("id", t.ID),
		slog.Int("rows", len(t.Rows)),
	)
	return nil
}
