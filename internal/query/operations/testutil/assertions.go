package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// ColumnNames returns the table's schema column names in order
func ColumnNames(tbl *schema.Table) []string {
	names := make([]string, len(tbl.Schema.Columns))
	for i, col := range tbl.Schema.Columns {
		names[i] = col.Name
	}
	return names
}

// Cell returns the value at row r, named column
func Cell(t *testing.T, tbl *schema.Table, r int, column string) value.Value {
	t.Helper()
	pos, ok := tbl.Schema.ColumnIndex(column)
	require.True(t, ok, "column %q not in schema of %s", column, tbl.Name)
	require.Less(t, r, len(tbl.Rows), "row %d out of range in %s", r, tbl.Name)
	return tbl.Rows[r][pos]
}

// TextColumn collects the non-null text values of a column in row order
func TextColumn(t *testing.T, tbl *schema.Table, column string) []string {
	t.Helper()
	pos, ok := tbl.Schema.ColumnIndex(column)
	require.True(t, ok, "column %q not in schema of %s", column, tbl.Name)
	var out []string
	for _, row := range tbl.Rows {
		if s, ok := row[pos].Text(); ok {
			out = append(out, s)
		}
	}
	return out
}
