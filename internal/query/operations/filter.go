package operations

import (
	"log/slog"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// LessThan derives a table with the same schema keeping only rows
// where column holds a non-null integer strictly below threshold.
// Rows with a null or text value in the column are excluded, as is
// every row when the column is not in the schema.
func LessThan(t *schema.Table, column string, threshold int32) *schema.Table {
	rows := make([][]value.Value, 0)
	if pos, ok := t.Schema.ColumnIndex(column); ok {
		for _, row := range t.Rows {
			if n, ok := row[pos].Int(); ok && n < threshold {
				rows = append(rows, cloneRow(row))
			}
		}
	}

	derived := schema.NewDerived(t.Name, t.Schema.Clone(), rows)
	slog.Debug("range filter completed",
		slog.String("table", t.Name),
		slog.String("source_id", t.ID),
		slog.String("id", derived.ID),
		slog.String("column", column),
		slog.Int("rows", len(rows)),
	)
	return derived
}

func cloneRow(row []value.Value) []value.Value {
	return append([]value.Value(nil), row...)
}
