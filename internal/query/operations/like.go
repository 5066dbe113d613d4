package operations

import (
	"log/slog"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
	"github.com/memtab/memtab/internal/query/like"
)

// Like derives a table with the same schema keeping only rows where
// column holds non-null text fully matched by the LIKE pattern.
func Like(t *schema.Table, column, pattern string) *schema.Table {
	compiled := like.Compile(pattern)

	rows := make([][]value.Value, 0)
	if pos, ok := t.Schema.ColumnIndex(column); ok {
		for _, row := range t.Rows {
			if s, ok := row[pos].Text(); ok && compiled.Match(s) {
				rows = append(rows, cloneRow(row))
			}
		}
	}

	derived := schema.NewDerived(t.Name, t.Schema.Clone(), rows)
	slog.Debug("like filter completed",
		slog.String("table", t.Name),
		slog.String("source_id", t.ID),
		slog.String("id", derived.ID),
		slog.String("column", column),
		slog.String("pattern", pattern),
		slog.Int("rows", len(rows)),
	)
	return derived
}
