package operations

import (
	"log/slog"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// Select derives a table whose schema is restricted and reordered to
// exactly the requested column list. Names not present in the source
// schema are silently dropped. Row values and cached widths for the
// kept columns are copied, so the result shares no storage with the
// source.
func Select(t *schema.Table, columns ...string) *schema.Table {
	kept := make([]schema.Column, 0, len(columns))
	srcPos := make([]int, 0, len(columns))
	for _, name := range columns {
		pos, ok := t.Schema.ColumnIndex(name)
		if !ok {
			continue
		}
		kept = append(kept, t.Schema.Columns[pos])
		srcPos = append(srcPos, pos)
	}

	ts := schema.NewTableSchema(kept)
	for i, pos := range srcPos {
		ts.Observe(i, t.Schema.Width(pos))
	}

	rows := make([][]value.Value, len(t.Rows))
	for r, src := range t.Rows {
		row := make([]value.Value, len(srcPos))
		for i, pos := range srcPos {
			row[i] = src[pos]
		}
		rows[r] = row
	}

	derived := schema.NewDerived(t.Name, ts, rows)
	slog.Debug("select completed",
		slog.String("table", t.Name),
		slog.String("source_id", t.ID),
		slog.String("id", derived.ID),
		slog.Int("columns", len(kept)),
	)
	return derived
}
