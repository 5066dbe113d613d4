package operations

import (
	"log/slog"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// LeftJoin performs a LEFT OUTER JOIN of left with right on key,
// using a hash index built over right's key column.
//
// The result schema is left's columns followed by every right column
// not already present on the left; widths for imported columns are
// copied from right. Key values compare by full tagged equality, so
// two nulls of the same kind match. When several right rows share a
// key, the last one in right's row order provides the imported values.
// Left rows without a match keep typed nulls in the imported columns.
//
// A key missing from either schema is an error.
func LeftJoin(left, right *schema.Table, key string) (*schema.Table, error) {
	leftKey, ok := left.Schema.ColumnIndex(key)
	if !ok {
		return nil, schema.NewMissingJoinKey(left.Name, key)
	}
	rightKey, ok := right.Schema.ColumnIndex(key)
	if !ok {
		return nil, schema.NewMissingJoinKey(right.Name, key)
	}

	slog.Debug("starting left join",
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.String("key", key),
		slog.Int("left_rows", len(left.Rows)),
		slog.Int("right_rows", len(right.Rows)),
	)

	// Result schema: left columns, then right columns the left does
	// not already have.
	cols := append([]schema.Column(nil), left.Schema.Columns...)
	imported := make([]int, 0, len(right.Schema.Columns))
	for pos, col := range right.Schema.Columns {
		if _, exists := left.Schema.ColumnIndex(col.Name); exists {
			continue
		}
		cols = append(cols, col)
		imported = append(imported, pos)
	}

	ts := schema.NewTableSchema(cols)
	for pos := range left.Schema.Columns {
		ts.Observe(pos, left.Schema.Width(pos))
	}
	for i, rightPos := range imported {
		ts.Observe(len(left.Schema.Columns)+i, right.Schema.Width(rightPos))
	}

	// Hash index on the right key. Positions keep right's row order,
	// so the last position is the winning match.
	index := make(map[value.Value][]int, len(right.Rows))
	for i, row := range right.Rows {
		index[row[rightKey]] = append(index[row[rightKey]], i)
	}

	rows := make([][]value.Value, len(left.Rows))
	matched := 0
	for r, leftRow := range left.Rows {
		row := make([]value.Value, len(cols))
		copy(row, leftRow)

		positions := index[leftRow[leftKey]]
		if len(positions) == 0 {
			for i, rightPos := range imported {
				row[len(leftRow)+i] = value.Null(right.Schema.Columns[rightPos].Kind)
			}
		} else {
			matched++
			match := right.Rows[positions[len(positions)-1]]
			for i, rightPos := range imported {
				row[len(leftRow)+i] = match[rightPos]
			}
		}
		rows[r] = row
	}

	derived := schema.NewDerived(left.Name, ts, rows)
	slog.Info("left join completed",
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.String("id", derived.ID),
		slog.Int("result_rows", len(rows)),
		slog.Int("matched_rows", matched),
	)
	return derived, nil
}
