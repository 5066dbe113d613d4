package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

func newFruits() *schema.Table {
	return schema.New("fruits", []schema.Column{
		{Name: "id", Kind: value.KindInt},
		{Name: "name", Kind: value.KindText},
		{Name: "price", Kind: value.KindInt},
	})
}

func TestNewSeedsWidthsFromColumnNames(t *testing.T) {
	tbl := newFruits()

	assert.Equal(t, 2, tbl.Schema.Width(0), "id")
	assert.Equal(t, 4, tbl.Schema.Width(1), "name")
	assert.Equal(t, 5, tbl.Schema.Width(2), "price")
	assert.Empty(t, tbl.Rows)
	assert.NotEmpty(t, tbl.ID)
}

func TestInsertAppendsRow(t *testing.T) {
	tbl := newFruits()

	err := tbl.Insert(
		schema.Col("id", value.Int(1)),
		schema.Col("name", value.Text("apple")),
		schema.Col("price", value.Int(50)),
	)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, value.Int(1), tbl.Rows[0][0])
	assert.Equal(t, value.Text("apple"), tbl.Rows[0][1])
	assert.Equal(t, value.Int(50), tbl.Rows[0][2])
}

func TestInsertRaisesWidths(t *testing.T) {
	tbl := newFruits()

	require.NoError(t, tbl.Insert(
		schema.Col("id", value.Int(1)),
		schema.Col("name", value.Text("honeydew melon")),
		schema.Col("price", value.Int(4096)),
	))

	assert.Equal(t, 2, tbl.Schema.Width(0), "value narrower than header keeps header width")
	assert.Equal(t, 14, tbl.Schema.Width(1), "long text raises width")
	assert.Equal(t, 5, tbl.Schema.Width(2), "4-digit value narrower than header")

	require.NoError(t, tbl.Insert(
		schema.Col("id", value.Int(-1024)),
		schema.Col("name", value.Text("kiwi")),
	))
	assert.Equal(t, 5, tbl.Schema.Width(0), "sign counts toward integer width")
}

func TestInsertMissingColumnsBecomeNulls(t *testing.T) {
	tbl := newFruits()

	require.NoError(t, tbl.Insert(schema.Col("id", value.Int(3))))

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, value.NullText(), tbl.Rows[0][1])
	assert.Equal(t, value.NullInt(), tbl.Rows[0][2])

	// A visible NULL reserves at least 4 cells.
	assert.GreaterOrEqual(t, tbl.Schema.Width(1), value.NullWidth)
	assert.GreaterOrEqual(t, tbl.Schema.Width(2), value.NullWidth)
}

func TestInsertUnknownColumn(t *testing.T) {
	tbl := newFruits()

	err := tbl.Insert(schema.Col("id", value.Int(1)), schema.Col("color", value.Text("red")))
	require.Error(t, err)

	var serr *schema.SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "unknown_column", serr.Constraint)
	assert.Equal(t, "color", serr.Column)
	assert.Equal(t, "fruits", serr.Table)
}

func TestInsertDuplicateColumn(t *testing.T) {
	tbl := newFruits()

	err := tbl.Insert(schema.Col("id", value.Int(1)), schema.Col("id", value.Int(2)))
	require.Error(t, err)

	var serr *schema.SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "duplicate_column", serr.Constraint)
	assert.Equal(t, "id", serr.Column)
}

func TestFailedInsertLeavesTableUntouched(t *testing.T) {
	tbl := newFruits()
	require.NoError(t, tbl.Insert(schema.Col("id", value.Int(1)), schema.Col("name", value.Text("apple"))))

	widths := []int{tbl.Schema.Width(0), tbl.Schema.Width(1), tbl.Schema.Width(2)}

	err := tbl.Insert(
		schema.Col("name", value.Text("a very long name that would widen the column")),
		schema.Col("color", value.Text("red")),
	)
	require.Error(t, err)

	assert.Len(t, tbl.Rows, 1, "failed insert must not append")
	for pos, w := range widths {
		assert.Equal(t, w, tbl.Schema.Width(pos), "failed insert must not touch widths")
	}
}

func TestSchemaClone(t *testing.T) {
	tbl := newFruits()
	require.NoError(t, tbl.Insert(schema.Col("name", value.Text("elderberries"))))

	clone := tbl.Schema.Clone()
	assert.Equal(t, tbl.Schema.Columns, clone.Columns)
	assert.Equal(t, 12, clone.Width(1), "clone carries observed widths")

	clone.Observe(1, 40)
	assert.Equal(t, 12, tbl.Schema.Width(1), "clone is independent")
}
