package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memtab/memtab/internal/domain/value"
	"github.com/memtab/memtab/internal/query/operations"
	"github.com/memtab/memtab/internal/query/operations/testutil"
)

func TestLessThanKeepsMatchingRows(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "id", 10)
	assert.Len(t, result.Rows, 8, "all ids are below 10")

	result = operations.LessThan(fruits, "id", 4)
	assert.Equal(t, []string{"apple", "banana", "citrus"}, testutil.TextColumn(t, result, "name"))
}

func TestLessThanExcludesNulls(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "price", 250)

	// citrus has a NULL price and must not appear
	assert.Equal(t, []string{"apple", "banana"}, testutil.TextColumn(t, result, "name"))
}

func TestLessThanThresholdIsExclusive(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "price", 100)

	assert.Equal(t, []string{"apple"}, testutil.TextColumn(t, result, "name"))
}

func TestLessThanKeepsSchema(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "price", 250)

	assert.Equal(t, testutil.ColumnNames(fruits), testutil.ColumnNames(result))
	assert.Equal(t, 14, result.Schema.Width(1), "widths carry over even when wide rows are filtered out")
}

func TestLessThanUnknownColumn(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "color", 10)

	assert.Empty(t, result.Rows)
}

func TestLessThanResultIsIndependent(t *testing.T) {
	fruits := testutil.FruitsTable()

	result := operations.LessThan(fruits, "id", 2)
	require.Len(t, result.Rows, 1)

	result.Rows[0][1] = value.Text("changed")
	assert.Equal(t, value.Text("apple"), testutil.Cell(t, fruits, 0, "name"))
}
