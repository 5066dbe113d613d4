package schema

import (
	"fmt"
	"strings"
)

// Represents a violation of the table schema
// (unknown column, duplicate column in one insert, missing join key)
type SchemaError struct {
	Table      string // table name
	Column     string // offending column or join key
	Constraint string // "unknown_column", "duplicate_column", "missing_join_key"
	Reason     string // human-readable explanation (optional)
}

func (e *SchemaError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("schema violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func NewUnknownColumn(table, column string) *SchemaError {
	return &SchemaError{
		Table:      table,
		Column:     column,
		Constraint: "unknown_column",
		Reason:     "column is not in the schema",
	}
}

func NewDuplicateColumn(table, column string) *SchemaError {
	return &SchemaError{
		Table:      table,
		Column:     column,
		Constraint: "duplicate_column",
		Reason:     "column named twice in one insert",
	}
}

func NewMissingJoinKey(table, key string) *SchemaError {
	return &SchemaError{
		Table:      table,
		Column:     key,
		Constraint: "missing_join_key",
		Reason:     "join key is not in the schema",
	}
}
