// Package render formats tables as aligned ASCII grids.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// Write renders the table to w as a bordered grid: a dashed border, a
// header row with column names centered, another border, one line per
// row, and a trailing border. Integers and NULL cells are
// right-aligned, text is left-aligned, every cell padded to the
// column's cached width.
func Write(w io.Writer, t *schema.Table) {
	border := borderLine(t.Schema)

	fmt.Fprintln(w, border)
	fmt.Fprintln(w, headerLine(t.Schema))
	fmt.Fprintln(w, border)
	for _, row := range t.Rows {
		fmt.Fprintln(w, rowLine(t.Schema, row))
	}
	fmt.Fprintln(w, border)
}

// String renders the table to a string
func String(t *schema.Table) string {
	var b strings.Builder
	Write(&b, t)
	return b.String()
}

func borderLine(s *schema.TableSchema) string {
	var b strings.Builder
	b.WriteString(" +")
	for pos := range s.Columns {
		b.WriteString(strings.Repeat("-", s.Width(pos)+2))
		b.WriteString("+")
	}
	return b.String()
}

func headerLine(s *schema.TableSchema) string {
	var b strings.Builder
	b.WriteString(" |")
	for pos, col := range s.Columns {
		b.WriteString(" ")
		b.WriteString(center(col.Name, s.Width(pos)))
		b.WriteString(" |")
	}
	return b.String()
}

func rowLine(s *schema.TableSchema, row []value.Value) string {
	var b strings.Builder
	b.WriteString(" |")
	for pos := range s.Columns {
		b.WriteString(" ")
		b.WriteString(cell(row[pos], s.Width(pos)))
		b.WriteString(" |")
	}
	return b.String()
}

// cell pads a value to width: text is left-aligned, integers and NULL
// are right-aligned.
func cell(v value.Value, width int) string {
	s := v.String()
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	if !v.IsNull() && v.Kind() == value.KindText {
		return s + strings.Repeat(" ", pad)
	}
	return strings.Repeat(" ", pad) + s
}

// center pads s to width with any odd space going to the right
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
