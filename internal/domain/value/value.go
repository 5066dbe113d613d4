package value

import (
	"strconv"
	"unicode/utf8"
)

// Kind identifies the declared domain of a column
type Kind string

const (
	KindInt  Kind = "INT"
	KindText Kind = "TEXT"
)

// NullWidth is the render width of the literal "NULL"
const NullWidth = 4

// Value is a tagged cell value: a declared kind plus an optional payload.
// Nullness is orthogonal to the kind; a null Int and a null Text are
// different values. Value is comparable, so == gives full tagged equality
// and two nulls of the same kind compare equal.
type Value struct {
	kind  Kind
	i     int32
	s     string
	valid bool
}

// Int returns a non-null integer value
func Int(v int32) Value {
	return Value{kind: KindInt, i: v, valid: true}
}

// Text returns a non-null text value
func Text(s string) Value {
	return Value{kind: KindText, s: s, valid: true}
}

// Null returns the null value of the given kind
func Null(k Kind) Value {
	return Value{kind: k}
}

// NullInt returns the null integer value
func NullInt() Value { return Null(KindInt) }

// NullText returns the null text value
func NullText() Value { return Null(KindText) }

// Kind returns the declared kind of the value
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the payload is unset
func (v Value) IsNull() bool { return !v.valid }

// Int returns the integer payload.
// ok is false for null values and for text values.
func (v Value) Int() (int32, bool) {
	if v.kind != KindInt || !v.valid {
		return 0, false
	}
	return v.i, true
}

// Text returns the text payload.
// ok is false for null values and for integer values.
func (v Value) Text() (string, bool) {
	if v.kind != KindText || !v.valid {
		return "", false
	}
	return v.s, true
}

// Width returns the number of character cells the value occupies when
// rendered: decimal digits plus sign for integers, rune count for text,
// and the width of the literal "NULL" for nulls.
func (v Value) Width() int {
	if !v.valid {
		return NullWidth
	}
	if v.kind == KindInt {
		return len(strconv.FormatInt(int64(v.i), 10))
	}
	return utf8.RuneCountInString(v.s)
}

// String renders the value exactly as display output shows it
func (v Value) String() string {
	if !v.valid {
		return "NULL"
	}
	if v.kind == KindInt {
		return strconv.FormatInt(int64(v.i), 10)
	}
	return v.s
}
