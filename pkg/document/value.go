// Package document defines the parsed in-memory representation of a
// configuration file: a tree of typed values rooted at a single table.
package document

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind string

const (
	// KindString represents a string value.
	KindString Kind = "string"
	// KindInteger represents an integer value.
	KindInteger Kind = "integer"
	// KindFloat represents a floating-point value.
	KindFloat Kind = "float"
	// KindBoolean represents a boolean value.
	KindBoolean Kind = "boolean"
	// KindDateTime represents a date-time value.
	KindDateTime Kind = "datetime"
	// KindArray represents an ordered sequence of values.
	KindArray Kind = "array"
	// KindTable represents a nested mapping from string keys to values.
	KindTable Kind = "table"
)

// Value is a closed tagged union over the types a configuration document
// can hold. Values are immutable once constructed; equality is structural
// and type-strict (an Integer never equals a Float, even for the same
// numeric value).
type Value struct {
	kind     Kind
	str      string
	integer  int64
	float    float64
	boolean  bool
	datetime time.Time
	array    []Value
	table    Table
}

// Table is a mapping from string keys to values. Key enumeration order is
// sorted lexically, which keeps traversal deterministic.
type Table map[string]Value

// String constructs a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Integer constructs an integer Value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Float constructs a float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Boolean constructs a boolean Value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// DateTime constructs a date-time Value.
func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, datetime: t}
}

// Array constructs an array Value from the given elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, array: elems}
}

// TableValue wraps a Table as a Value.
func TableValue(t Table) Value {
	return Value{kind: KindTable, table: t}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Table returns the nested table and true when the value is a table.
func (v Value) Table() (Table, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.table, true
}

// Equal reports structural equality. Arrays compare element-wise in order;
// tables compare independent of key order; scalars of different kinds are
// never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		return v.float == other.float
	case KindBoolean:
		return v.boolean == other.boolean
	case KindDateTime:
		return v.datetime.Equal(other.datetime)
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	case KindTable:
		return v.table.Equal(other.table)
	}
	return false
}

// String renders the value in its natural textual form: strings quoted,
// numbers unquoted, arrays bracketed and comma-separated.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return formatFloat(v.float)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindDateTime:
		return v.datetime.Format(time.RFC3339)
	case KindArray:
		parts := make([]string, len(v.array))
		for i, elem := range v.array {
			parts[i] = elem.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTable:
		parts := make([]string, 0, len(v.table))
		for _, k := range v.table.Keys() {
			parts = append(parts, strconv.Quote(k)+": "+v.table[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// Keys returns the table's keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports structural equality independent of key order.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for k, v := range t {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// formatFloat renders a float so that it always reads as a float: finite
// values without a fractional part gain a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}
