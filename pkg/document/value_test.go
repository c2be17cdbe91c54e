package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/configtools/difftoml/pkg/document"
)

func TestValueEquality(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		assert.True(t, document.String("a").Equal(document.String("a")))
		assert.False(t, document.String("a").Equal(document.String("b")))
		assert.True(t, document.Integer(42).Equal(document.Integer(42)))
		assert.True(t, document.Float(0.5).Equal(document.Float(0.5)))
		assert.True(t, document.Boolean(true).Equal(document.Boolean(true)))
		assert.False(t, document.Boolean(true).Equal(document.Boolean(false)))
	})

	t.Run("cross-variant is never equal", func(t *testing.T) {
		assert.False(t, document.Integer(1).Equal(document.Float(1.0)))
		assert.False(t, document.String("1").Equal(document.Integer(1)))
		assert.False(t, document.Boolean(true).Equal(document.String("true")))
	})

	t.Run("datetime", func(t *testing.T) {
		utc := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		plusTwo := utc.In(time.FixedZone("CEST", 2*60*60))
		// Same instant in different zones compares equal
		assert.True(t, document.DateTime(utc).Equal(document.DateTime(plusTwo)))
		assert.False(t, document.DateTime(utc).Equal(document.DateTime(utc.Add(time.Second))))
	})

	t.Run("arrays compare element-wise in order", func(t *testing.T) {
		a := document.Array(document.Integer(1), document.Integer(2))
		b := document.Array(document.Integer(1), document.Integer(2))
		c := document.Array(document.Integer(2), document.Integer(1))
		shorter := document.Array(document.Integer(1))

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Equal(shorter))
	})

	t.Run("tables compare independent of key order", func(t *testing.T) {
		a := document.Table{"x": document.Integer(1), "y": document.Integer(2)}
		b := document.Table{"y": document.Integer(2), "x": document.Integer(1)}
		c := document.Table{"x": document.Integer(1), "z": document.Integer(2)}

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.True(t, document.TableValue(a).Equal(document.TableValue(b)))
	})
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value document.Value
		want  string
	}{
		{"string is quoted", document.String("hello"), `"hello"`},
		{"integer", document.Integer(123), "123"},
		{"float", document.Float(3.45), "3.45"},
		{"whole float keeps decimal point", document.Float(3), "3.0"},
		{"boolean", document.Boolean(true), "true"},
		{"datetime", document.DateTime(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)), "1979-05-27T07:32:00Z"},
		{
			"array",
			document.Array(document.Float(0.12), document.Float(3.45), document.Float(6.78)),
			"[0.12, 3.45, 6.78]",
		},
		{
			"string array",
			document.Array(document.String("first"), document.String("second")),
			`["first", "second"]`,
		},
		{"empty array", document.Array(), "[]"},
		{
			"table renders sorted keys",
			document.TableValue(document.Table{"b": document.Integer(2), "a": document.Integer(1)}),
			`{"a": 1, "b": 2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, document.KindString, document.String("").Kind())
	assert.Equal(t, document.KindTable, document.TableValue(document.Table{}).Kind())

	table, ok := document.TableValue(document.Table{"k": document.Integer(1)}).Table()
	assert.True(t, ok)
	assert.Len(t, table, 1)

	_, ok = document.Integer(1).Table()
	assert.False(t, ok)
}

func TestTableKeys(t *testing.T) {
	table := document.Table{
		"zulu":  document.Integer(1),
		"alpha": document.Integer(2),
		"mike":  document.Integer(3),
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, table.Keys())
}

func TestPath(t *testing.T) {
	root := document.Path{}
	child := root.Child("field0")
	grandchild := child.Child("values")

	assert.Equal(t, "", root.Leaf())
	assert.Equal(t, "field0", child.Leaf())
	assert.Equal(t, "values", grandchild.Leaf())
	assert.Equal(t, `["field0", "values"]`, grandchild.String())
	assert.Equal(t, "[]", root.String())

	// Child must not alias the parent's backing array
	sibling := child.Child("name")
	assert.Equal(t, `["field0", "values"]`, grandchild.String())
	assert.Equal(t, `["field0", "name"]`, sibling.String())

	assert.True(t, grandchild.Equal(document.Path{"field0", "values"}))
	assert.False(t, grandchild.Equal(sibling))
	assert.False(t, grandchild.Equal(child))
}
