package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullSchemaInsertionOrder(t *testing.T) {
	full := NewFullSchema()
	full.Set("zebra", []FieldSchema{{Name: "z", Types: []string{"string"}}})
	full.Set("alpha", []FieldSchema{{Name: "a", Types: []string{"number"}}})

	assert.Equal(t, []string{"zebra", "alpha"}, full.Collections())
	assert.Equal(t, 2, full.Len())

	fields, ok := full.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "a", fields[0].Name)
}

func TestFullSchemaMarshalPreservesOrder(t *testing.T) {
	full := NewFullSchema()
	full.Set("zebra", []FieldSchema{{Name: "z", Types: []string{"string"}}})
	full.Set("alpha", []FieldSchema{{Name: "a", Types: []string{"number"}}})

	data, err := json.Marshal(full)
	require.NoError(t, err)

	expected := `{"zebra":[{"name":"z","types":["string"]}],"alpha":[{"name":"a","types":["number"]}]}`
	assert.Equal(t, expected, string(data))
}

func TestFieldSchemaMarshalOmitsEmpty(t *testing.T) {
	leaf := FieldSchema{Name: "age", Types: []string{"number"}}
	data, err := json.Marshal(leaf)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"age","types":["number"]}`, string(data))

	truncated := FieldSchema{Name: "deep", Types: []string{"object"}, Truncated: true}
	data, err = json.Marshal(truncated)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"deep","types":["object"],"truncated":true}`, string(data))
}

func TestFieldSchemaMarshalNested(t *testing.T) {
	node := FieldSchema{
		Name:  "address",
		Types: []string{"object"},
		SubFields: []FieldSchema{
			{Name: "city", Types: []string{"string"}},
		},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"address","types":["object"],"subFields":[{"name":"city","types":["string"]}]}`,
		string(data))
}

func TestFlattenSchemaMarshalPreservesOrder(t *testing.T) {
	flat := NewFlattenSchema()

	users := NewFlatFields()
	users.Set("name", "string")
	users.Set("address.city", "string")
	users.Set("age", "number")
	flat.Set("users", users)

	empty := NewFlatFields()
	flat.Set("audit", empty)

	data, err := json.Marshal(flat)
	require.NoError(t, err)

	expected := `{"users":{"name":"string","address.city":"string","age":"number"},"audit":{}}`
	assert.Equal(t, expected, string(data))
}

func TestFlattenSchemaEmpty(t *testing.T) {
	flat := NewFlattenSchema()
	data, err := json.Marshal(flat)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
	assert.Equal(t, 0, flat.Len())
}

func TestFlatFieldsOverwriteKeepsPosition(t *testing.T) {
	fields := NewFlatFields()
	fields.Set("a", "string")
	fields.Set("b", "number")
	fields.Set("a", "null")

	assert.Equal(t, []string{"a", "b"}, fields.Keys())
	value, _ := fields.Get("a")
	assert.Equal(t, "null", value)
}
