package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestTypeSchema(t *testing.T) {
	schema := NewTypeSchema().
		AddProperty("id", "integer").
		AddProperty("updated_at", "string", "null")

	assert.True(t, schema.HasField("id"))
	assert.True(t, schema.HasField("updated_at"))
	assert.False(t, schema.HasField("missing"))

	var nilSchema *TypeSchema
	assert.False(t, nilSchema.HasField("id"), "Nil schema has no fields and must not panic")
}

func TestTypeSchema_RoundTrip(t *testing.T) {
	schema := NewTypeSchema().AddProperty("id", "integer")

	data, err := json.Marshal(schema)
	assert.NoError(t, err)

	var decoded TypeSchema
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.HasField("id"))
	assert.Equal(t, []string{"integer"}, decoded.Properties["id"].Type)
}
