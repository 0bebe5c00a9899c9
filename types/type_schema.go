package types

// TypeSchema is the JSON schema of a stream's record fields. The engine never
// interprets property types; it only needs the field names when a cursor or
// primary key path has to be checked against the schema.
type TypeSchema struct {
	Type       string               `json:"type,omitempty"`
	Properties map[string]*Property `json:"properties,omitempty"`
}

// Property is a dto for catalog property representation
type Property struct {
	Type   []string `json:"type,omitempty"`
	Format string   `json:"format,omitempty"`
}

func NewTypeSchema() *TypeSchema {
	return &TypeSchema{
		Type:       "object",
		Properties: map[string]*Property{},
	}
}

func (t *TypeSchema) AddProperty(field string, types ...string) *TypeSchema {
	if t.Properties == nil {
		t.Properties = map[string]*Property{}
	}
	t.Properties[field] = &Property{Type: types}

	return t
}

func (t *TypeSchema) HasField(field string) bool {
	if t == nil {
		return false
	}

	_, found := t.Properties[field]
	return found
}
