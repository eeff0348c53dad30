package domain

import "fmt"

// FieldSpec declares one input field of an assessment domain: its name,
// primitive type, human description and normalization rule. Specs are
// defined once at startup and never mutated.
type FieldSpec struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Description string    `json:"description"`

	// Scale is the linear normalization denominator for numeric fields
	// (value/Scale). Zero means the value passes through unscaled.
	Scale float64 `json:"scale,omitempty"`

	// Clamp bounds the normalized value to [0,1]. Left false where a
	// domain wants >1.0 to survive normalization and signal an extreme
	// reading; the scorer clamps the composite later regardless.
	Clamp bool `json:"clamp,omitempty"`

	// MaxOrdinal is the highest value of an ordinal field; normalization
	// divides by it.
	MaxOrdinal int `json:"max_ordinal,omitempty"`

	// Default, when non-nil, is substituted for an absent field. Fields
	// without a default are required and their absence is an input error.
	Default any `json:"default,omitempty"`
}

// Required reports whether the field must be present in the raw record.
func (f FieldSpec) Required() bool {
	return f.Default == nil
}

// Validate ensures the spec is usable by the pipeline.
func (f FieldSpec) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field spec validation: name is required")
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("field spec validation: field %q has invalid type %q", f.Name, f.Type)
	}
	if f.Type == FieldOrdinal && f.MaxOrdinal <= 0 {
		return fmt.Errorf("field spec validation: ordinal field %q needs a positive max", f.Name)
	}
	if f.Scale < 0 {
		return fmt.Errorf("field spec validation: field %q has negative scale", f.Name)
	}
	return nil
}

// SchemaEntry is the ordered field schema of one assessment domain.
// Declaration order is canonical: it defines the feature-vector index of
// every field and breaks ties during factor ranking. A schema is owned by
// exactly one domain predictor and shared read-only across calls.
type SchemaEntry struct {
	fields []FieldSpec
	index  map[string]int
}

// NewSchema builds a schema from field specs in declaration order.
func NewSchema(fields ...FieldSpec) (*SchemaEntry, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("schema validation: duplicate field %q", f.Name)
		}
		index[f.Name] = i
	}
	return &SchemaEntry{fields: append([]FieldSpec(nil), fields...), index: index}, nil
}

// MustSchema is NewSchema for statically declared domain tables, where a
// broken schema is a programming error caught at process start.
func MustSchema(fields ...FieldSpec) *SchemaEntry {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of fields, which equals the feature-vector length.
func (s *SchemaEntry) Len() int {
	return len(s.fields)
}

// Fields returns the specs in declaration order. The returned slice is a
// copy; the schema itself stays immutable.
func (s *SchemaEntry) Fields() []FieldSpec {
	return append([]FieldSpec(nil), s.fields...)
}

// Field returns the spec at position i.
func (s *SchemaEntry) Field(i int) FieldSpec {
	return s.fields[i]
}

// Lookup returns the spec and vector index for a field name.
func (s *SchemaEntry) Lookup(name string) (FieldSpec, int, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, 0, false
	}
	return s.fields[i], i, true
}

// Has reports whether the schema declares the named field.
func (s *SchemaEntry) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldNames returns the required field names in declaration order.
func (s *SchemaEntry) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Descriptions returns a name → description map for UI consumption.
func (s *SchemaEntry) Descriptions() map[string]string {
	out := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = f.Description
	}
	return out
}
