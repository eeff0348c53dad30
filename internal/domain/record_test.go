package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name    string
		spec    FieldSpec
		raw     any
		want    any
		wantErr bool
	}{
		{name: "int from json number", spec: FieldSpec{Name: "age", Type: FieldInteger}, raw: 42.0, want: 42},
		{name: "int from numeric string", spec: FieldSpec{Name: "age", Type: FieldInteger}, raw: "42", want: 42},
		{name: "int from garbage", spec: FieldSpec{Name: "age", Type: FieldInteger}, raw: "forty-two", wantErr: true},
		{name: "float from json number", spec: FieldSpec{Name: "bmi", Type: FieldFloat}, raw: 23.5, want: 23.5},
		{name: "float from string", spec: FieldSpec{Name: "bmi", Type: FieldFloat}, raw: " 23.5 ", want: 23.5},
		{name: "float from non-numeric", spec: FieldSpec{Name: "bmi", Type: FieldFloat}, raw: "high", wantErr: true},
		{name: "bool native", spec: FieldSpec{Name: "smoking", Type: FieldBool}, raw: true, want: true},
		{name: "bool from yes", spec: FieldSpec{Name: "smoking", Type: FieldBool}, raw: "yes", want: true},
		{name: "bool from zero", spec: FieldSpec{Name: "smoking", Type: FieldBool}, raw: 0.0, want: false},
		{name: "bool from garbage", spec: FieldSpec{Name: "smoking", Type: FieldBool}, raw: "maybe", wantErr: true},
		{name: "ordinal from number", spec: FieldSpec{Name: "level", Type: FieldOrdinal, MaxOrdinal: 4}, raw: 3.0, want: 3},
		{name: "string passthrough", spec: FieldSpec{Name: "note", Type: FieldString}, raw: "hello", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceValue(tt.spec, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypedRecord_FloatAndBoolViews(t *testing.T) {
	r := NewTypedRecord(3)
	r.Set("age", 70, true)
	r.Set("bmi", 23.5, true)
	r.Set("smoking", true, true)

	assert.Equal(t, 70.0, r.Float("age"))
	assert.Equal(t, 23.5, r.Float("bmi"))
	assert.Equal(t, 1.0, r.Float("smoking"))
	assert.True(t, r.Bool("smoking"))
	assert.True(t, r.Bool("age"))
	assert.Equal(t, 0.0, r.Float("missing"))
}

func TestTypedRecord_ProvidedTracking(t *testing.T) {
	r := NewTypedRecord(3)
	r.Set("age", 70, true)
	r.Set("insulin", 85.0, false)
	r.Set("note", "", false)

	assert.True(t, r.Provided("age"))
	assert.False(t, r.Provided("insulin"))
	assert.Equal(t, 1, r.ProvidedCount())
	assert.Equal(t, 3, r.Len())
}

func TestNewSchema_RejectsDuplicatesAndBadSpecs(t *testing.T) {
	_, err := NewSchema(
		FieldSpec{Name: "age", Type: FieldInteger},
		FieldSpec{Name: "age", Type: FieldFloat},
	)
	assert.Error(t, err)

	_, err = NewSchema(FieldSpec{Name: "level", Type: FieldOrdinal})
	assert.Error(t, err, "ordinal without max must fail")

	_, err = NewSchema(FieldSpec{Name: "", Type: FieldInteger})
	assert.Error(t, err)
}

func TestSchemaEntry_LookupPreservesDeclarationOrder(t *testing.T) {
	s := MustSchema(
		FieldSpec{Name: "b", Type: FieldFloat},
		FieldSpec{Name: "a", Type: FieldFloat},
	)

	spec, idx, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "a", spec.Name)

	_, _, ok = s.Lookup("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "a"}, s.FieldNames())
}

func TestFieldSpec_Required(t *testing.T) {
	assert.True(t, FieldSpec{Name: "age", Type: FieldInteger}.Required())
	assert.False(t, FieldSpec{Name: "age", Type: FieldInteger, Default: 0}.Required())
	assert.False(t, FieldSpec{Name: "smoking", Type: FieldBool, Default: false}.Required())
}
