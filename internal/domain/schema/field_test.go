package schema

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseFieldType(t *testing.T) {
	tests := map[string]FieldType{
		"TEXT":    FieldTypeText,
		"string":  FieldTypeText,
		" Int ":   FieldTypeInt,
		"integer": FieldTypeInt,
		"double":  FieldTypeFloat,
		"Boolean": FieldTypeBool,
	}
	for in, want := range tests {
		got, err := ParseFieldType(in)
		assert.NilError(t, err, in)
		assert.Equal(t, got, want, in)
	}

	_, err := ParseFieldType("blob")
	assert.ErrorContains(t, err, `unknown field type "blob"`)
}

func TestFieldDecodesLooseTypeNames(t *testing.T) {
	var f Field
	assert.NilError(t, json.Unmarshal([]byte(`{"name":"age","type":"integer"}`), &f))

	assert.Equal(t, f, Field{Name: "age", Type: FieldTypeInt})
	assert.Assert(t, f.Type.Valid())
	assert.Assert(t, !FieldType("DATE").Valid())
}

func TestNewFieldKeepsUnknownTag(t *testing.T) {
	f := NewField("when", FieldType("DATE"))

	assert.Equal(t, f.Type, FieldType("DATE"))
}
