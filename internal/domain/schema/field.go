package schema

import (
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldTypeText  FieldType = "TEXT"
	FieldTypeInt   FieldType = "INT"
	FieldTypeFloat FieldType = "FLOAT"
	FieldTypeBool  FieldType = "BOOL"
)

// Field is a schema column descriptor.
type Field struct {
	Name string    `json:"name" toml:"name"`
	Type FieldType `json:"type" toml:"type"`
}

// NewField builds a Field as given. The type tag is not checked here;
// an unknown tag simply accepts no values.
func NewField(name string, fieldType FieldType) Field {
	return Field{Name: name, Type: fieldType}
}

// Accepts reports whether v is an instance of the field type.
// Booleans are not integers and integers are not floats.
func (ft FieldType) Accepts(v interface{}) bool {
	switch ft {
	case FieldTypeText:
		_, ok := v.(string)
		return ok
	case FieldTypeInt:
		switch v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	case FieldTypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	case FieldTypeBool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// Valid reports whether ft is one of the known type tags.
func (ft FieldType) Valid() bool {
	switch ft {
	case FieldTypeText, FieldTypeInt, FieldTypeFloat, FieldTypeBool:
		return true
	}
	return false
}

// ParseFieldType maps a type name to its tag, case-insensitively.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string", "str":
		return FieldTypeText, nil
	case "int", "integer":
		return FieldTypeInt, nil
	case "float", "double":
		return FieldTypeFloat, nil
	case "bool", "boolean":
		return FieldTypeBool, nil
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

// UnmarshalText lets seed and config files spell types loosely.
func (ft *FieldType) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}
