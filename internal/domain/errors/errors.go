package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrTableNotFound  = errors.New("table not found")
)

// Constraint names carried by SchemaMismatchError.
const (
	ConstraintFieldCount     = "field_count"
	ConstraintUnknownField   = "unknown_field"
	ConstraintTypeMismatch   = "type_mismatch"
	ConstraintDuplicateField = "duplicate_field"
)

// SchemaMismatchError reports a row or field definition that does not fit
// the table schema.
type SchemaMismatchError struct {
	Table      string // table name
	Field      string // field name (empty for row-level conditions)
	Value      interface{}
	Constraint string // one of the Constraint* names
	Reason     string // human-readable explanation
}

func (e *SchemaMismatchError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("schema mismatch in %s.%s", e.Table, e.Field))
	} else {
		parts = append(parts, fmt.Sprintf("schema mismatch in %s", e.Table))
	}

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

// Is makes errors.Is(err, ErrSchemaMismatch) hold for any SchemaMismatchError.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// TableNotFoundError is returned when a table lookup misses.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Name)
}

func (e *TableNotFoundError) Is(target error) bool {
	return target == ErrTableNotFound
}

func NewFieldCountMismatch(table string, got, want int) *SchemaMismatchError {
	return &SchemaMismatchError{
		Table:      table,
		Constraint: ConstraintFieldCount,
		Reason:     fmt.Sprintf("row has %d values, schema has %d fields", got, want),
	}
}

func NewUnknownField(table, field string) *SchemaMismatchError {
	return &SchemaMismatchError{
		Table:      table,
		Field:      field,
		Constraint: ConstraintUnknownField,
		Reason:     "field does not exist in table schema",
	}
}

func NewTypeMismatch(table, field string, value interface{}, expectedType string) *SchemaMismatchError {
	return &SchemaMismatchError{
		Table:      table,
		Field:      field,
		Value:      value,
		Constraint: ConstraintTypeMismatch,
		Reason:     fmt.Sprintf("expected %s, got %T", expectedType, value),
	}
}

func NewDuplicateField(table, field string) *SchemaMismatchError {
	return &SchemaMismatchError{
		Table:      table,
		Field:      field,
		Constraint: ConstraintDuplicateField,
		Reason:     "field name already used",
	}
}
