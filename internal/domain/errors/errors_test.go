package errors

import (
	"errors"
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSchemaMismatchMessage(t *testing.T) {
	err := NewTypeMismatch("users", "age", "thirty", "INT")

	assert.Equal(t, err.Error(),
		"schema mismatch in users.age - (type_mismatch) - value=thirty - expected INT, got string")
}

func TestFieldCountMessageHasNoField(t *testing.T) {
	err := NewFieldCountMismatch("users", 1, 2)

	assert.Equal(t, err.Error(),
		"schema mismatch in users - (field_count) - row has 1 values, schema has 2 fields")
}

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", NewUnknownField("users", "nick"))

	assert.Assert(t, errors.Is(wrapped, ErrSchemaMismatch))
	assert.Assert(t, !errors.Is(wrapped, ErrTableNotFound))

	var sm *SchemaMismatchError
	assert.Assert(t, errors.As(wrapped, &sm))
	assert.Equal(t, sm.Constraint, ConstraintUnknownField)
	assert.Equal(t, sm.Field, "nick")
}

func TestTableNotFound(t *testing.T) {
	err := error(&TableNotFoundError{Name: "orders"})

	assert.Assert(t, errors.Is(err, ErrTableNotFound))
	assert.Check(t, is.ErrorContains(err, "orders"))
}
