package predicate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

// Equals matches rows whose value for field equals target.
// Integer values of different Go kinds compare by numeric value.
func Equals(field string, target interface{}) schema.Predicate {
	return func(row data.Row) bool {
		val, ok := row.Get(field)
		if !ok {
			return false
		}
		return equalValues(val, target)
	}
}

// And matches rows that every predicate matches. No predicates match all rows.
func And(preds ...schema.Predicate) schema.Predicate {
	return func(row data.Row) bool {
		for _, p := range preds {
			if !p(row) {
				return false
			}
		}
		return true
	}
}

// ParseCondition splits "field=value".
func ParseCondition(cond string) (string, string, error) {
	field, value, ok := strings.Cut(cond, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", fmt.Errorf("condition %q must look like field=value", cond)
	}
	return field, value, nil
}

// Build converts field=value conditions into one predicate, typing each
// literal by the field's declared type.
func Build(fields []schema.Field, conds map[string]string) (schema.Predicate, error) {
	names := make([]string, 0, len(conds))
	for name := range conds {
		names = append(names, name)
	}
	sort.Strings(names)

	preds := make([]schema.Predicate, 0, len(names))
	for _, name := range names {
		field, ok := lookup(fields, name)
		if !ok {
			return nil, fmt.Errorf("unknown field %q in condition", name)
		}
		target, err := ConvertLiteral(conds[name], field.Type)
		if err != nil {
			return nil, fmt.Errorf("condition on %s: %w", name, err)
		}
		preds = append(preds, Equals(name, target))
	}
	return And(preds...), nil
}

// ConvertLiteral parses a string literal into a value of the field type.
func ConvertLiteral(lit string, ft schema.FieldType) (interface{}, error) {
	switch ft {
	case schema.FieldTypeText:
		return lit, nil
	case schema.FieldTypeInt:
		v, err := strconv.ParseInt(strings.TrimSpace(lit), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected INT, got %q", lit)
		}
		return v, nil
	case schema.FieldTypeFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(lit), 64)
		if err != nil {
			return nil, fmt.Errorf("expected FLOAT, got %q", lit)
		}
		return v, nil
	case schema.FieldTypeBool:
		v, err := strconv.ParseBool(strings.TrimSpace(lit))
		if err != nil {
			return nil, fmt.Errorf("expected BOOL, got %q", lit)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported field type %q", ft)
}

func lookup(fields []schema.Field, name string) (schema.Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return schema.Field{}, false
}
