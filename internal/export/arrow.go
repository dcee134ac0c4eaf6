package export

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/leengari/memtable/internal/domain/schema"
)

// ArrowType maps a field type to its Arrow column type.
func ArrowType(ft schema.FieldType) (arrow.DataType, error) {
	switch ft {
	case schema.FieldTypeText:
		return arrow.BinaryTypes.String, nil
	case schema.FieldTypeInt:
		return arrow.PrimitiveTypes.Int64, nil
	case schema.FieldTypeFloat:
		return arrow.PrimitiveTypes.Float64, nil
	case schema.FieldTypeBool:
		return arrow.FixedWidthTypes.Boolean, nil
	}
	return nil, fmt.Errorf("no arrow type for field type %q", ft)
}

// ArrowSchema converts a table schema. Columns are nullable because rows
// inserted before a field was added carry no value for it.
func ArrowSchema(fields []schema.Field) (*arrow.Schema, error) {
	out := make([]arrow.Field, len(fields))
	for i, f := range fields {
		dt, err := ArrowType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[i] = arrow.Field{Name: f.Name, Type: dt, Nullable: true}
	}
	return arrow.NewSchema(out, nil), nil
}

// ToRecord builds an Arrow record holding every row of t.
// The caller must Release the record.
func ToRecord(t *schema.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := t.Schema()
	sc, err := ArrowSchema(fields)
	if err != nil {
		return nil, err
	}

	b := array.NewRecordBuilder(mem, sc)
	defer b.Release()

	for rowIdx, row := range t.SelectAll() {
		for colIdx, f := range fields {
			val, ok := row.Get(f.Name)
			if !ok {
				b.Field(colIdx).AppendNull()
				continue
			}
			if err := appendValue(b.Field(colIdx), val); err != nil {
				return nil, fmt.Errorf("row %d field %s: %w", rowIdx, f.Name, err)
			}
		}
	}

	return b.NewRecord(), nil
}

// appendValue appends a validated cell value to its column builder
func appendValue(builder array.Builder, val interface{}) error {
	switch b := builder.(type) {
	case *array.StringBuilder:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		b.Append(s)
	case *array.Int64Builder:
		i, err := toInt64(val)
		if err != nil {
			return err
		}
		b.Append(i)
	case *array.Float64Builder:
		switch v := val.(type) {
		case float64:
			b.Append(v)
		case float32:
			b.Append(float64(v))
		default:
			return fmt.Errorf("expected float, got %T", val)
		}
	case *array.BooleanBuilder:
		v, ok := val.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", val)
		}
		b.Append(v)
	default:
		return fmt.Errorf("unsupported builder %T", builder)
	}
	return nil
}

func toInt64(val interface{}) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt64(v)
	}
	return 0, fmt.Errorf("expected integer, got %T", val)
}

func uintToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("value %d overflows int64", v)
	}
	return int64(v), nil
}
