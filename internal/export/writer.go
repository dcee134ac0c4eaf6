package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

// Format represents the supported export formats
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Table exports every row of t to w in the given format.
func Table(w io.Writer, t *schema.Table, format Format) error {
	rec, err := ToRecord(t, nil)
	if err != nil {
		return fmt.Errorf("failed to build record for %s: %w", t.Name(), err)
	}
	defer rec.Release()

	switch format {
	case FormatCSV:
		return WriteCSV(w, rec)
	case FormatJSON:
		return WriteJSON(w, rec)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// WriteCSV writes the record as CSV with a header line. Nulls are empty cells.
func WriteCSV(w io.Writer, rec arrow.Record) error {
	writer := csv.NewWriter(w)

	sc := rec.Schema()
	headers := make([]string, sc.NumFields())
	for i, field := range sc.Fields() {
		headers[i] = field.Name
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for rowIdx := 0; rowIdx < int(rec.NumRows()); rowIdx++ {
		line := make([]string, rec.NumCols())
		for colIdx, col := range rec.Columns() {
			line[colIdx] = formatValue(col, rowIdx)
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the record as an indented JSON array of objects,
// keys in schema order. Nulls are omitted.
func WriteJSON(w io.Writer, rec arrow.Record) error {
	sc := rec.Schema()
	records := make([]data.Row, 0, rec.NumRows())

	for rowIdx := 0; rowIdx < int(rec.NumRows()); rowIdx++ {
		var row data.Row
		for colIdx, col := range rec.Columns() {
			if col.IsNull(rowIdx) {
				continue
			}
			row.AddField(sc.Field(colIdx).Name, getTypedValue(col, rowIdx))
		}
		records = append(records, row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// formatValue converts an Arrow column value at a specific position to a string
func formatValue(col arrow.Array, pos int) string {
	if col.IsNull(pos) {
		return ""
	}
	switch c := col.(type) {
	case *array.String:
		return c.Value(pos)
	case *array.Int64:
		return strconv.FormatInt(c.Value(pos), 10)
	case *array.Float64:
		return strconv.FormatFloat(c.Value(pos), 'g', -1, 64)
	case *array.Boolean:
		return strconv.FormatBool(c.Value(pos))
	}
	return col.ValueStr(pos)
}

// getTypedValue returns the Go value at a specific position
func getTypedValue(col arrow.Array, pos int) interface{} {
	switch c := col.(type) {
	case *array.String:
		return c.Value(pos)
	case *array.Int64:
		return c.Value(pos)
	case *array.Float64:
		return c.Value(pos)
	case *array.Boolean:
		return c.Value(pos)
	}
	return col.ValueStr(pos)
}
