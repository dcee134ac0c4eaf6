package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

// LoadTable creates one table from its seed. Every row goes through AddRow
// validation; the first invalid row aborts the load.
func LoadTable(db *schema.Database, ts TableSeed, logger *slog.Logger) error {
	if ts.Name == "" {
		return fmt.Errorf("table name is required")
	}

	table := db.Create(ts.Name)
	if err := table.AddFields(ts.Fields...); err != nil {
		return err
	}

	for i, row := range ts.Rows {
		if err := table.AddRow(typeNumbers(ts.Fields, row.Cells())...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	logger.Info("table loaded",
		slog.String("table", ts.Name),
		slog.Int("fields", len(ts.Fields)),
		slog.Int("rows", table.Len()),
	)
	return nil
}

// typeNumbers converts JSON numbers by the declared type of their field:
// int64 for INT, float64 for FLOAT. A number that does not fit its field
// is left as is and AddRow reports the mismatch.
func typeNumbers(fields []schema.Field, cells []data.Cell) []data.Cell {
	for i, c := range cells {
		n, ok := c.Value.(json.Number)
		if !ok {
			continue
		}
		for _, f := range fields {
			if f.Name != c.Name {
				continue
			}
			switch f.Type {
			case schema.FieldTypeInt:
				if v, err := n.Int64(); err == nil {
					cells[i].Value = v
				}
			case schema.FieldTypeFloat:
				if v, err := n.Float64(); err == nil {
					cells[i].Value = v
				}
			}
			break
		}
	}
	return cells
}
