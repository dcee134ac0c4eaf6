package schema

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/errors"
	"github.com/leengari/memtable/internal/domain/operation"
)

// Predicate selects rows during a scan.
type Predicate func(data.Row) bool

// Table represents a database table with its schema and data
type Table struct {
	mu     sync.RWMutex
	name   string
	fields []Field
	rows   []data.Row

	db     *Database // owner, nil for standalone tables
	logger *slog.Logger
}

// NewTable creates an empty table that is not attached to a Database.
func NewTable(name string) *Table {
	return &Table{
		name:   name,
		logger: slog.Default(),
	}
}

func (t *Table) Name() string {
	return t.name
}

// AddField appends one field to the schema.
// A name already in the schema is rejected.
func (t *Table) AddField(name string, fieldType FieldType) error {
	op := operation.New(operation.KindAddField)

	t.mu.Lock()
	for _, f := range t.fields {
		if f.Name == name {
			t.mu.Unlock()
			return errors.NewDuplicateField(t.name, name)
		}
	}
	field := NewField(name, fieldType)
	t.fields = append(t.fields, field)
	rowCount := len(t.rows)
	t.mu.Unlock()

	if rowCount > 0 {
		// Existing rows do not have the new field.
		t.logger.Warn("field added to non-empty table",
			"table", t.name,
			"field", name,
			"rows", rowCount,
			"op_id", op.ID,
		)
	}

	t.notify(Event{Type: EventFieldAdded, Table: t.name, OpID: op.ID, Duration: op.Elapsed(), Data: field})
	return nil
}

// AddFields adds several fields in argument order, stopping at the first error.
func (t *Table) AddFields(fields ...Field) error {
	for _, f := range fields {
		if err := t.AddField(f.Name, f.Type); err != nil {
			return err
		}
	}
	return nil
}

// AddRow validates the cells against the schema and appends them as a new row.
// On error the table is left unchanged.
func (t *Table) AddRow(cells ...data.Cell) error {
	op := operation.New(operation.KindInsert)

	t.mu.Lock()
	err := t.validateCells(cells)
	if err == nil {
		t.rows = append(t.rows, data.NewRow(cells...))
	}
	rowIndex := len(t.rows) - 1
	t.mu.Unlock()

	if err != nil {
		t.logger.Debug("row rejected", "table", t.name, "error", err, "op_id", op.ID)
		t.notify(Event{Type: EventRowRejected, Table: t.name, OpID: op.ID, Duration: op.Elapsed(), Data: err})
		return err
	}

	t.notify(Event{Type: EventRowInserted, Table: t.name, OpID: op.ID, Duration: op.Elapsed(), Data: rowIndex})
	return nil
}

// Insert is AddRow for a plain map. Values are validated in name order.
func (t *Table) Insert(values map[string]interface{}) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	cells := make([]data.Cell, len(names))
	for i, name := range names {
		cells[i] = data.C(name, values[name])
	}
	return t.AddRow(cells...)
}

// validateCells checks the count first, then each name and value in order.
// Must be called while holding a lock
func (t *Table) validateCells(cells []data.Cell) error {
	if len(cells) != len(t.fields) {
		return errors.NewFieldCountMismatch(t.name, len(cells), len(t.fields))
	}

	seen := make(map[string]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c.Name]; dup {
			return errors.NewDuplicateField(t.name, c.Name)
		}
		seen[c.Name] = struct{}{}

		field, ok := t.lookupField(c.Name)
		if !ok {
			return errors.NewUnknownField(t.name, c.Name)
		}
		if !field.Type.Accepts(c.Value) {
			return errors.NewTypeMismatch(t.name, c.Name, c.Value, string(field.Type))
		}
	}
	return nil
}

func (t *Table) lookupField(name string) (Field, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Find returns a copy of the first row matching pred.
// The bool is false when no row matches. pred sees copies, never stored rows.
func (t *Table) Find(pred Predicate) (data.Row, bool) {
	op := operation.New(operation.KindScan)

	t.mu.RLock()
	var (
		found   data.Row
		ok      bool
		scanned int
	)
	for _, row := range t.rows {
		scanned++
		if cp := row.Copy(); pred(cp) {
			found, ok = cp, true
			break
		}
	}
	t.mu.RUnlock()

	matched := 0
	if ok {
		matched = 1
	}
	t.notify(Event{Type: EventScan, Table: t.name, OpID: op.ID, Duration: op.Elapsed(),
		Data: ScanStats{Scanned: scanned, Matched: matched}})
	return found, ok
}

// FindMany returns copies of the rows matching pred, in insertion order.
// With limit > 0 the scan stops as soon as limit rows matched;
// limit <= 0 scans the whole table.
func (t *Table) FindMany(pred Predicate, limit int) []data.Row {
	op := operation.New(operation.KindScan)

	t.mu.RLock()
	var (
		result  []data.Row
		scanned int
	)
	for _, row := range t.rows {
		scanned++
		if cp := row.Copy(); pred(cp) {
			result = append(result, cp)
			if len(result) == limit {
				break
			}
		}
	}
	t.mu.RUnlock()

	t.notify(Event{Type: EventScan, Table: t.name, OpID: op.ID, Duration: op.Elapsed(),
		Data: ScanStats{Scanned: scanned, Matched: len(result), Limit: max(limit, 0)}})
	return result
}

// Fields returns the schema field names in order.
func (t *Table) Fields() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}

// Schema returns the field descriptors in order.
func (t *Table) Schema() []Field {
	t.mu.RLock()
	defer t.mu.RUnlock()

	fields := make([]Field, len(t.fields))
	copy(fields, t.fields)
	return fields
}

// Rows returns each row's value mapping, in insertion order.
func (t *Table) Rows() []map[string]interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]map[string]interface{}, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Map()
	}
	return rows
}

// SelectAll returns copies of all rows with their field order.
func (t *Table) SelectAll() []data.Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]data.Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table) notify(event Event) {
	if t.db != nil {
		t.db.notify(event)
	}
}
