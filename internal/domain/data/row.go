package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

// Cell is one named value supplied for a row.
type Cell struct {
	Name  string
	Value interface{}
}

// C is shorthand for building a Cell.
func C(name string, value interface{}) Cell {
	return Cell{Name: name, Value: value}
}

// Row represents a single table row
// Key = field name, Value = cell value. Keys keep the order they were added in.
type Row struct {
	names []string
	data  map[string]interface{}
}

// NewRow creates a Row from the given cells, in order.
// A repeated name overwrites the earlier value and keeps its position.
func NewRow(cells ...Cell) Row {
	r := Row{
		names: make([]string, 0, len(cells)),
		data:  make(map[string]interface{}, len(cells)),
	}
	for _, c := range cells {
		r.AddField(c.Name, c.Value)
	}
	return r
}

// FromMap creates a Row from a plain map. Keys are ordered by name.
func FromMap(m map[string]interface{}) Row {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	r := Row{
		names: names,
		data:  make(map[string]interface{}, len(m)),
	}
	for k, v := range m {
		r.data[k] = v
	}
	return r
}

// AddField inserts or overwrites one entry.
func (r *Row) AddField(name string, value interface{}) {
	if r.data == nil {
		r.data = make(map[string]interface{})
	}
	if _, exists := r.data[name]; !exists {
		r.names = append(r.names, name)
	}
	r.data[name] = value
}

// Get returns the value stored under name.
func (r Row) Get(name string) (interface{}, bool) {
	v, ok := r.data[name]
	return v, ok
}

// Value returns the value stored under name, or nil.
func (r Row) Value(name string) interface{} {
	return r.data[name]
}

func (r Row) Has(name string) bool {
	_, ok := r.data[name]
	return ok
}

// Names returns the field names in insertion order.
func (r Row) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r Row) Len() int {
	return len(r.names)
}

// Cells returns the row as ordered cells.
func (r Row) Cells() []Cell {
	out := make([]Cell, len(r.names))
	for i, name := range r.names {
		out[i] = Cell{Name: name, Value: r.data[name]}
	}
	return out
}

// Map returns a fresh copy of the value mapping.
func (r Row) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.data))
	for k, v := range r.data {
		m[k] = v
	}
	return m
}

// Copy creates a copy of the row to prevent mutation
func (r Row) Copy() Row {
	return Row{
		names: r.Names(),
		data:  r.Map(),
	}
}

// LogValue renders the row as an ordered attribute group.
func (r Row) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(r.names))
	for i, name := range r.names {
		attrs[i] = slog.Any(name, r.data[name])
	}
	return slog.GroupValue(attrs...)
}

// MarshalJSON writes the row as a JSON object, keys in insertion order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.data[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order.
// Numbers stay json.Number; JSON does not tell 10 from 10.0, so the
// caller types them against a schema.
func (r *Row) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}

	*r = Row{data: make(map[string]interface{})}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", tok)
		}
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		r.AddField(name, v)
	}
	_, err = dec.Token()
	return err
}

// UnmarshalTOML builds the row from a decoded TOML table. TOML tables carry
// no key order, so keys are ordered by name.
func (r *Row) UnmarshalTOML(v interface{}) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("row must be a TOML table, got %T", v)
	}
	*r = FromMap(m)
	return nil
}
