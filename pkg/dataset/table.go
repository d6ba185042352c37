// Package dataset loads synthetic-dataset captures, label definitions
// and statistics tables from local files or HTTP endpoints.
package dataset

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

// Table is a small column-oriented table feeding the chart renderers.
// Every column is either numeric or textual, and all columns share one
// length.
type Table struct {
	order   []string
	floats  map[string][]float64
	strings map[string][]string
	length  int
}

// NewTable returns an empty table. The first column added fixes the
// row count.
func NewTable() *Table {
	return &Table{
		floats:  make(map[string][]float64),
		strings: make(map[string][]string),
	}
}

// AddFloats appends a numeric column.
func (t *Table) AddFloats(name string, values []float64) error {
	if err := t.reserve(name, len(values)); err != nil {
		return err
	}
	t.floats[name] = append([]float64(nil), values...)
	return nil
}

// AddStrings appends a textual column.
func (t *Table) AddStrings(name string, values []string) error {
	if err := t.reserve(name, len(values)); err != nil {
		return err
	}
	t.strings[name] = append([]string(nil), values...)
	return nil
}

func (t *Table) reserve(name string, length int) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "column name must not be empty")
	}
	if _, ok := t.floats[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "column %q already exists", name)
	}
	if _, ok := t.strings[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "column %q already exists", name)
	}
	if len(t.order) > 0 && length != t.length {
		return errors.New(errors.ErrCodeInvalidInput,
			"column %q has %d values, table has %d rows", name, length, t.length)
	}
	t.order = append(t.order, name)
	t.length = length
	return nil
}

// Floats returns the named numeric column.
func (t *Table) Floats(name string) ([]float64, error) {
	if values, ok := t.floats[name]; ok {
		return values, nil
	}
	if _, ok := t.strings[name]; ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "column %q is not numeric", name)
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no column %q, have %v", name, t.order)
}

// Strings returns the named textual column.
func (t *Table) Strings(name string) ([]string, error) {
	if values, ok := t.strings[name]; ok {
		return values, nil
	}
	if _, ok := t.floats[name]; ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "column %q is not textual", name)
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no column %q, have %v", name, t.order)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.length
}

// Columns lists the column names in insertion order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.order...)
}

// MarshalJSON encodes the table as the column map ParseTable reads,
// so tables round-trip through JSON.
func (t *Table) MarshalJSON() ([]byte, error) {
	columns := make(map[string]any, len(t.order))
	for _, name := range t.order {
		if values, ok := t.floats[name]; ok {
			columns[name] = values
			continue
		}
		columns[name] = t.strings[name]
	}
	return json.Marshal(columns)
}

// LoadTable reads a table from a JSON file mapping column names to
// arrays, for example {"label": ["car", "bike"], "count": [10, 3]}.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read table %s", path)
	}
	return ParseTable(data)
}

// ParseTable decodes the JSON column map produced by the capture
// tooling. Columns are added in sorted name order since JSON objects
// carry no ordering.
func ParseTable(data []byte) (*Table, error) {
	var raw map[string][]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse table JSON")
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	t := NewTable()
	for _, name := range names {
		values := raw[name]
		if len(values) == 0 {
			if err := t.AddFloats(name, nil); err != nil {
				return nil, err
			}
			continue
		}
		switch values[0].(type) {
		case float64:
			column := make([]float64, len(values))
			for i, v := range values {
				f, ok := v.(float64)
				if !ok {
					return nil, errors.New(errors.ErrCodeInvalidInput,
						"column %q mixes numbers with %T", name, v)
				}
				column[i] = f
			}
			if err := t.AddFloats(name, column); err != nil {
				return nil, err
			}
		case string:
			column := make([]string, len(values))
			for i, v := range values {
				s, ok := v.(string)
				if !ok {
					return nil, errors.New(errors.ErrCodeInvalidInput,
						"column %q mixes strings with %T", name, v)
				}
				column[i] = s
			}
			if err := t.AddStrings(name, column); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has unsupported value type %T", name, values[0])
		}
	}
	return t, nil
}
