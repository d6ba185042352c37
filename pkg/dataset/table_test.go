package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

func TestTableAddAndGet(t *testing.T) {
	table := NewTable()
	if err := table.AddFloats("count", []float64{10, 3, 7}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddStrings("label", []string{"car", "bike", "person"}); err != nil {
		t.Fatalf("AddStrings failed: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.Len())
	}

	counts, err := table.Floats("count")
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if len(counts) != 3 || counts[0] != 10 || counts[2] != 7 {
		t.Errorf("Expected [10 3 7], got %v", counts)
	}

	labels, err := table.Strings("label")
	if err != nil {
		t.Fatalf("Strings failed: %v", err)
	}
	if labels[1] != "bike" {
		t.Errorf("Expected bike, got %s", labels[1])
	}

	columns := table.Columns()
	if len(columns) != 2 || columns[0] != "count" || columns[1] != "label" {
		t.Errorf("Expected [count label], got %v", columns)
	}
}

func TestTableLengthMismatch(t *testing.T) {
	table := NewTable()
	if err := table.AddFloats("count", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}

	err := table.AddStrings("label", []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for mismatched column length")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %s", errors.GetCode(err))
	}
}

func TestTableDuplicateColumn(t *testing.T) {
	table := NewTable()
	if err := table.AddFloats("count", []float64{1}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddStrings("count", []string{"a"}); err == nil {
		t.Fatal("Expected error for duplicate column name")
	}
	if err := table.AddFloats("", []float64{1}); err == nil {
		t.Fatal("Expected error for empty column name")
	}
}

func TestTableMissingColumn(t *testing.T) {
	table := NewTable()
	if err := table.AddFloats("count", []float64{1}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddStrings("label", []string{"a"}); err != nil {
		t.Fatalf("AddStrings failed: %v", err)
	}

	if _, err := table.Floats("missing"); errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
	if _, err := table.Floats("label"); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input for textual column, got %v", err)
	}
	if _, err := table.Strings("count"); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input for numeric column, got %v", err)
	}
}

func TestParseTable(t *testing.T) {
	data := []byte(`{"label": ["car", "bike"], "count": [10, 3]}`)

	table, err := ParseTable(data)
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.Len())
	}

	counts, err := table.Floats("count")
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if counts[0] != 10 || counts[1] != 3 {
		t.Errorf("Expected [10 3], got %v", counts)
	}

	labels, err := table.Strings("label")
	if err != nil {
		t.Fatalf("Strings failed: %v", err)
	}
	if labels[0] != "car" {
		t.Errorf("Expected car, got %s", labels[0])
	}

	columns := table.Columns()
	if len(columns) != 2 || columns[0] != "count" || columns[1] != "label" {
		t.Errorf("Expected sorted columns [count label], got %v", columns)
	}
}

func TestParseTableRejectsMixedColumn(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"c": [1, "x"]}`),
		[]byte(`{"c": ["x", 1]}`),
		[]byte(`{"c": [true]}`),
		[]byte(`[1, 2]`),
		[]byte(`not json`),
	}
	for _, data := range cases {
		if _, err := ParseTable(data); err == nil {
			t.Errorf("Expected error for %s", data)
		}
	}
}

func TestTableJSONRoundTrip(t *testing.T) {
	table := NewTable()
	if err := table.AddFloats("count", []float64{10, 3}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddStrings("label", []string{"car", "bike"}); err != nil {
		t.Fatalf("AddStrings failed: %v", err)
	}

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	parsed, err := ParseTable(data)
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	if parsed.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", parsed.Len())
	}
	counts, err := parsed.Floats("count")
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if counts[0] != 10 || counts[1] != 3 {
		t.Errorf("Expected [10 3], got %v", counts)
	}
	labels, err := parsed.Strings("label")
	if err != nil {
		t.Fatalf("Strings failed: %v", err)
	}
	if labels[0] != "car" || labels[1] != "bike" {
		t.Errorf("Expected [car bike], got %v", labels)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	if err := os.WriteFile(path, []byte(`{"count": [1, 2]}`), 0o644); err != nil {
		t.Fatalf("Failed to write table: %v", err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.Len())
	}

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.json"))
	if errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
}
