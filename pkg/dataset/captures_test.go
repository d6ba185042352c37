package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

const sampleCaptures = `{
	"captures": [
		{
			"id": "cap-0",
			"filename": "RGB/rgb_0.png",
			"annotations": [
				{"values": [
					{"label_id": 1, "x": 10, "y": 20, "width": 30, "height": 40},
					{"label_id": 2, "x": 5, "y": 5, "width": 10, "height": 10, "score": 1.5}
				]},
				{"values": [
					{"label_id": 1, "x": 50, "y": 60, "width": 20, "height": 20, "score": -0.2}
				]}
			]
		},
		{
			"id": "cap-1",
			"filename": "RGB/rgb_1.png",
			"annotations": []
		}
	]
}`

const sampleDefinitions = `{
	"annotation_definitions": [
		{"spec": [
			{"label_id": 1, "label_name": "car"},
			{"label_id": 2, "label_name": "bike"}
		]}
	]
}`

func TestParseCaptures(t *testing.T) {
	captures, err := ParseCaptures([]byte(sampleCaptures))
	if err != nil {
		t.Fatalf("ParseCaptures failed: %v", err)
	}

	if len(captures) != 2 {
		t.Fatalf("Expected 2 captures, got %d", len(captures))
	}
	if captures[0].ID != "cap-0" || captures[0].Filename != "RGB/rgb_0.png" {
		t.Errorf("Unexpected capture header: %+v", captures[0])
	}
	if len(captures[0].Boxes) != 3 {
		t.Fatalf("Expected 3 boxes flattened across annotations, got %d", len(captures[0].Boxes))
	}

	first := captures[0].Boxes[0]
	if first.Label != 1 || first.X != 10 || first.Y != 20 || first.W != 30 || first.H != 40 {
		t.Errorf("Unexpected first box: %+v", first)
	}
	if first.Score != 0 {
		t.Errorf("Expected zero score when omitted, got %v", first.Score)
	}

	if captures[0].Boxes[1].Score != 1 {
		t.Errorf("Expected score clamped to 1, got %v", captures[0].Boxes[1].Score)
	}
	if captures[0].Boxes[2].Score != 0 {
		t.Errorf("Expected score clamped to 0, got %v", captures[0].Boxes[2].Score)
	}

	if len(captures[1].Boxes) != 0 {
		t.Errorf("Expected no boxes for empty capture, got %d", len(captures[1].Boxes))
	}
}

func TestParseCapturesInvalid(t *testing.T) {
	_, err := ParseCaptures([]byte("not json"))
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %v", err)
	}
}

func TestParseDefinitions(t *testing.T) {
	mapping, err := ParseDefinitions([]byte(sampleDefinitions))
	if err != nil {
		t.Fatalf("ParseDefinitions failed: %v", err)
	}

	if len(mapping) != 2 {
		t.Errorf("Expected 2 labels, got %d", len(mapping))
	}

	name, err := mapping.Name(1)
	if err != nil {
		t.Fatalf("Name failed: %v", err)
	}
	if name != "car" {
		t.Errorf("Expected car, got %s", name)
	}

	_, err = mapping.Name(9)
	if errors.GetCode(err) != errors.ErrCodeUnknownLabel {
		t.Errorf("Expected unknown label code, got %v", err)
	}
}

func TestParseDefinitionsEmpty(t *testing.T) {
	_, err := ParseDefinitions([]byte(`{"annotation_definitions": []}`))
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	capturesPath := filepath.Join(dir, "captures_000.json")
	definitionsPath := filepath.Join(dir, "annotation_definitions.json")
	if err := os.WriteFile(capturesPath, []byte(sampleCaptures), 0o644); err != nil {
		t.Fatalf("Failed to write captures: %v", err)
	}
	if err := os.WriteFile(definitionsPath, []byte(sampleDefinitions), 0o644); err != nil {
		t.Fatalf("Failed to write definitions: %v", err)
	}

	var source Source = FileSource{CapturesPath: capturesPath, DefinitionsPath: definitionsPath}

	captures, err := source.Captures(context.Background())
	if err != nil {
		t.Fatalf("Captures failed: %v", err)
	}
	if len(captures) != 2 {
		t.Errorf("Expected 2 captures, got %d", len(captures))
	}

	mapping, err := source.Definitions(context.Background())
	if err != nil {
		t.Fatalf("Definitions failed: %v", err)
	}
	if mapping[2] != "bike" {
		t.Errorf("Expected bike for label 2, got %s", mapping[2])
	}

	missing := FileSource{CapturesPath: filepath.Join(dir, "nope.json"), DefinitionsPath: definitionsPath}
	if _, err := missing.Captures(context.Background()); errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
}

func TestRemoteSource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/captures", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleCaptures))
	})
	mux.HandleFunc("/definitions", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleDefinitions))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	source, err := NewRemoteSource(server.URL+"/captures", server.URL+"/definitions")
	if err != nil {
		t.Fatalf("NewRemoteSource failed: %v", err)
	}

	captures, err := source.Captures(context.Background())
	if err != nil {
		t.Fatalf("Captures failed: %v", err)
	}
	if len(captures) != 2 {
		t.Errorf("Expected 2 captures, got %d", len(captures))
	}

	mapping, err := source.Definitions(context.Background())
	if err != nil {
		t.Fatalf("Definitions failed: %v", err)
	}
	if mapping[1] != "car" {
		t.Errorf("Expected car for label 1, got %s", mapping[1])
	}
}

func TestRemoteSourceErrors(t *testing.T) {
	if _, err := NewRemoteSource("ftp://host/captures.json", "http://host/defs.json"); err == nil {
		t.Error("Expected error for unsupported scheme")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	source, err := NewRemoteSource(server.URL+"/captures", server.URL+"/definitions")
	if err != nil {
		t.Fatalf("NewRemoteSource failed: %v", err)
	}
	if _, err := source.Captures(context.Background()); errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code for HTTP 404, got %v", err)
	}
}
