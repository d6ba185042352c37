package dataset

import (
	"encoding/json"
	"os"

	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/types"
)

// Capture describes one rendered frame and the bounding boxes attached
// to it across all of its annotations.
type Capture struct {
	ID       string
	Filename string
	Boxes    []types.Box
}

// LabelMapping maps integer label indices to display names.
type LabelMapping map[int]string

// Name returns the display name for a label index.
func (m LabelMapping) Name(id int) (string, error) {
	name, ok := m[id]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownLabel, "label index %d not in mapping", id)
	}
	return name, nil
}

type captureFile struct {
	Captures []struct {
		ID          string `json:"id"`
		Filename    string `json:"filename"`
		Annotations []struct {
			Values []types.Box `json:"values"`
		} `json:"annotations"`
	} `json:"captures"`
}

type definitionFile struct {
	AnnotationDefinitions []struct {
		Spec []struct {
			LabelID   int    `json:"label_id"`
			LabelName string `json:"label_name"`
		} `json:"spec"`
	} `json:"annotation_definitions"`
}

// LoadCaptures reads a captures JSON file as emitted by the synthetic
// data pipeline.
func LoadCaptures(path string) ([]Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read captures %s", path)
	}
	return ParseCaptures(data)
}

// ParseCaptures decodes capture records, flattening the boxes of all
// annotations into one slice per capture. Scores are clamped to [0,1]
// since exported confidences occasionally drift outside the range.
func ParseCaptures(data []byte) ([]Capture, error) {
	var file captureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse captures JSON")
	}

	captures := make([]Capture, 0, len(file.Captures))
	for _, c := range file.Captures {
		entry := Capture{ID: c.ID, Filename: c.Filename}
		for _, annotation := range c.Annotations {
			for _, box := range annotation.Values {
				if box.Score < 0 {
					box.Score = 0
				} else if box.Score > 1 {
					box.Score = 1
				}
				entry.Boxes = append(entry.Boxes, box)
			}
		}
		captures = append(captures, entry)
	}
	return captures, nil
}

// LoadDefinitions reads an annotation definition file and returns the
// label index to name mapping.
func LoadDefinitions(path string) (LabelMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read definitions %s", path)
	}
	return ParseDefinitions(data)
}

// ParseDefinitions decodes annotation definitions, merging the specs
// of every definition into a single mapping.
func ParseDefinitions(data []byte) (LabelMapping, error) {
	var file definitionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse definitions JSON")
	}

	mapping := make(LabelMapping)
	for _, def := range file.AnnotationDefinitions {
		for _, spec := range def.Spec {
			mapping[spec.LabelID] = spec.LabelName
		}
	}
	if len(mapping) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "definitions contain no labels")
	}
	return mapping, nil
}
