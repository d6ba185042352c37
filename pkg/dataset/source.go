package dataset

import "context"

// Source supplies captures and label definitions for one dataset,
// regardless of where they live.
type Source interface {
	// Captures returns every capture record of the dataset.
	Captures(ctx context.Context) ([]Capture, error)

	// Definitions returns the label index to name mapping.
	Definitions(ctx context.Context) (LabelMapping, error)
}

// FileSource reads captures and definitions from local JSON files.
type FileSource struct {
	CapturesPath    string
	DefinitionsPath string
}

// Captures implements Source.
func (s FileSource) Captures(_ context.Context) ([]Capture, error) {
	return LoadCaptures(s.CapturesPath)
}

// Definitions implements Source.
func (s FileSource) Definitions(_ context.Context) (LabelMapping, error) {
	return LoadDefinitions(s.DefinitionsPath)
}
