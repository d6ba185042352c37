// Package stats derives summary tables from capture annotations,
// ready to feed the chart renderers.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

// ObjectCounts tallies boxes per label across all captures. The
// result has label_id, label_name and count columns ordered by label
// index. Labels missing from the mapping keep a numeric placeholder
// name so partial definitions still chart.
func ObjectCounts(captures []dataset.Capture, labels dataset.LabelMapping) (*dataset.Table, error) {
	counts := make(map[int]int)
	for _, capture := range captures {
		for _, box := range capture.Boxes {
			counts[box.Label]++
		}
	}
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "captures contain no boxes")
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	idColumn := make([]float64, len(ids))
	nameColumn := make([]string, len(ids))
	countColumn := make([]float64, len(ids))
	for i, id := range ids {
		idColumn[i] = float64(id)
		name, ok := labels[id]
		if !ok {
			name = fmt.Sprintf("label %d", id)
		}
		nameColumn[i] = name
		countColumn[i] = float64(counts[id])
	}

	table := dataset.NewTable()
	if err := table.AddFloats("label_id", idColumn); err != nil {
		return nil, err
	}
	if err := table.AddStrings("label_name", nameColumn); err != nil {
		return nil, err
	}
	if err := table.AddFloats("count", countColumn); err != nil {
		return nil, err
	}
	return table, nil
}

// BoxSizes returns one row per box with its pixel diagonal and area.
func BoxSizes(captures []dataset.Capture) (*dataset.Table, error) {
	var diagonals, areas []float64
	for _, capture := range captures {
		for _, box := range capture.Boxes {
			diagonals = append(diagonals, math.Sqrt(box.W*box.W+box.H*box.H))
			areas = append(areas, box.Area())
		}
	}
	if len(diagonals) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "captures contain no boxes")
	}

	table := dataset.NewTable()
	if err := table.AddFloats("diagonal", diagonals); err != nil {
		return nil, err
	}
	if err := table.AddFloats("area", areas); err != nil {
		return nil, err
	}
	return table, nil
}

// PixelCoverage counts class map pixels per class. The result has
// class_id, pixels and fraction columns ordered by class index.
func PixelCoverage(classMap [][]int) (*dataset.Table, error) {
	counts := make(map[int]int)
	total := 0
	for _, row := range classMap {
		for _, id := range row {
			counts[id]++
			total++
		}
	}
	if total == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "class map is empty")
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	idColumn := make([]float64, len(ids))
	pixelColumn := make([]float64, len(ids))
	fractionColumn := make([]float64, len(ids))
	for i, id := range ids {
		idColumn[i] = float64(id)
		pixelColumn[i] = float64(counts[id])
		fractionColumn[i] = float64(counts[id]) / float64(total)
	}

	table := dataset.NewTable()
	if err := table.AddFloats("class_id", idColumn); err != nil {
		return nil, err
	}
	if err := table.AddFloats("pixels", pixelColumn); err != nil {
		return nil, err
	}
	if err := table.AddFloats("fraction", fractionColumn); err != nil {
		return nil, err
	}
	return table, nil
}
