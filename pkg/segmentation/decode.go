// Package segmentation converts per-pixel class-ID maps into RGB
// visualizations using fixed dataset color tables.
package segmentation

import (
	"image"
	"image/color"
	"strings"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

var tables = map[string]map[int]color.NRGBA{
	Cityscapes: cityscapesColors,
}

// Datasets returns the supported dataset identifiers.
func Datasets() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	return names
}

// Decode converts a class-ID map into an opaque RGB image of the same
// size. Every pixel gets the table color for its class ID; IDs absent
// from the table stay black. Rows must all have the same length.
func Decode(classMap [][]int, dataset string) (*image.NRGBA, error) {
	table, ok := tables[dataset]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownDataset,
			"unknown dataset %q, supported: %s", dataset, strings.Join(Datasets(), ", "))
	}
	if len(classMap) == 0 || len(classMap[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "class map is empty")
	}

	w := len(classMap[0])
	h := len(classMap)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range classMap {
		if len(row) != w {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ragged class map: row %d has %d values, want %d", y, len(row), w)
		}
		i := out.PixOffset(0, y)
		for _, id := range row {
			c := table[id]
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 255
			i += 4
		}
	}
	return out, nil
}

// DecodeImage decodes a label map stored as a grayscale image, treating
// each pixel's gray value as its class ID.
func DecodeImage(img image.Image, dataset string) (*image.NRGBA, error) {
	if img == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image is nil")
	}

	b := img.Bounds()
	classMap := make([][]int, b.Dy())
	for y := range classMap {
		row := make([]int, b.Dx())
		for x := range row {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = int(g.Y)
		}
		classMap[y] = row
	}
	return Decode(classMap, dataset)
}
