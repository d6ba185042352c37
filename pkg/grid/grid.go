// Package grid composes multiple images into a single row-major grid
// image, optionally with a title strip above every cell.
package grid

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/86sanj/datasetinsights/pkg/annotate"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

// Default cell geometry used when Options leaves the sizes unset.
const (
	DefaultCellWidth  = 320
	DefaultCellHeight = 240
)

// titleStripHeight is the vertical space reserved above each cell when
// titles are requested.
const titleStripHeight = 24

// titleFontHeight leaves a little breathing room inside the strip.
const titleFontHeight = 18

// Options controls the grid layout.
type Options struct {
	// CellWidth and CellHeight size every cell. Source images are
	// stretched to fit, aspect ratio is not preserved. Non-positive
	// values fall back to the package defaults.
	CellWidth  int
	CellHeight int

	// Titles are consumed in row-major order, one per cell. A nil
	// slice disables the title strips entirely; an empty string skips
	// the text but keeps the strip so all rows stay the same height.
	Titles []string

	// Grayscale converts every cell before placement.
	Grayscale bool

	// Background fills the canvas behind short rows and title strips.
	// The zero value renders white.
	Background color.NRGBA
}

// Compose lays the given images out on a single canvas, one row per
// inner slice. Ragged rows are allowed; missing cells show the
// background color.
func Compose(rows [][]image.Image, opts Options) (*image.NRGBA, error) {
	cellW := opts.CellWidth
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	cellH := opts.CellHeight
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}

	cols := 0
	cells := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
		cells += len(row)
	}
	if cells == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid needs at least one image")
	}

	strip := 0
	if opts.Titles != nil {
		strip = titleStripHeight
	}

	background := opts.Background
	if background == (color.NRGBA{}) {
		background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	canvas := imaging.New(cols*cellW, len(rows)*(cellH+strip), background)

	var labeler *annotate.Annotator
	if strip > 0 {
		labeler = annotate.NewWithConfig(annotate.Config{FontHeight: titleFontHeight})
	}

	cell := 0
	for r, row := range rows {
		for c, src := range row {
			if src == nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "grid cell (%d,%d) is nil", r, c)
			}

			resized := imaging.Resize(src, cellW, cellH, imaging.Lanczos)
			if opts.Grayscale {
				resized = imaging.Grayscale(resized)
			}

			x := c * cellW
			y := r*(cellH+strip) + strip
			draw.Draw(canvas, image.Rect(x, y, x+cellW, y+cellH), resized, image.Point{}, draw.Src)

			if strip > 0 && cell < len(opts.Titles) && opts.Titles[cell] != "" {
				if err := drawTitle(canvas, labeler, opts.Titles[cell], x, y-strip, cellW, background); err != nil {
					return nil, err
				}
			}
			cell++
		}
	}

	return canvas, nil
}

// drawTitle renders the text into the strip above a cell, scaled down
// to fit and centered horizontally.
func drawTitle(canvas *image.NRGBA, labeler *annotate.Annotator, text string, x, y, cellW int, background color.NRGBA) error {
	raster, err := labeler.RenderLabel(text, color.NRGBA{A: 255}, background)
	if err != nil {
		return err
	}

	fitted := imaging.Fit(raster, cellW, titleStripHeight, imaging.Lanczos)
	w := fitted.Bounds().Dx()
	h := fitted.Bounds().Dy()

	left := x + (cellW-w)/2
	top := y + (titleStripHeight-h)/2
	draw.Draw(canvas, image.Rect(left, top, left+w, top+h), fitted, image.Point{}, draw.Src)
	return nil
}
