// Package annotate draws bounding boxes and text labels onto images.
//
// Colors come from a fixed 15-entry palette. When no explicit color is
// given, a label's color is derived from a stable hash of the label text,
// so the same class always renders in the same color within and across
// images.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"

	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/types"
)

// Default drawing parameters.
const (
	DefaultLineWidth  = 15
	DefaultFontHeight = 100
)

// Config holds drawing configuration for an Annotator.
type Config struct {
	LineWidth  int     // outline stroke width in pixels
	FontHeight float64 // label text size in points
}

// Annotator draws bounding boxes and text labels onto images.
type Annotator struct {
	config Config
}

// New creates a new Annotator with default configuration.
func New() *Annotator {
	return &Annotator{
		config: Config{
			LineWidth:  DefaultLineWidth,
			FontHeight: DefaultFontHeight,
		},
	}
}

// NewWithConfig creates a new Annotator with custom configuration.
// Non-positive values fall back to the defaults.
func NewWithConfig(config Config) *Annotator {
	if config.LineWidth <= 0 {
		config.LineWidth = DefaultLineWidth
	}
	if config.FontHeight <= 0 {
		config.FontHeight = DefaultFontHeight
	}
	return &Annotator{config: config}
}

// DrawBox draws one rectangle outline, optionally with a text label, onto
// img. The image is mutated in place and also returned. An empty label
// means no label; with a label and no colorName the label's deterministic
// palette color is used, and an explicit colorName must name a palette
// entry. Passing neither a label nor a color is an error. Validation and
// label rendering happen before the first pixel write, so a failed call
// draws nothing.
func (a *Annotator) DrawBox(img image.Image, left, top, right, bottom float64, label, colorName string) (*image.NRGBA, error) {
	buf, ok := img.(*image.NRGBA)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image must be an *image.NRGBA pixel buffer, got %T", img)
	}
	l, err := toPixel("left", left)
	if err != nil {
		return nil, err
	}
	t, err := toPixel("top", top)
	if err != nil {
		return nil, err
	}
	r, err := toPixel("right", right)
	if err != nil {
		return nil, err
	}
	btm, err := toPixel("bottom", bottom)
	if err != nil {
		return nil, err
	}
	if label != "" && !utf8.ValidString(label) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "label is not valid UTF-8")
	}

	entry, err := resolveColor(label, colorName)
	if err != nil {
		return nil, err
	}

	var raster *image.NRGBA
	if label != "" {
		raster, err = a.RenderLabel(label, entry.text, entry.box)
		if err != nil {
			return nil, err
		}
	}

	strokeRect(buf, l, t, r, btm, a.config.LineWidth, entry.box)

	if raster != nil {
		rw := raster.Bounds().Dx()
		rh := raster.Bounds().Dy()
		bg, origin := labelPlacement(l, t, buf.Bounds().Dx(), rw, rh)
		fillRect(buf, bg, entry.box)
		dst := image.Rect(origin.X, origin.Y, origin.X+rw, origin.Y+rh)
		draw.Draw(buf, dst, raster, raster.Bounds().Min, draw.Src)
	}
	return buf, nil
}

// DrawBoxes draws every box onto a copy of img, in input order; the
// caller's image is never mutated. Display names come from labels keyed
// by Box.Label. When colors is non-nil it must supply one palette name
// per box, and each label gets the box confidence appended as a
// percentage with two decimals.
func (a *Annotator) DrawBoxes(img image.Image, boxes []types.Box, labels map[int]string, colors []string) (*image.NRGBA, error) {
	if img == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image is nil")
	}
	if colors != nil && len(colors) != len(boxes) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "got %d colors for %d boxes", len(colors), len(boxes))
	}

	out := imaging.Clone(img)
	for i, box := range boxes {
		name, ok := labels[box.Label]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel, "label index %d not in mapping", box.Label)
		}
		colorName := ""
		if colors != nil {
			name = fmt.Sprintf("%s: % .2f%%", name, box.Score*100)
			colorName = colors[i]
		}
		if _, err := a.DrawBox(out, box.Left(), box.Top(), box.Right(), box.Bottom(), name, colorName); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RenderLabel rasterizes text at the configured font height and colorizes
// the glyph coverage: each channel interpolates from background to
// foreground. The raster is sized to the text advance width and the face
// ascent plus descent.
func (a *Annotator) RenderLabel(text string, foreground, background color.NRGBA) (*image.NRGBA, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	fc := newFace(f, a.config.FontHeight)
	defer fc.Close()
	return colorize(renderMask(fc, text), foreground, background), nil
}

// toPixel truncates a coordinate to whole pixels, rejecting NaN and ±Inf.
func toPixel(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s coordinate is not a finite number: %v", name, v)
	}
	return int(v), nil
}

func resolveColor(label, colorName string) (paletteEntry, error) {
	if colorName == "" {
		if label == "" {
			return paletteEntry{}, errors.New(errors.ErrCodeInvalidInput, "either a label or a color name is required")
		}
		colorName = ColorForLabel(label)
	}
	entry, ok := palette[colorName]
	if !ok {
		return paletteEntry{}, errors.New(errors.ErrCodeUnknownColor,
			"unknown color %q, valid colors: %s", colorName, strings.Join(Colors(), ", "))
	}
	return entry, nil
}
