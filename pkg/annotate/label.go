package annotate

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

var (
	fontOnce sync.Once
	baseFont *truetype.Font
	fontErr  error
)

// loadFont parses the embedded Go Regular typeface once per process. The
// parsed font is immutable and shared; faces derived from it keep mutable
// caches, so every caller creates its own face.
func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		baseFont, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, fontErr, "parse embedded font")
	}
	return baseFont, nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// renderMask rasterizes text into a grayscale coverage mask sized to the
// text advance width and the face ascent plus descent, baseline at the
// ascent.
func renderMask(fc font.Face, text string) *image.Alpha {
	m := fc.Metrics()
	w := font.MeasureString(fc, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: fc,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	return mask
}

// colorize turns a coverage mask into an RGB raster by interpolating each
// channel between background and foreground, bg + (fg-bg)*mask/255, with
// the result truncated to uint8.
func colorize(mask *image.Alpha, fg, bg color.NRGBA) *image.NRGBA {
	b := mask.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := float64(mask.AlphaAt(x, y).A) / 255
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(float64(bg.R) + (float64(fg.R)-float64(bg.R))*a)
			out.Pix[i+1] = uint8(float64(bg.G) + (float64(fg.G)-float64(bg.G))*a)
			out.Pix[i+2] = uint8(float64(bg.B) + (float64(fg.B)-float64(bg.B))*a)
			out.Pix[i+3] = 255
		}
	}
	return out
}

// labelPlacement computes the filled background rectangle and the raster
// blit origin for a label sitting on top of a box edge. The rectangle is
// one pixel wider and taller than the raster; its bottom edge rests on
// top and its left edge is clamped to [0, imageWidth-rectWidth]. Without
// enough headroom above row 0, placement flips below the top edge.
func labelPlacement(left, top, imageWidth, labelW, labelH int) (bg image.Rectangle, origin image.Point) {
	rectH := labelH + 1
	rectW := labelW + 1
	rectBottom := top
	rectLeft := max(0, min(left-1, imageWidth-rectW))
	rectTop := rectBottom - rectH
	labelTop := rectTop + 1
	if rectTop < 0 {
		rectTop = top
		rectBottom = rectTop + labelH + 1
		labelTop = rectTop
	}
	rectRight := rectLeft + rectW
	// corner coordinates are inclusive, image.Rectangle is exclusive
	bg = image.Rect(rectLeft, rectTop, rectRight+1, rectBottom+1)
	origin = image.Pt(rectLeft+1, labelTop)
	return bg, origin
}
