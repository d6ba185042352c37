package charts

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// seriesColors returns n distinct fill colors, evenly spaced around the
// HSV hue wheel at fixed saturation and value.
func seriesColors(n int) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		hue := float64(i) * 360 / float64(n)
		r, g, b := colorful.Hsv(hue, 0.65, 0.85).RGB255()
		out[i] = drawing.Color{R: r, G: g, B: b, A: 255}
	}
	return out
}
