// Package charts renders dataset statistics tables as PNG charts.
package charts

import (
	"bytes"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

// Default chart canvas size.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// DefaultBins is the histogram bin count when HistogramOptions leaves
// it unset.
const DefaultBins = 20

// Config controls the canvas size of every rendered chart.
type Config struct {
	Width  int
	Height int
}

// Renderer turns statistics tables into PNG charts.
type Renderer struct {
	config Config
}

// New creates a renderer with the default canvas size.
func New() *Renderer {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a renderer with a custom canvas size.
// Non-positive dimensions fall back to the defaults.
func NewWithConfig(config Config) *Renderer {
	if config.Width <= 0 {
		config.Width = DefaultWidth
	}
	if config.Height <= 0 {
		config.Height = DefaultHeight
	}
	return &Renderer{config: config}
}

// BarOptions selects the columns and captions for a bar chart.
type BarOptions struct {
	// X names the category column. String and numeric columns both
	// work; numeric values are formatted as labels.
	X string
	// Y names the numeric value column.
	Y string

	Title string
	// XTitle captions the x axis. Bar charts carry no x axis name
	// slot, so it joins the title line.
	XTitle string
	// YTitle captions the y axis.
	YTitle string
	// TickAngle rotates the bar labels, in degrees.
	TickAngle int
}

// HistogramOptions selects the column and binning for a histogram.
type HistogramOptions struct {
	// X names the numeric column to bin.
	X string

	Title  string
	XTitle string
	// YTitle captions the y axis; empty defaults to "count".
	YTitle string

	// Bins is the equal-width bin count over [min, max].
	// Non-positive falls back to DefaultBins.
	Bins int

	// MaxSamples caps the number of binned values by keeping every
	// k-th value. Zero plots everything.
	MaxSamples int
}

// Bar renders one bar per table row, each with its own fill color.
func (r *Renderer) Bar(table *dataset.Table, opts BarOptions) ([]byte, error) {
	labels, err := columnLabels(table, opts.X)
	if err != nil {
		return nil, err
	}
	values, err := table.Floats(opts.Y)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bar chart needs at least one row")
	}

	colors := seriesColors(len(values))
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		if !isFinite(v) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has a non-finite value at row %d", opts.Y, i)
		}
		bars[i] = chart.Value{
			Value: v,
			Label: labels[i],
			Style: chart.Style{FillColor: colors[i], StrokeColor: colors[i]},
		}
	}

	return r.renderBars(bars, joinTitles(opts.Title, opts.XTitle), opts.YTitle, opts.TickAngle)
}

// Histogram bins a numeric column into equal-width bins and renders
// one bar per bin, labeled with the bin center.
func (r *Renderer) Histogram(table *dataset.Table, opts HistogramOptions) ([]byte, error) {
	values, err := table.Floats(opts.X)
	if err != nil {
		return nil, err
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "column %q has no finite values", opts.X)
	}

	finite = downsample(finite, opts.MaxSamples)

	bins := opts.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	counts, centers := bin(finite, bins)

	fill := seriesColors(1)[0]
	bars := make([]chart.Value, len(counts))
	for i, count := range counts {
		bars[i] = chart.Value{
			Value: count,
			Label: strconv.FormatFloat(centers[i], 'g', 4, 64),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	yTitle := opts.YTitle
	if yTitle == "" {
		yTitle = "count"
	}
	return r.renderBars(bars, joinTitles(opts.Title, opts.XTitle), yTitle, 0)
}

// renderBars draws a bar chart with an explicit y range so flat data
// still renders.
func (r *Renderer) renderBars(bars []chart.Value, title, yTitle string, tickAngle int) ([]byte, error) {
	lower, upper := 0.0, 0.0
	for _, bar := range bars {
		if bar.Value < lower {
			lower = bar.Value
		}
		if bar.Value > upper {
			upper = bar.Value
		}
	}
	if upper == lower {
		upper = lower + 1
	}
	upper += (upper - lower) * 0.05

	graph := chart.BarChart{
		Title:      title,
		Width:      r.config.Width,
		Height:     r.config.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 20}},
		XAxis:      chart.Style{TextRotationDegrees: float64(tickAngle)},
		YAxis: chart.YAxis{
			Name:  yTitle,
			Range: &chart.ContinuousRange{Min: lower, Max: upper},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to render bar chart")
	}
	return buf.Bytes(), nil
}

// columnLabels reads a column as display labels, formatting numeric
// columns on the fly.
func columnLabels(table *dataset.Table, name string) ([]string, error) {
	labels, err := table.Strings(name)
	if err == nil {
		return labels, nil
	}
	if errors.GetCode(err) == errors.ErrCodeNotFound {
		return nil, err
	}

	values, err := table.Floats(name)
	if err != nil {
		return nil, err
	}
	labels = make([]string, len(values))
	for i, v := range values {
		labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return labels, nil
}

// bin distributes values over equal-width bins spanning [min, max].
// Identical values collapse to a single bin.
func bin(values []float64, bins int) (counts, centers []float64) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []float64{float64(len(values))}, []float64{lo}
	}

	width := (hi - lo) / float64(bins)
	counts = make([]float64, bins)
	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = lo + width*(float64(i)+0.5)
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, centers
}

// sampleIndices returns every k-th index so at most limit rows remain.
// A non-positive limit keeps everything.
func sampleIndices(length, limit int) []int {
	step := 1
	if limit > 0 && length > limit {
		step = (length + limit - 1) / limit
	}
	indices := make([]int, 0, (length+step-1)/step)
	for i := 0; i < length; i += step {
		indices = append(indices, i)
	}
	return indices
}

func downsample(values []float64, limit int) []float64 {
	indices := sampleIndices(len(values), limit)
	if len(indices) == len(values) {
		return values
	}
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

func joinTitles(title, xTitle string) string {
	switch {
	case title == "":
		return xTitle
	case xTitle == "":
		return title
	default:
		return title + " (" + xTitle + ")"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
