package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/86sanj/datasetinsights/pkg/charts"
	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render dataset statistics charts",
	}

	cmd.AddCommand(newChartBarCmd())
	cmd.AddCommand(newChartHistogramCmd())
	cmd.AddCommand(newChartRotationCmd())

	return cmd
}

// chartBarOpts holds the command-line flags for chart bar.
type chartBarOpts struct {
	data      string // table JSON file
	x         string // category column
	y         string // value column
	title     string
	xTitle    string
	yTitle    string
	tickAngle int
	width     int
	height    int
	output    string
}

func newChartBarCmd() *cobra.Command {
	var opts chartBarOpts

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Render a bar chart from a table JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.data == "" || opts.x == "" || opts.y == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--data, --x and --y are required")
			}
			return runChartBar(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "table JSON file")
	cmd.Flags().StringVar(&opts.x, "x", "", "category column")
	cmd.Flags().StringVar(&opts.y, "y", "", "value column")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.xTitle, "x-title", "", "x axis caption")
	cmd.Flags().StringVar(&opts.yTitle, "y-title", "", "y axis caption")
	cmd.Flags().IntVar(&opts.tickAngle, "tick-angle", 0, "bar label rotation in degrees")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path")

	return cmd
}

func runChartBar(cmd *cobra.Command, opts *chartBarOpts) error {
	logger := loggerFromContext(cmd.Context())

	renderer, table, err := chartSetup(opts.data, opts.width, opts.height)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	png, err := renderer.Bar(table, charts.BarOptions{
		X:         opts.x,
		Y:         opts.y,
		Title:     opts.title,
		XTitle:    opts.xTitle,
		YTitle:    opts.yTitle,
		TickAngle: opts.tickAngle,
	})
	if err != nil {
		return err
	}

	output := chartOutput(opts.output, opts.data, "bar")
	if err := writeChart(output, png); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered bar chart over %d rows", table.Len()))
	logFileWritten(logger, output)
	return nil
}

// chartHistogramOpts holds the command-line flags for chart histogram.
type chartHistogramOpts struct {
	data       string
	x          string
	title      string
	xTitle     string
	yTitle     string
	bins       int
	maxSamples int
	width      int
	height     int
	output     string
}

func newChartHistogramCmd() *cobra.Command {
	var opts chartHistogramOpts

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Render a histogram from a table JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.data == "" || opts.x == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--data and --x are required")
			}
			return runChartHistogram(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "table JSON file")
	cmd.Flags().StringVar(&opts.x, "x", "", "numeric column to bin")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.xTitle, "x-title", "", "x axis caption")
	cmd.Flags().StringVar(&opts.yTitle, "y-title", "", "y axis caption")
	cmd.Flags().IntVar(&opts.bins, "bins", 0, "bin count (default 20)")
	cmd.Flags().IntVar(&opts.maxSamples, "max-samples", 0, "cap on binned values, keeping every k-th")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path")

	return cmd
}

func runChartHistogram(cmd *cobra.Command, opts *chartHistogramOpts) error {
	logger := loggerFromContext(cmd.Context())

	renderer, table, err := chartSetup(opts.data, opts.width, opts.height)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	png, err := renderer.Histogram(table, charts.HistogramOptions{
		X:          opts.x,
		Title:      opts.title,
		XTitle:     opts.xTitle,
		YTitle:     opts.yTitle,
		Bins:       opts.bins,
		MaxSamples: opts.maxSamples,
	})
	if err != nil {
		return err
	}

	output := chartOutput(opts.output, opts.data, "histogram")
	if err := writeChart(output, png); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered histogram over %d rows", table.Len()))
	logFileWritten(logger, output)
	return nil
}

// chartRotationOpts holds the command-line flags for chart rotation.
type chartRotationOpts struct {
	data       string
	x          string
	y          string
	z          string
	title      string
	maxSamples int
	width      int
	height     int
	output     string
}

func newChartRotationCmd() *cobra.Command {
	var opts chartRotationOpts

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Render an orientation scatter from Euler angle columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.data == "" || opts.x == "" || opts.y == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--data, --x and --y are required")
			}
			return runChartRotation(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "table JSON file")
	cmd.Flags().StringVar(&opts.x, "x", "", "x rotation column (degrees)")
	cmd.Flags().StringVar(&opts.y, "y", "", "y rotation column (degrees)")
	cmd.Flags().StringVar(&opts.z, "z", "", "z rotation column (degrees, optional)")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().IntVar(&opts.maxSamples, "max-samples", 0, "cap on plotted rows, keeping every k-th")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path")

	return cmd
}

func runChartRotation(cmd *cobra.Command, opts *chartRotationOpts) error {
	logger := loggerFromContext(cmd.Context())

	renderer, table, err := chartSetup(opts.data, opts.width, opts.height)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	png, err := renderer.Rotation(table, charts.RotationOptions{
		X:          opts.x,
		Y:          opts.y,
		Z:          opts.z,
		Title:      opts.title,
		MaxSamples: opts.maxSamples,
	})
	if err != nil {
		return err
	}

	output := chartOutput(opts.output, opts.data, "rotation")
	if err := writeChart(output, png); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered rotation scatter over %d rows", table.Len()))
	logFileWritten(logger, output)
	return nil
}

// chartSetup loads the table and builds a renderer sized from flags
// with config fallbacks.
func chartSetup(data string, width, height int) (*charts.Renderer, *dataset.Table, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	table, err := dataset.LoadTable(data)
	if err != nil {
		return nil, nil, err
	}

	renderer := charts.NewWithConfig(charts.Config{
		Width:  intOr(width, cfg.Charts.Width),
		Height: intOr(height, cfg.Charts.Height),
	})
	return renderer, table, nil
}

// chartOutput derives the output path from the data file when --output
// is not given, e.g. counts.json becomes counts_bar.png.
func chartOutput(output, data, kind string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(data, filepath.Ext(data)) + "_" + kind + ".png"
}

func writeChart(path string, png []byte) error {
	if err := os.WriteFile(path, png, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to write chart")
	}
	return nil
}
