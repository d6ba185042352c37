// Package config holds the persisted CLI configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/86sanj/datasetinsights/pkg/annotate"
	"github.com/86sanj/datasetinsights/pkg/charts"
	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/grid"
	"github.com/86sanj/datasetinsights/pkg/imageio"
)

// Config holds the application configuration
type Config struct {
	Annotate AnnotateConfig `json:"annotate"`
	Charts   ChartsConfig   `json:"charts"`
	Grid     GridConfig     `json:"grid"`
	Output   OutputConfig   `json:"output"`
}

// AnnotateConfig holds configuration for box and label drawing
type AnnotateConfig struct {
	LineWidth  int `json:"line_width"`
	FontHeight int `json:"font_height"`
}

// ChartsConfig holds the chart canvas size
type ChartsConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridConfig holds the grid cell geometry
type GridConfig struct {
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Format    string `json:"format"`
	Quality   int    `json:"quality"`
	Lossless  bool   `json:"lossless"`
	OutputDir string `json:"output_dir"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Annotate: AnnotateConfig{
			LineWidth:  annotate.DefaultLineWidth,
			FontHeight: annotate.DefaultFontHeight,
		},
		Charts: ChartsConfig{
			Width:  charts.DefaultWidth,
			Height: charts.DefaultHeight,
		},
		Grid: GridConfig{
			CellWidth:  grid.DefaultCellWidth,
			CellHeight: grid.DefaultCellHeight,
		},
		Output: OutputConfig{
			Format:    "png",
			Quality:   imageio.DefaultQuality,
			Lossless:  false,
			OutputDir: "./output",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read config file")
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse config file")
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create config directory")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to marshal config")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Annotate.LineWidth < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "annotate.line_width must be positive")
	}

	if c.Annotate.FontHeight < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "annotate.font_height must be positive")
	}

	if c.Charts.Width < 1 || c.Charts.Height < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "charts.width and charts.height must be positive")
	}

	if c.Grid.CellWidth < 1 || c.Grid.CellHeight < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "grid.cell_width and grid.cell_height must be positive")
	}

	switch c.Output.Format {
	case "png", "jpg", "jpeg", "webp":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "output.format must be one of png, jpg, jpeg, webp")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "output.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "datasetinsights", "config.json")
}
