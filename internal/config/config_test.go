package config

import (
	"path/filepath"
	"testing"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}

	if cfg.Annotate.LineWidth != 15 {
		t.Errorf("Expected default line width 15, got %d", cfg.Annotate.LineWidth)
	}
	if cfg.Annotate.FontHeight != 100 {
		t.Errorf("Expected default font height 100, got %d", cfg.Annotate.FontHeight)
	}
	if cfg.Charts.Width != 1024 || cfg.Charts.Height != 512 {
		t.Errorf("Expected default chart size 1024x512, got %dx%d", cfg.Charts.Width, cfg.Charts.Height)
	}
	if cfg.Output.Format != "png" {
		t.Errorf("Expected default output format png, got %s", cfg.Output.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero line width", func(c *Config) { c.Annotate.LineWidth = 0 }},
		{"negative font height", func(c *Config) { c.Annotate.FontHeight = -1 }},
		{"zero chart width", func(c *Config) { c.Charts.Width = 0 }},
		{"zero cell height", func(c *Config) { c.Grid.CellHeight = 0 }},
		{"bad format", func(c *Config) { c.Output.Format = "tiff" }},
		{"zero quality", func(c *Config) { c.Output.Quality = 0 }},
		{"too high quality", func(c *Config) { c.Output.Quality = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidInput {
				t.Errorf("Expected invalid input code, got %s", errors.GetCode(err))
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Annotate.LineWidth = 7
	cfg.Output.Format = "webp"
	cfg.Output.Lossless = true

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Annotate.LineWidth != 7 {
		t.Errorf("Expected line width 7, got %d", loaded.Annotate.LineWidth)
	}
	if loaded.Output.Format != "webp" || !loaded.Output.Lossless {
		t.Errorf("Expected lossless webp output, got %+v", loaded.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	if errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("Expected a config path")
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("Expected config.json basename, got %s", path)
	}
}
