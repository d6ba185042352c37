// Package datasetinsights provides visualization helpers for synthetic
// computer-vision datasets.
//
// This package combines annotation rendering, segmentation decoding and
// statistics charting so the frames and labels of a generated dataset can
// be inspected visually without leaving Go.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//		"os"
//
//		"github.com/86sanj/datasetinsights"
//		"github.com/86sanj/datasetinsights/pkg/dataset"
//	)
//
//	func main() {
//		kit := datasetinsights.New()
//
//		// Load captures and label definitions exported by the simulation
//		captures, err := dataset.LoadCaptures("captures_000.json")
//		if err != nil {
//			log.Fatal(err)
//		}
//		labels, err := dataset.LoadDefinitions("annotation_definitions.json")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Draw the first capture's boxes onto its frame
//		img, err := kit.LoadImage(captures[0].Filename)
//		if err != nil {
//			log.Fatal(err)
//		}
//		annotated, err := kit.DrawBoxes(img, captures[0].Boxes, labels, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := kit.SaveImage(annotated, "annotated.png"); err != nil {
//			log.Fatal(err)
//		}
//
//		// Chart the per-label object counts
//		png, err := kit.CountChart(captures, labels, "Object counts")
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := os.WriteFile("counts.png", png, 0644); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The library is organized into focused packages:
//
// 1. Annotate (pkg/annotate): bounding box outlines and text labels
// 2. Segmentation (pkg/segmentation): class map decoding with dataset palettes
// 3. Charts (pkg/charts): bar charts, histograms and rotation scatters
// 4. Grid (pkg/grid): grid composition for side-by-side comparison
// 5. Stats (pkg/stats): statistics tables derived from captures
// 6. Dataset (pkg/dataset): capture, definition and table loading
// 7. ImageIO (pkg/imageio): image loading and saving (png/jpg/webp)
//
// Features:
//
//   - Deterministic per-label colors so a class looks the same everywhere
//   - Cityscapes palette decoding for segmentation label maps
//   - Object count, box size and orientation charts rendered to PNG
//   - Grids of frames with optional titles and grayscale conversion
//   - Local file and HTTP dataset sources behind one interface
//   - CLI tool for annotating, decoding and charting from the shell
//
// Annotation colors are chosen by a stable hash of the label text, so
// the same class renders in the same color within and across images.
// Charts are plain PNG bytes and carry no drawing state, which keeps a
// single Toolkit safe to share between goroutines.
package datasetinsights

import (
	"image"
	"io"
	"path/filepath"

	"github.com/86sanj/datasetinsights/pkg/annotate"
	"github.com/86sanj/datasetinsights/pkg/charts"
	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/grid"
	"github.com/86sanj/datasetinsights/pkg/imageio"
	"github.com/86sanj/datasetinsights/pkg/segmentation"
	"github.com/86sanj/datasetinsights/pkg/stats"
	"github.com/86sanj/datasetinsights/pkg/types"
)

// Version of the datasetinsights library
const Version = "0.1.0"

// Toolkit provides a high-level interface over the visualization packages.
type Toolkit struct {
	annotator *annotate.Annotator
	renderer  *charts.Renderer
}

// New creates a new Toolkit with default configuration.
func New() *Toolkit {
	return &Toolkit{
		annotator: annotate.New(),
		renderer:  charts.New(),
	}
}

// NewWithConfig creates a new Toolkit with custom configuration.
func NewWithConfig(annotateConfig annotate.Config, chartsConfig charts.Config) *Toolkit {
	return &Toolkit{
		annotator: annotate.NewWithConfig(annotateConfig),
		renderer:  charts.NewWithConfig(chartsConfig),
	}
}

// DatasetSummary bundles the statistics tables for a set of captures.
type DatasetSummary struct {
	Captures int            `json:"captures"`
	Boxes    int            `json:"boxes"`
	Counts   *dataset.Table `json:"counts"`
	Sizes    *dataset.Table `json:"sizes"`
}

// LoadImage loads an image from file.
func (t *Toolkit) LoadImage(path string) (image.Image, error) {
	return imageio.Load(path)
}

// LoadImageFromReader loads an image from an io.Reader.
func (t *Toolkit) LoadImageFromReader(reader io.Reader) (image.Image, error) {
	return imageio.LoadFromReader(reader)
}

// SaveImage saves an image to file, inferring the format from the extension.
func (t *Toolkit) SaveImage(img image.Image, path string) error {
	return imageio.Save(img, path, imageio.Options{})
}

// GetImageInfo returns basic information about an image.
func (t *Toolkit) GetImageInfo(img image.Image) imageio.Info {
	return imageio.GetInfo(img)
}

// DrawBoxes draws bounding boxes onto a copy of img. See
// annotate.Annotator.DrawBoxes for the color rules.
func (t *Toolkit) DrawBoxes(img image.Image, boxes []types.Box, labels dataset.LabelMapping, colors []string) (*image.NRGBA, error) {
	return t.annotator.DrawBoxes(img, boxes, labels, colors)
}

// DecodeSegmentation converts a segmentation label map image into a
// colored visualization using the named dataset palette.
func (t *Toolkit) DecodeSegmentation(img image.Image, datasetName string) (*image.NRGBA, error) {
	return segmentation.DecodeImage(img, datasetName)
}

// ComposeGrid arranges rows of images into a single grid image.
func (t *Toolkit) ComposeGrid(rows [][]image.Image, opts grid.Options) (*image.NRGBA, error) {
	return grid.Compose(rows, opts)
}

// Summarize computes the statistics tables for a set of captures.
func (t *Toolkit) Summarize(captures []dataset.Capture, labels dataset.LabelMapping) (DatasetSummary, error) {
	counts, err := stats.ObjectCounts(captures, labels)
	if err != nil {
		return DatasetSummary{}, err
	}
	sizes, err := stats.BoxSizes(captures)
	if err != nil {
		return DatasetSummary{}, err
	}

	boxes := 0
	for _, c := range captures {
		boxes += len(c.Boxes)
	}
	return DatasetSummary{
		Captures: len(captures),
		Boxes:    boxes,
		Counts:   counts,
		Sizes:    sizes,
	}, nil
}

// CountChart renders a bar chart of per-label object counts.
func (t *Toolkit) CountChart(captures []dataset.Capture, labels dataset.LabelMapping, title string) ([]byte, error) {
	counts, err := stats.ObjectCounts(captures, labels)
	if err != nil {
		return nil, err
	}
	return t.renderer.Bar(counts, charts.BarOptions{
		X:      "label_name",
		Y:      "count",
		Title:  title,
		YTitle: "count",
	})
}

// SizeHistogram renders a histogram of bounding box sizes. The column is
// "diagonal" or "area".
func (t *Toolkit) SizeHistogram(captures []dataset.Capture, column, title string) ([]byte, error) {
	sizes, err := stats.BoxSizes(captures)
	if err != nil {
		return nil, err
	}
	return t.renderer.Histogram(sizes, charts.HistogramOptions{
		X:      column,
		Title:  title,
		XTitle: column,
	})
}

// AnnotateFile is a convenience function that loads an image and its
// dataset metadata, draws the matching capture's boxes and saves the
// result. The capture is matched by base filename.
func (t *Toolkit) AnnotateFile(imagePath, capturesPath, definitionsPath, outputPath string) error {
	img, err := imageio.Load(imagePath)
	if err != nil {
		return err
	}
	captures, err := dataset.LoadCaptures(capturesPath)
	if err != nil {
		return err
	}
	labels, err := dataset.LoadDefinitions(definitionsPath)
	if err != nil {
		return err
	}

	base := filepath.Base(imagePath)
	var capture *dataset.Capture
	for i := range captures {
		if filepath.Base(captures[i].Filename) == base {
			capture = &captures[i]
			break
		}
	}
	if capture == nil {
		return errors.New(errors.ErrCodeNotFound, "no capture entry for %s", base)
	}

	annotated, err := t.annotator.DrawBoxes(img, capture.Boxes, labels, nil)
	if err != nil {
		return err
	}
	return imageio.Save(annotated, outputPath, imageio.Options{})
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
