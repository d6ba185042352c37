package cli

import (
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/86sanj/datasetinsights/internal/utils"
	"github.com/86sanj/datasetinsights/pkg/annotate"
	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/imageio"
)

// annotateOpts holds the command-line flags for the annotate command.
type annotateOpts struct {
	image       string   // capture image to annotate
	captures    string   // captures JSON file
	definitions string   // annotation definitions JSON file
	colors      []string // explicit palette colors, one per box
	output      string   // output image path
	lineWidth   int      // box outline width override
	fontHeight  int      // label font height override
}

func newAnnotateCmd() *cobra.Command {
	var opts annotateOpts

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Draw labeled bounding boxes on a capture image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.image == "" || opts.captures == "" || opts.definitions == "" {
				return errors.New(errors.ErrCodeInvalidInput,
					"--image, --captures and --definitions are required")
			}
			return runAnnotate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "capture image to annotate")
	cmd.Flags().StringVar(&opts.captures, "captures", "", "captures JSON file")
	cmd.Flags().StringVar(&opts.definitions, "definitions", "", "annotation definitions JSON file")
	cmd.Flags().StringSliceVar(&opts.colors, "colors", nil, "explicit box colors, one per box")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image path")
	cmd.Flags().IntVar(&opts.lineWidth, "line-width", 0, "box outline width in pixels")
	cmd.Flags().IntVar(&opts.fontHeight, "font-height", 0, "label font height in pixels")

	return cmd
}

func runAnnotate(cmd *cobra.Command, opts *annotateOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	img, err := imageio.Load(opts.image)
	if err != nil {
		return err
	}
	captures, err := dataset.LoadCaptures(opts.captures)
	if err != nil {
		return err
	}
	mapping, err := dataset.LoadDefinitions(opts.definitions)
	if err != nil {
		return err
	}

	target := filepath.Base(opts.image)
	capture, err := findCapture(captures, target)
	if err != nil {
		return err
	}
	logger.Infof("Annotating %s with %d boxes", target, len(capture.Boxes))

	p := newProgress(logger)
	annotator := annotate.NewWithConfig(annotate.Config{
		LineWidth:  intOr(opts.lineWidth, cfg.Annotate.LineWidth),
		FontHeight: float64(intOr(opts.fontHeight, cfg.Annotate.FontHeight)),
	})
	annotated, err := annotator.DrawBoxes(img, capture.Boxes, mapping, opts.colors)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = utils.GenerateOutputFilename(opts.image, cfg.Output.OutputDir, "", "_annotated", cfg.Output.Format)
	}
	if err := utils.EnsureDir(filepath.Dir(output)); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create output directory")
	}
	if err := imageio.Save(annotated, output, imageio.Options{
		Quality:  cfg.Output.Quality,
		Lossless: cfg.Output.Lossless,
	}); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Annotated %d boxes", len(capture.Boxes)))
	logFileWritten(logger, output)
	return nil
}

// findCapture matches a capture record by image basename, so callers
// can point at RGB/rgb_0.png with either the full stored path or just
// the file name.
func findCapture(captures []dataset.Capture, target string) (dataset.Capture, error) {
	for _, capture := range captures {
		if filepath.Base(capture.Filename) == target {
			return capture, nil
		}
	}
	return dataset.Capture{}, errors.New(errors.ErrCodeNotFound, "no capture entry for %s", target)
}

func logFileWritten(logger *charmlog.Logger, path string) {
	if info, err := os.Stat(path); err == nil {
		logger.Infof("Wrote %s (%s)", path, utils.FormatFileSize(info.Size()))
		return
	}
	logger.Infof("Wrote %s", path)
}
