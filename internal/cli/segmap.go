package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/86sanj/datasetinsights/internal/utils"
	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/imageio"
	"github.com/86sanj/datasetinsights/pkg/segmentation"
)

// segmapOpts holds the command-line flags for the segmap command.
type segmapOpts struct {
	labels  string // grayscale label map image
	dataset string // color table name
	output  string // output image path
}

func newSegmapCmd() *cobra.Command {
	var opts segmapOpts

	cmd := &cobra.Command{
		Use:   "segmap",
		Short: "Decode a semantic segmentation label map into colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.labels == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--labels is required")
			}
			return runSegmap(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.labels, "labels", "l", "", "grayscale label map image")
	cmd.Flags().StringVar(&opts.dataset, "dataset", segmentation.Cityscapes, "color table name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image path")

	return cmd
}

func runSegmap(cmd *cobra.Command, opts *segmapOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	img, err := imageio.Load(opts.labels)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %dx%d label map", img.Bounds().Dx(), img.Bounds().Dy())

	p := newProgress(logger)
	decoded, err := segmentation.DecodeImage(img, opts.dataset)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = utils.GenerateOutputFilename(opts.labels, cfg.Output.OutputDir, "", "_segmap", cfg.Output.Format)
	}
	if err := utils.EnsureDir(filepath.Dir(output)); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create output directory")
	}
	if err := imageio.Save(decoded, output, imageio.Options{
		Quality:  cfg.Output.Quality,
		Lossless: cfg.Output.Lossless,
	}); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Decoded %s label map", opts.dataset))
	logFileWritten(logger, output)
	return nil
}
