package cli

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/86sanj/datasetinsights/internal/utils"
	"github.com/86sanj/datasetinsights/pkg/errors"
	"github.com/86sanj/datasetinsights/pkg/grid"
	"github.com/86sanj/datasetinsights/pkg/imageio"
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	dir        string // directory scanned for images
	cols       int    // images per row
	cellWidth  int    // cell width override
	cellHeight int    // cell height override
	gray       bool   // render cells in grayscale
	output     string // output path
}

func newGridCmd() *cobra.Command {
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compose a directory of images into a single grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dir == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--dir is required")
			}
			return runGrid(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory scanned for images")
	cmd.Flags().IntVar(&opts.cols, "cols", 4, "images per row")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", 0, "cell width in pixels")
	cmd.Flags().IntVar(&opts.cellHeight, "cell-height", 0, "cell height in pixels")
	cmd.Flags().BoolVar(&opts.gray, "gray", false, "render cells in grayscale")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path")

	return cmd
}

func runGrid(cmd *cobra.Command, opts *gridOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := utils.ListImageFiles(opts.dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "failed to scan directory")
	}
	if len(files) == 0 {
		return errors.New(errors.ErrCodeNotFound, "no images found in %s", opts.dir)
	}

	logger.Infof("Composing %d images from %s", len(files), opts.dir)

	p := newProgress(logger)
	images := make([]image.Image, 0, len(files))
	for _, file := range files {
		img, err := imageio.Load(file)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	cols := opts.cols
	if cols <= 0 {
		cols = 4
	}
	rows := make([][]image.Image, 0, (len(images)+cols-1)/cols)
	for start := 0; start < len(images); start += cols {
		end := start + cols
		if end > len(images) {
			end = len(images)
		}
		rows = append(rows, images[start:end])
	}

	composed, err := grid.Compose(rows, grid.Options{
		CellWidth:  intOr(opts.cellWidth, cfg.Grid.CellWidth),
		CellHeight: intOr(opts.cellHeight, cfg.Grid.CellHeight),
		Grayscale:  opts.gray,
	})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(cfg.Output.OutputDir, "grid."+cfg.Output.Format)
	}
	if err := utils.EnsureDir(filepath.Dir(output)); err != nil {
		return err
	}
	if err := imageio.Save(composed, output, imageio.Options{
		Quality:  cfg.Output.Quality,
		Lossless: cfg.Output.Lossless,
	}); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Composed %d images into %d rows", len(images), len(rows)))
	logFileWritten(logger, output)
	return nil
}
