// Package imageio loads and saves annotation images, adding WebP
// support on top of the standard png and jpeg codecs.
package imageio

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

// DefaultQuality is used when Options leaves Quality unset.
const DefaultQuality = 90

// Options controls the lossy encoders.
type Options struct {
	// Quality applies to jpeg and lossy webp output, 1-100.
	// Non-positive falls back to DefaultQuality.
	Quality int

	// Lossless switches webp output to lossless encoding.
	Lossless bool
}

// Load reads an image from disk. Formats registered with image.Decode
// go through imaging.Open; webp files get an explicit fallback since
// some encoders emit variants the registered decoder rejects.
func Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to open image %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err == nil {
			if img, _, err := image.Decode(f); err == nil {
				return img, nil
			}
		}
	} else if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown image format for %s", path)
}

// LoadFromReader decodes an image from a stream, trying the
// registered codecs first and webp second.
func LoadFromReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read image data")
	}

	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown or unsupported image format")
}

// Save writes an image to disk. The file extension picks the codec:
// png, jpg, jpeg or webp.
func Save(img image.Image, path string, opts Options) error {
	if img == nil {
		return errors.New(errors.ErrCodeInvalidInput, "image is nil")
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to create %s", path)
		}
		defer f.Close()
		if err := webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(quality)}); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to encode webp")
		}
		return nil
	case "png":
		if err := imaging.Save(img, path); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to save %s", path)
		}
		return nil
	case "jpg", "jpeg":
		if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to save %s", path)
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unsupported output format: %s", ext)
	}
}

// Info carries basic image metadata.
type Info struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// GetInfo returns the dimensions of an image.
func GetInfo(img image.Image) Info {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	return Info{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
		Area:        width * height,
	}
}
