package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func samePixel(t *testing.T, want, got image.Image, x, y int) {
	t.Helper()
	wr, wg, wb, wa := want.At(x, y).RGBA()
	gr, gg, gb, ga := got.At(x, y).RGBA()
	if wr != gr || wg != gg || wb != gb || wa != ga {
		t.Errorf("Pixel (%d,%d) mismatch: want %v, got %v", x, y, want.At(x, y), got.At(x, y))
	}
}

func TestSaveLoadPNG(t *testing.T) {
	img := createTestImage(64, 48)
	path := filepath.Join(t.TempDir(), "test.png")

	if err := Save(img, path, Options{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Bounds().Dx() != 64 || loaded.Bounds().Dy() != 48 {
		t.Errorf("Expected 64x48, got %dx%d", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
	samePixel(t, img, loaded, 10, 10)
	samePixel(t, img, loaded, 63, 47)
}

func TestSaveLoadJPEG(t *testing.T) {
	img := createTestImage(64, 48)

	for _, name := range []string{"test.jpg", "test.jpeg"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(img, path, Options{Quality: 95}); err != nil {
			t.Fatalf("Save failed for %s: %v", name, err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed for %s: %v", name, err)
		}
		if loaded.Bounds().Dx() != 64 || loaded.Bounds().Dy() != 48 {
			t.Errorf("Expected 64x48, got %dx%d", loaded.Bounds().Dx(), loaded.Bounds().Dy())
		}
	}
}

func TestSaveLoadWebP(t *testing.T) {
	img := createTestImage(64, 48)
	path := filepath.Join(t.TempDir(), "test.webp")

	if err := Save(img, path, Options{Lossless: true}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Bounds().Dx() != 64 || loaded.Bounds().Dy() != 48 {
		t.Errorf("Expected 64x48, got %dx%d", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
	samePixel(t, img, loaded, 10, 10)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	img := createTestImage(10, 10)
	path := filepath.Join(t.TempDir(), "test.bmp")

	err := Save(img, path, Options{})
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %s", errors.GetCode(err))
	}
}

func TestSaveNilImage(t *testing.T) {
	err := Save(nil, filepath.Join(t.TempDir(), "test.png"), Options{})
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %s", errors.GetCode(err))
	}
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("definitely not pixels"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for non-image data")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Expected invalid input code, got %s", errors.GetCode(err))
	}
}

func TestLoadFromReader(t *testing.T) {
	img := createTestImage(32, 32)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	loaded, err := LoadFromReader(&buf)
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if loaded.Bounds().Dx() != 32 {
		t.Errorf("Expected width 32, got %d", loaded.Bounds().Dx())
	}

	_, err = LoadFromReader(strings.NewReader("garbage"))
	if err == nil {
		t.Error("Expected error for garbage data")
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo(createTestImage(200, 100))

	if info.Width != 200 || info.Height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", info.Width, info.Height)
	}
	if info.AspectRatio != 2.0 {
		t.Errorf("Expected aspect ratio 2.0, got %f", info.AspectRatio)
	}
	if info.Area != 20000 {
		t.Errorf("Expected area 20000, got %d", info.Area)
	}
}
