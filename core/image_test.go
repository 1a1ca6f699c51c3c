package stipple_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

func TestImage_DecodeShouldPreservePixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed encoding the fixture: %v", err)
	}

	img, err := stipple.DecodeImage(&buf)
	if err != nil {
		t.Fatalf("failed decoding the image: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected a 3x2 image, got %v", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Fatalf("Expected rgb(10, 20, 30) at (1, 1), got %v", got)
	}
}

func TestImage_GetImageShouldLoadFromDisk(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "sample.png")

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed creating the fixture: %v", err)
	}
	if err = png.Encode(file, src); err != nil {
		t.Fatalf("failed encoding the fixture: %v", err)
	}
	if err = file.Close(); err != nil {
		t.Fatalf("failed closing the fixture: %v", err)
	}

	img, err := stipple.GetImage(path)
	if err != nil {
		t.Fatalf("failed loading the image: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("Expected a 4x4 image, got %v", img.Bounds())
	}

	if _, err = stipple.GetImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("Expected an error for a missing file")
	}
}
