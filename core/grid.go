package stipple

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Grid holds the per-pixel luminance values of a single frame as a
// row-major byte raster, one value in [0, 255] per pixel. The grid
// dimensions are bound to the stippler at initialization time and must
// stay identical for every subsequent frame.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid allocates an empty (all black) luminance grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidParams, width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}, nil
}

// GridFromImage converts an image of any type to a luminance grid.
// The luminance is obtained from the red, green and blue channels with
// the perceptual weights 0.2126, 0.7152 and 0.0722; the alpha channel
// is discarded.
func GridFromImage(img image.Image) *Grid {
	src := imaging.Clone(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	g := &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			si := src.PixOffset(x, y)
			g.Pix[y*width+x] = uint8(math.Round(
				0.2126*float64(src.Pix[si+0]) +
					0.7152*float64(src.Pix[si+1]) +
					0.0722*float64(src.Pix[si+2])))
		}
	}
	return g
}

// FromRGBA fills the grid from packed row-major RGBA pixel data, four
// bytes per pixel, converting each pixel to its luminance. The buffer
// must hold exactly Width*Height pixels. This is the conversion path for
// live sources that expose raw pixel data, like a canvas element.
func (g *Grid) FromRGBA(data []uint8) error {
	if len(data) != g.Width*g.Height*4 {
		return fmt.Errorf("%w: %d rgba bytes for a %dx%d grid", ErrDimensionMismatch, len(data), g.Width, g.Height)
	}
	for i := range g.Pix {
		g.Pix[i] = uint8(math.Round(
			0.2126*float64(data[i*4+0]) +
				0.7152*float64(data[i*4+1]) +
				0.0722*float64(data[i*4+2])))
	}
	return nil
}

// At returns the luminance value of the pixel at column x, row y.
// The coordinates are not bounds checked.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Fill sets every pixel of the grid to the same luminance value.
func (g *Grid) Fill(v uint8) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// check validates the raster layout and, when w and h are non-zero,
// that the grid matches the bound frame size.
func (g *Grid) check(w, h int) error {
	if g == nil || g.Width < 1 || g.Height < 1 || len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: malformed grid", ErrDimensionMismatch)
	}
	if w != 0 && (g.Width != w || g.Height != h) {
		return fmt.Errorf("%w: got %dx%d, bound to %dx%d", ErrDimensionMismatch, g.Width, g.Height, w, h)
	}
	return nil
}
