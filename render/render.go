package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

// Options control how a relaxation frame is turned into a picture.
type Options struct {
	// Scale is the dot radius in pixels at full ink weight.
	Scale float64
	// MinRadius keeps faint dots visible; no dot drops below it.
	MinRadius float64
	// Background and Ink are the paper and the stipple colors.
	Background color.Color
	Ink        color.Color
	// Wireframe traces the Voronoi cell outlines over the dots.
	Wireframe bool
	// LineWidth is the wireframe stroke width.
	LineWidth float64
}

// DefaultOptions returns the black on white look used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Scale:      3,
		MinRadius:  0.5,
		Background: color.White,
		Ink:        color.Black,
		LineWidth:  0.5,
	}
}

// radius maps an ink weight to the dot radius.
func (opts Options) radius(weight float64) float64 {
	if r := opts.Scale * weight; r > opts.MinRadius {
		return r
	}
	return opts.MinRadius
}

// Render draws one relaxation frame as a raster image, one filled circle
// per point with its radius scaled by the point's ink weight. cells may
// carry the Voronoi cell polygons of the frame and is only consulted when
// opts.Wireframe is set.
func Render(frame *stipple.Frame, cells [][]stipple.Point, width, height int, opts Options) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	dc.SetFillStyle(gg.NewSolidPattern(opts.Ink))
	for i, pt := range frame.Points {
		dc.DrawArc(pt.X, pt.Y, opts.radius(frame.Weights[i]), 0, 2*math.Pi)
		dc.Fill()
	}

	if opts.Wireframe {
		strokeCells(dc, cells, opts)
	}
	return dc.Image()
}

func strokeCells(dc *gg.Context, cells [][]stipple.Point, opts Options) {
	for _, cell := range cells {
		if len(cell) < 2 {
			continue
		}
		dc.MoveTo(cell[0].X, cell[0].Y)
		for _, v := range cell[1:] {
			dc.LineTo(v.X, v.Y)
		}
		dc.ClosePath()
	}
	dc.SetLineWidth(opts.LineWidth)
	dc.SetStrokeStyle(gg.NewSolidPattern(opts.Ink))
	dc.Stroke()
}
