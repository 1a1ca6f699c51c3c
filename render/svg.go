package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

// WriteSVG draws one relaxation frame as a vector image, one circle element
// per point. The wireframe, when enabled, emits the cell polygons before
// the circles so the dots stay on top.
func WriteSVG(w io.Writer, frame *stipple.Frame, cells [][]stipple.Point, width, height int, opts Options) {
	canvas := svg.New(w)
	canvas.Start(float64(width), float64(height))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:"+cssColor(opts.Background))

	if opts.Wireframe {
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%v", cssColor(opts.Ink), opts.LineWidth)
		for _, cell := range cells {
			if len(cell) < 3 {
				continue
			}
			xs := make([]float64, len(cell))
			ys := make([]float64, len(cell))
			for i, v := range cell {
				xs[i], ys[i] = v.X, v.Y
			}
			canvas.Polygon(xs, ys, style)
		}
	}

	style := "fill:" + cssColor(opts.Ink)
	for i, pt := range frame.Points {
		canvas.Circle(pt.X, pt.Y, opts.radius(frame.Weights[i]), style)
	}
	canvas.End()
}

// cssColor formats a color in the rgb() notation used by inline styles.
func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
