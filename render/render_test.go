package render_test

import (
	"bytes"
	"image"
	"image/gif"
	"strings"
	"testing"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
	"github.com/kbkmn/weighted-voronoi-stippling/render"
)

// countDark tallies the pixels darker than mid gray inside the given span.
func countDark(img image.Image, x0, x1 int) int {
	dark := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := x0; x < x1; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r>>8 < 100 {
				dark++
			}
		}
	}
	return dark
}

func TestRender_DotsShouldScaleWithInkWeight(t *testing.T) {
	frame := &stipple.Frame{
		Points:  []stipple.Point{{X: 8, Y: 8}, {X: 24, Y: 8}},
		Weights: []float64{1, 0.4},
	}
	opts := render.DefaultOptions()
	opts.Scale = 4
	opts.MinRadius = 0

	img := render.Render(frame, nil, 32, 16, opts)
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Fatalf("Expected a 32x16 image, got %v", img.Bounds())
	}

	heavy := countDark(img, 0, 16)
	faint := countDark(img, 16, 32)
	if faint < 1 {
		t.Fatalf("Expected the faint dot to leave a mark, got %d dark pixels", faint)
	}
	if heavy <= 2*faint {
		t.Fatalf("Expected the full weight dot to cover far more pixels, got %d vs %d", heavy, faint)
	}
}

func cellFixture(t *testing.T) (*stipple.Stippler, [][]stipple.Point) {
	t.Helper()
	grid, err := stipple.NewGrid(20, 20)
	if err != nil {
		t.Fatalf("failed allocating the grid: %v", err)
	}
	points := []stipple.Point{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15},
	}
	s, err := stipple.FromPoints(grid, points, stipple.Params{Seed: 1})
	if err != nil {
		t.Fatalf("failed building the stippler: %v", err)
	}
	return s, s.Partition().CellPolygons(20, 20)
}

func TestRender_WireframeShouldTraceCellOutlines(t *testing.T) {
	s, cells := cellFixture(t)
	frame := &stipple.Frame{Points: s.Points(), Weights: make([]float64, 4)}

	opts := render.DefaultOptions()
	opts.MinRadius = 0
	opts.LineWidth = 1

	plain := render.Render(frame, cells, 20, 20, opts)
	if got := countDark(plain, 0, 20); got != 0 {
		t.Fatalf("Expected a blank image without the wireframe, got %d dark pixels", got)
	}

	opts.Wireframe = true
	framed := render.Render(frame, cells, 20, 20, opts)
	if got := countDark(framed, 0, 20); got == 0 {
		t.Fatalf("Expected the wireframe to leave strokes, got a blank image")
	}
}

func TestWriteSVG_ShouldEmitOneCirclePerPoint(t *testing.T) {
	s, cells := cellFixture(t)
	frame := &stipple.Frame{Points: s.Points(), Weights: []float64{1, 0.5, 0.5, 0.25}}

	var buf bytes.Buffer
	render.WriteSVG(&buf, frame, cells, 20, 20, render.DefaultOptions())

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("Expected an svg document, got %q", out[:40])
	}
	if got := strings.Count(out, "<circle"); got != 4 {
		t.Fatalf("Expected 4 circle elements, got %d", got)
	}
	if strings.Contains(out, "<polygon") {
		t.Fatalf("Expected no polygons without the wireframe")
	}

	buf.Reset()
	opts := render.DefaultOptions()
	opts.Wireframe = true
	render.WriteSVG(&buf, frame, cells, 20, 20, opts)
	if !strings.Contains(buf.String(), "<polygon") {
		t.Fatalf("Expected cell polygons with the wireframe enabled")
	}
}

func TestEncodeGIF_ShouldKeepFrameOrderAndDelay(t *testing.T) {
	frame := &stipple.Frame{
		Points:  []stipple.Point{{X: 8, Y: 8}},
		Weights: []float64{1},
	}
	frames := []image.Image{
		render.Render(frame, nil, 16, 16, render.DefaultOptions()),
		render.Render(frame, nil, 16, 16, render.DefaultOptions()),
	}

	var buf bytes.Buffer
	if err := render.EncodeGIF(&buf, frames, 5); err != nil {
		t.Fatalf("failed encoding the animation: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed decoding the animation: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 5 || anim.Delay[1] != 5 {
		t.Fatalf("Expected a delay of 5 on every frame, got %v", anim.Delay)
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("Expected 16x16 frames, got %v", b)
	}
}
