package stipple

import "math/rand"

// maxStalledDraws bounds the number of consecutive rejected draws before
// sampling gives up. A grid dark enough to stipple accepts a draw long
// before this; only a blank or near-blank frame runs into the bound.
const maxStalledDraws = 1 << 16

// samplePoints places n points over the grid by rejection sampling: a
// candidate is drawn uniformly over the frame and kept only when a second
// uniform draw in [0, 100) reaches the luminance of the pixel under it.
// Dark pixels accept nearly every candidate, pixels brighter than the
// draw range stay empty. Returns ErrSamplingExhausted when the grid is
// too bright to ever place the requested points.
func samplePoints(g *Grid, n int, rng *rand.Rand) ([]Point, error) {
	points := make([]Point, 0, n)
	stalled := 0
	for len(points) < n {
		x := rng.Float64() * float64(g.Width)
		y := rng.Float64() * float64(g.Height)
		r := rng.Float64() * 100
		if r >= float64(g.At(int(x), int(y))) {
			points = append(points, Point{X: x, Y: y})
			stalled = 0
			continue
		}
		stalled++
		if stalled >= maxStalledDraws {
			return nil, ErrSamplingExhausted
		}
	}
	return points, nil
}
