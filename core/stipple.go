package stipple

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultCount is the number of stipple points placed when the caller
	// does not ask for a specific amount.
	DefaultCount = 5000
	// DefaultBlend is the interpolation factor applied between a point and
	// its cell centroid on every frame.
	DefaultBlend = 0.5
)

// WeightCurve selects how a pixel luminance L in [0, 255] maps to the
// weight the pixel contributes to its cell centroid.
type WeightCurve int

const (
	// CurveLinear weights a pixel by 1 - L/255.
	CurveLinear WeightCurve = iota
	// CurveSquared weights a pixel by (1 - L/255)², pulling the points
	// harder into the darkest regions.
	CurveSquared
)

// weight maps one luminance value through the curve.
func (c WeightCurve) weight(l uint8) float64 {
	w := 1 - float64(l)/255
	if c == CurveSquared {
		return w * w
	}
	return w
}

// String returns the textual curve name used by the command line flags.
func (c WeightCurve) String() string {
	if c == CurveSquared {
		return "squared"
	}
	return "linear"
}

// ParseCurve converts a curve name into its WeightCurve value.
func ParseCurve(name string) (WeightCurve, error) {
	switch name {
	case "linear":
		return CurveLinear, nil
	case "squared":
		return CurveSquared, nil
	}
	return 0, fmt.Errorf("%w: unknown weight curve %q", ErrInvalidParams, name)
}

// Params holds the stippler configuration. Every field is fixed at
// initialization time and constant for the rest of the session; zero
// values select the defaults.
type Params struct {
	// Count is the stipple point cardinality, invariant across frames.
	Count int
	// Blend is the per-frame interpolation factor in (0, 1]: 1 jumps each
	// point straight onto its cell centroid, small values barely move it.
	Blend float64
	// Curve picks the luminance-to-weight mapping.
	Curve WeightCurve
	// Seed feeds the sampler's random source; zero seeds from the clock.
	Seed int64
}

// withDefaults fills the zero values in and validates the ranges.
func (p Params) withDefaults() (Params, error) {
	if p.Count == 0 {
		p.Count = DefaultCount
	}
	if p.Blend == 0 {
		p.Blend = DefaultBlend
	}
	if p.Count < 3 {
		return p, fmt.Errorf("%w: point count %d, need at least 3", ErrInvalidParams, p.Count)
	}
	if math.IsNaN(p.Blend) || p.Blend < 0 || p.Blend > 1 {
		return p, fmt.Errorf("%w: blend factor %v outside (0, 1]", ErrInvalidParams, p.Blend)
	}
	if p.Curve != CurveLinear && p.Curve != CurveSquared {
		return p, fmt.Errorf("%w: weight curve %d", ErrInvalidParams, int(p.Curve))
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	return p, nil
}

// Frame is the output of one relaxation tick: the updated point set and,
// index-aligned with it, the ink weight of every point. The ink weight is
// the average pixel weight inside the point's cell and is meant to size
// the rendered mark; a degenerate cell reports zero.
type Frame struct {
	Points  []Point
	Weights []float64
}

// Stippler runs the weighted Voronoi relaxation. Its whole state is the
// current point set and the partition built over it; both are replaced on
// every frame, never mutated in place, so a failed tick leaves the last
// good state usable.
type Stippler struct {
	params Params
	width  int
	height int
	points []Point
	part   *Partition
	rng    *rand.Rand
}

// NewStippler seeds a stippler on the first frame: the points are placed
// by luminance-weighted rejection sampling over the grid and the initial
// partition is built over them. The grid dimensions become the bound frame
// size every later frame must match.
func NewStippler(g *Grid, params Params) (*Stippler, error) {
	params, err := params.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := g.check(0, 0); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(params.Seed))
	points, err := samplePoints(g, params.Count, rng)
	if err != nil {
		return nil, err
	}
	part, err := newPartition(points)
	if err != nil {
		return nil, err
	}

	return &Stippler{
		params: params,
		width:  g.Width,
		height: g.Height,
		points: points,
		part:   part,
		rng:    rng,
	}, nil
}

// FromPoints seeds a stippler with an explicit initial point set instead
// of sampling one, which keeps a session reproducible or resumes it from
// saved points. The points must fall inside the grid and their number
// must agree with params.Count when that is set. Coincident points are
// tolerated: one of them owns the shared cell and the others report a
// zero ink weight and hold still until the relaxation separates them.
func FromPoints(g *Grid, points []Point, params Params) (*Stippler, error) {
	if params.Count == 0 {
		params.Count = len(points)
	}
	params, err := params.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := g.check(0, 0); err != nil {
		return nil, err
	}
	if len(points) != params.Count {
		return nil, fmt.Errorf("%w: %d points for count %d", ErrInvalidParams, len(points), params.Count)
	}

	w, h := float64(g.Width), float64(g.Height)
	pts := make([]Point, len(points))
	for i, pt := range points {
		if !pt.In(w, h) {
			return nil, fmt.Errorf("%w: point %d at (%v, %v) outside %dx%d grid", ErrInvalidParams, i, pt.X, pt.Y, g.Width, g.Height)
		}
		pts[i] = pt
	}
	part, err := newPartition(pts)
	if err != nil {
		return nil, err
	}

	return &Stippler{
		params: params,
		width:  g.Width,
		height: g.Height,
		points: pts,
		part:   part,
		rng:    rand.New(rand.NewSource(params.Seed)),
	}, nil
}

// NextFrame advances the relaxation by one tick against a fresh luminance
// grid: every pixel is routed to its owning cell and contributes its
// weighted position there, each point then blends toward its cell's
// weighted centroid, and the partition is rebuilt over the moved points
// for the following frame. The accumulation is a single raster-order scan
// with the triangulation frozen throughout.
func (s *Stippler) NextFrame(g *Grid) (*Frame, error) {
	if err := g.check(s.width, s.height); err != nil {
		return nil, err
	}

	n := len(s.points)
	xsum := make([]float64, n)
	ysum := make([]float64, n)
	wsum := make([]float64, n)
	count := make([]int, n)

	// The previous pixel's cell seeds the point location of the next one;
	// neighbouring pixels land in the same or an adjacent cell nearly
	// always, so each walk is a couple of steps.
	cell := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			w := s.params.Curve.weight(g.Pix[y*g.Width+x])
			cell = s.part.Locate(float64(x), float64(y), cell)
			xsum[cell] += float64(x) * w
			ysum[cell] += float64(y) * w
			wsum[cell] += w
			count[cell]++
		}
	}

	next := make([]Point, n)
	weights := make([]float64, n)
	for i, pt := range s.points {
		centroid := pt
		if wsum[i] > 0 {
			centroid = Point{X: xsum[i] / wsum[i], Y: ysum[i] / wsum[i]}
			weights[i] = wsum[i] / float64(count[i])
		}
		next[i] = pt.Lerp(centroid, s.params.Blend)
	}

	part, err := newPartition(next)
	if err != nil {
		return nil, err
	}
	s.points = next
	s.part = part

	out := make([]Point, n)
	copy(out, next)
	return &Frame{Points: out, Weights: weights}, nil
}

// Points returns a copy of the current point set.
func (s *Stippler) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Partition returns the partition built over the current point set.
func (s *Stippler) Partition() *Partition {
	return s.part
}

// Bounds returns the frame size the stippler was bound to.
func (s *Stippler) Bounds() (width, height int) {
	return s.width, s.height
}

// Count returns the point cardinality of the session.
func (s *Stippler) Count() int {
	return s.params.Count
}
