package stipple

import "math"

// Point defines a 2D coordinate in pixel space.
type Point struct {
	X, Y float64
}

// NewPoint creates a new point from the x, y coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp interpolates linearly between the current point and q,
// where t=0 returns the current point and t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSq(q))
}

// DistSq returns the squared Euclidean distance between two points.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// In reports whether the point falls inside the w×h viewport
// anchored at the origin.
func (p Point) In(w, h float64) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
