package stipple

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// Partition owns the Delaunay triangulation built over one point set and
// answers nearest-site queries against it: Locate reports which point's
// Voronoi cell a pixel belongs to. A partition is immutable once built;
// the stippler replaces it wholesale on every frame instead of patching
// the triangulation as the points move.
type Partition struct {
	sites []Point
	tri   *delaunay.Triangulation

	// Site adjacency over the triangulation edges, laid out as a compact
	// offset/value pair: the neighbours of site i are adj[off[i]:off[i+1]].
	off []int
	adj []int

	// start is the lowest site with triangulation edges. A site without
	// edges is a coincident twin the triangulation dropped; a walk must
	// never begin or end on one.
	start int
}

// newPartition triangulates the point set and indexes the site neighbours.
// At least three points are required.
func newPartition(sites []Point) (*Partition, error) {
	if len(sites) < 3 {
		return nil, fmt.Errorf("%w: partition needs at least 3 points, got %d", ErrInvalidParams, len(sites))
	}

	pts := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("stipple: triangulation failed: %w", err)
	}

	p := &Partition{sites: sites, tri: tri}
	p.indexNeighbours()
	return p, nil
}

// indexNeighbours collects, for every site, the sites it shares a Delaunay
// edge with. Every halfedge pair is visited once; hull edges have no twin
// and are recognized by their -1 opposite.
func (p *Partition) indexNeighbours() {
	n := len(p.sites)
	half := p.tri.Halfedges
	tris := p.tri.Triangles

	deg := make([]int, n+1)
	for e := 0; e < len(tris); e++ {
		if o := half[e]; o == -1 || e < o {
			deg[tris[e]+1]++
			deg[tris[nextHalfedge(e)]+1]++
		}
	}
	for i := 0; i < n; i++ {
		deg[i+1] += deg[i]
	}

	adj := make([]int, deg[n])
	cursor := make([]int, n)
	copy(cursor, deg[:n])
	for e := 0; e < len(tris); e++ {
		if o := half[e]; o == -1 || e < o {
			a, b := tris[e], tris[nextHalfedge(e)]
			adj[cursor[a]] = b
			cursor[a]++
			adj[cursor[b]] = a
			cursor[b]++
		}
	}

	p.off = deg
	p.adj = adj

	p.start = 0
	for p.off[p.start] == p.off[p.start+1] {
		p.start++
	}
}

// Len returns the number of sites in the partition.
func (p *Partition) Len() int {
	return len(p.sites)
}

// Locate returns the index of the site whose Voronoi cell contains the
// pixel at (x, y). The hint seeds the search with a site expected to be
// close, typically the result for the neighbouring pixel, and only
// shortens the walk; the returned index is the same for any hint. Ties on
// the cell boundary resolve to the lowest site index among the sites the
// triangulation kept; a coincident twin it dropped owns no pixels.
func (p *Partition) Locate(x, y float64, hint int) int {
	c := hint
	if c < 0 || c >= len(p.sites) || p.off[c] == p.off[c+1] {
		c = p.start
	}
	best := p.distSq(c, x, y)

	// Walk the Delaunay neighbour graph greedily. A site that does not own
	// (x, y) always has a neighbour strictly closer to it, so the walk can
	// only stop on a nearest site.
	for {
		moved := false
		tied := false
		for _, nb := range p.adj[p.off[c]:p.off[c+1]] {
			d := p.distSq(nb, x, y)
			if d < best || (d == best && nb < c) {
				best, c = d, nb
				moved = true
			} else if d == best {
				tied = true
			}
		}
		if moved {
			continue
		}
		if tied {
			return p.lowestTied(c, x, y, best)
		}
		return c
	}
}

// lowestTied returns the lowest site index among the sites tied with c at
// the squared distance best from (x, y). The tied sites lie on a circle
// around the query with no site inside, so consecutive ones always share
// a Delaunay edge and the whole set is reachable through equal distance
// hops from any member.
func (p *Partition) lowestTied(c int, x, y, best float64) int {
	low := c
	seen := map[int]bool{c: true}
	stack := []int{c}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range p.adj[p.off[s]:p.off[s+1]] {
			if seen[nb] || p.distSq(nb, x, y) != best {
				continue
			}
			seen[nb] = true
			stack = append(stack, nb)
			if nb < low {
				low = nb
			}
		}
	}
	return low
}

func (p *Partition) distSq(i int, x, y float64) float64 {
	dx := p.sites[i].X - x
	dy := p.sites[i].Y - y
	return dx*dx + dy*dy
}

// nextHalfedge steps to the next halfedge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}
