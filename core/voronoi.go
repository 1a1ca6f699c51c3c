package stipple

import "github.com/pzsz/voronoi"

// CellPolygons computes the dual Voronoi decomposition of the partition and
// returns one closed cell polygon per site, clipped to the w×h viewport.
// The result is index-aligned with the point set. The relaxation itself
// never consumes the polygons; they exist for renderers that trace cell
// outlines and for sizing per-cell buffers.
func (p *Partition) CellPolygons(w, h float64) [][]Point {
	sites := make([]voronoi.Vertex, len(p.sites))
	index := make(map[voronoi.Vertex]int, len(p.sites))
	for i, s := range p.sites {
		v := voronoi.Vertex{X: s.X, Y: s.Y}
		sites[i] = v
		index[v] = i
	}

	bbox := voronoi.NewBBox(0, w, 0, h)
	diagram := voronoi.ComputeDiagram(sites, bbox, true)

	// The diagram reorders the cells during the sweep, so each cell is
	// matched back to its site index by coordinate.
	polys := make([][]Point, len(p.sites))
	for _, cell := range diagram.Cells {
		i, ok := index[cell.Site]
		if !ok {
			continue
		}
		poly := make([]Point, 0, len(cell.Halfedges))
		for _, he := range cell.Halfedges {
			v := he.GetStartpoint()
			poly = append(poly, Point{X: v.X, Y: v.Y})
		}
		polys[i] = poly
	}
	return polys
}
