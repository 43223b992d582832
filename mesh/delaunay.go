package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/discohead/crvs"
)

// Delaunay is the Delaunay triangulation of a point set.
//
// Links are the unique undirected edges of the triangulation, as pairs of
// indices into the input points, in the order the hull faces produced them.
type Delaunay struct {
	points []crvs.Point
	links  [][2]int
	adj    [][]int
	tris   [][3]int
}

// NewDelaunay triangulates pts.
//
// Fewer than one point, or a point set the hull service rejects as
// degenerate, yields an empty triangulation. Other hull failures are
// returned.
func NewDelaunay(pts []crvs.Point, opts ...Option) (*Delaunay, error) {
	cfg := newConfig(opts)
	d := &Delaunay{
		points: slices.Clone(pts),
		adj:    make([][]int, len(pts)),
	}
	if len(pts) < 1 {
		return d, nil
	}

	faces, err := triangulate(d.points, cfg.huller)
	if err != nil {
		if errors.Is(err, ErrDegenerate) {
			crvs.Logger().Warn("delaunay fell back to empty mesh", "points", len(pts), "err", err)
			return d, nil
		}
		return nil, fmt.Errorf("delaunay of %d points: %w", len(pts), err)
	}

	n := len(pts)
	seen := make(map[[2]int]bool)
	for _, f := range faces {
		for j, p := range f {
			q := f[(j+1)%len(f)]
			if p >= n || q >= n || p == q {
				continue
			}
			key := [2]int{min(p, q), max(p, q)}
			if seen[key] {
				continue
			}
			seen[key] = true
			d.links = append(d.links, [2]int{p, q})
			d.adj[p] = append(d.adj[p], q)
			d.adj[q] = append(d.adj[q], p)
		}
	}
	d.tris = triangles(d.points, faces)

	crvs.Logger().Debug("delaunay built",
		"points", n,
		"faces", len(faces),
		"links", len(d.links),
		"triangles", len(d.tris))
	return d, nil
}

// Points returns the triangulated points.
func (d *Delaunay) Points() []crvs.Point { return slices.Clone(d.points) }

// Links returns the triangulation's edges as index pairs.
func (d *Delaunay) Links() [][2]int { return slices.Clone(d.links) }

// Linked returns the indices of the points linked to point i, or nil if i is
// out of range.
func (d *Delaunay) Linked(i int) []int {
	if i < 0 || i >= len(d.adj) {
		return nil
	}
	return slices.Clone(d.adj[i])
}

// EdgeCount returns the number of links.
func (d *Delaunay) EdgeCount() int { return len(d.links) }

// Weights returns the valence of every point.
func (d *Delaunay) Weights() []int {
	out := make([]int, len(d.adj))
	for i, a := range d.adj {
		out[i] = len(a)
	}
	return out
}

// Weight returns the valence of point i, or 0 if i is out of range.
func (d *Delaunay) Weight(i int) int {
	if i < 0 || i >= len(d.adj) {
		return 0
	}
	return len(d.adj[i])
}

// Triangles returns the triangulation's triangles as index triples with
// positive signed area.
func (d *Delaunay) Triangles() [][3]int { return slices.Clone(d.tris) }

// Segments returns the links as [x0, y0, x1, y1].
func (d *Delaunay) Segments() [][4]float64 {
	out := make([][4]float64, len(d.links))
	for i, l := range d.links {
		p, q := d.points[l[0]], d.points[l[1]]
		out[i] = [4]float64{p.X, p.Y, q.X, q.Y}
	}
	return out
}

// Edges returns the links as edges of the given resolution.
func (d *Delaunay) Edges(resolution int) []crvs.Edge {
	out := make([]crvs.Edge, len(d.links))
	for i, l := range d.links {
		out[i] = crvs.NewEdge(d.points[l[0]], d.points[l[1]], resolution)
	}
	return out
}

// Path returns every link as its own subpath.
func (d *Delaunay) Path() crvs.Path {
	p := make(crvs.Path, 0, 2*len(d.links))
	for _, l := range d.links {
		p.MoveTo(d.points[l[0]])
		p.LineTo(d.points[l[1]])
	}
	return p
}
