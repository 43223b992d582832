package mesh

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/discohead/crvs"
)

const (
	// frameSites surround the input at frameRadius times its extent, so
	// that every input site gets a bounded region.
	frameSites  = 8
	frameRadius = 10
)

// Voronoi is the Voronoi diagram of a point set, with one closed region per
// input site.
//
// Regions of sites on the convex hull of the input are unbounded in theory.
// Here they are closed off by frame sites placed well outside the input, so
// they extend to about five times the input's extent.
type Voronoi struct {
	sites    []crvs.Point
	regions  []Polygon
	segments [][4]float64
}

// NewVoronoi computes the Voronoi diagram of pts.
//
// Sites that coincide with an earlier site get empty regions. Fewer than one
// point yields an empty diagram, as does a point set the hull service
// rejects as degenerate. Other hull failures are returned.
func NewVoronoi(pts []crvs.Point, opts ...Option) (*Voronoi, error) {
	cfg := newConfig(opts)
	n := len(pts)
	v := &Voronoi{
		sites:   slices.Clone(pts),
		regions: make([]Polygon, n),
	}
	if n < 1 {
		return v, nil
	}

	fr := newFrame(pts)
	all := slices.Grow(slices.Clone(pts), frameSites)
	for i := range frameSites {
		all = append(all, fr.at(frameRadius, float64(i)*2*math.Pi/frameSites))
	}

	faces, err := triangulate(all, cfg.huller)
	if err != nil {
		if errors.Is(err, ErrDegenerate) {
			crvs.Logger().Warn("voronoi fell back to empty regions", "sites", n, "err", err)
			return v, nil
		}
		return nil, fmt.Errorf("voronoi of %d sites: %w", n, err)
	}
	tris := triangles(all, faces)

	centers := make([]crvs.Point, len(tris))
	valid := make([]bool, len(tris))
	incident := make([][]int, n)
	for t, tri := range tris {
		centers[t], valid[t] = circumcenter(all[tri[0]], all[tri[1]], all[tri[2]])
		if !valid[t] {
			continue
		}
		for _, s := range tri {
			if s < n {
				incident[s] = append(incident[s], t)
			}
		}
	}

	eps := 1e-12 * fr.radius
	for s, ts := range incident {
		site := pts[s]
		slices.SortFunc(ts, func(a, b int) int {
			return cmp.Compare(centers[a].Sub(site).Angle(), centers[b].Sub(site).Angle())
		})
		var region Polygon
		for _, t := range ts {
			c := centers[t]
			if len(region) > 0 && region[len(region)-1].Distance(c) <= eps {
				continue
			}
			region = append(region, c)
		}
		if len(region) > 1 && region[0].Distance(region[len(region)-1]) <= eps {
			region = region[:len(region)-1]
		}
		v.regions[s] = region
	}

	// Every triangulation edge shared by two triangles is dual to the
	// segment between their circumcenters.
	first := make(map[[2]int]int)
	for t, tri := range tris {
		for k := range 3 {
			a, b := tri[k], tri[(k+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			o, ok := first[key]
			if !ok {
				first[key] = t
				continue
			}
			if key[0] >= n || !valid[o] || !valid[t] {
				continue
			}
			p, q := centers[o], centers[t]
			v.segments = append(v.segments, [4]float64{p.X, p.Y, q.X, q.Y})
		}
	}

	crvs.Logger().Debug("voronoi built",
		"sites", n,
		"triangles", len(tris),
		"segments", len(v.segments))
	return v, nil
}

// circumcenter returns the center of the circle through a, b and c. It
// reports false for collinear points.
func circumcenter(a, b, c crvs.Point) (crvs.Point, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if d == 0 {
		return crvs.Point{}, false
	}
	ab2, ac2 := ab.Hypot2(), ac.Hypot2()
	u := crvs.Vec((ac.Y*ab2-ab.Y*ac2)/d, (ab.X*ac2-ac.X*ab2)/d)
	p := a.Translate(u)
	if p.IsNaN() || p.IsInf() {
		return crvs.Point{}, false
	}
	return p, true
}

// Sites returns the input points.
func (v *Voronoi) Sites() []crvs.Point { return slices.Clone(v.sites) }

// Regions returns the region of every site, in site order.
func (v *Voronoi) Regions() []Polygon {
	out := make([]Polygon, len(v.regions))
	for i, r := range v.regions {
		out[i] = slices.Clone(r)
	}
	return out
}

// Region returns the region of site i, or nil if i is out of range.
func (v *Voronoi) Region(i int) Polygon {
	if i < 0 || i >= len(v.regions) {
		return nil
	}
	return slices.Clone(v.regions[i])
}

// RegionsIn returns the regions with every vertex clamped into r. See
// [Polygon.Clamp] for the distortion this causes to large regions.
func (v *Voronoi) RegionsIn(r crvs.Rect) []Polygon {
	out := make([]Polygon, len(v.regions))
	for i, reg := range v.regions {
		out[i] = reg.Clamp(r)
	}
	return out
}

// Segments returns the diagram's edges as [x0, y0, x1, y1]. Each separates
// two sites, at least one of which is an input site.
func (v *Voronoi) Segments() [][4]float64 { return slices.Clone(v.segments) }

// Edges returns the diagram's edges with the given resolution.
func (v *Voronoi) Edges(resolution int) []crvs.Edge {
	out := make([]crvs.Edge, len(v.segments))
	for i, s := range v.segments {
		out[i] = crvs.EdgeFromSegment(s, resolution)
	}
	return out
}

// Path returns the outline of every region as a closed subpath.
func (v *Voronoi) Path() crvs.Path {
	var p crvs.Path
	for _, r := range v.regions {
		p = append(p, r.Path()...)
	}
	return p
}
