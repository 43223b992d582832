package mesh

import (
	"iter"
	"math"
	"slices"

	"github.com/discohead/crvs"
	"github.com/discohead/crvs/rnd"
)

// Polygon is a closed outline through its vertices. The last vertex
// connects back to the first.
//
// Containment and sampling assume a simple polygon. Results for
// self-intersecting polygons are undefined.
type Polygon []crvs.Point

var _ crvs.ClosedShape = Polygon(nil)

// MaxSampleAttempts bounds rejection sampling in [Polygon.PointsWithin] to
// this many candidates per requested point.
const MaxSampleAttempts = 1000

// Contains reports whether pt lies inside p, using the crossing number of a
// horizontal ray from pt. Points on the boundary may go either way.
func (p Polygon) Contains(pt crvs.Point) bool {
	in := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Covers reports whether pt lies inside p or within eps of its boundary.
func (p Polygon) Covers(pt crvs.Point, eps float64) bool {
	if p.Contains(pt) {
		return true
	}
	for i := range p {
		if distSqToSegment(pt, p[i], p[(i+1)%len(p)]) <= eps*eps {
			return true
		}
	}
	return false
}

func distSqToSegment(pt, a, b crvs.Point) float64 {
	d := b.Sub(a)
	dotp := d.Dot(pt.Sub(a))
	dSquared := d.Dot(d)
	if dotp <= 0 {
		return pt.Sub(a).Hypot2()
	} else if dotp >= dSquared {
		return pt.Sub(b).Hypot2()
	}
	return pt.Sub(a.Lerp(b, dotp/dSquared)).Hypot2()
}

// Winding returns the nonzero winding number of pt. It is positive inside
// polygons with positive area.
func (p Polygon) Winding(pt crvs.Point) int {
	var w int
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		side := b.Sub(a).Cross(pt.Sub(a))
		if a.Y <= pt.Y {
			if b.Y > pt.Y && side > 0 {
				w++
			}
		} else if b.Y <= pt.Y && side < 0 {
			w--
		}
	}
	return w
}

// Area returns the signed area of p.
func (p Polygon) Area() float64 {
	var sum float64
	for i := range p {
		sum += crvs.Vec2(p[i]).Cross(crvs.Vec2(p[(i+1)%len(p)]))
	}
	return sum * 0.5
}

func (p Polygon) Perimeter() float64 {
	if len(p) < 2 {
		return 0
	}
	var sum float64
	for i := range p {
		sum += p[i].Distance(p[(i+1)%len(p)])
	}
	return sum
}

func (p Polygon) BoundingBox() crvs.Rect {
	return crvs.BoundingRect(p)
}

func (p Polygon) PathElements() iter.Seq[crvs.PathElement] {
	return crvs.PolylineElements(p, true)
}

func (p Polygon) Path() crvs.Path {
	return crvs.Polyline(p, true)
}

// Centroid returns the mean of p's vertices.
func (p Polygon) Centroid() crvs.Point {
	return crvs.Centroid(p)
}

// Sides returns p's sides as edges of the given resolution, starting with
// the side from the first vertex to the second.
func (p Polygon) Sides(resolution int) []crvs.Edge {
	if len(p) < 2 {
		return nil
	}
	out := make([]crvs.Edge, len(p))
	for i := range p {
		out[i] = crvs.NewEdge(p[i], p[(i+1)%len(p)], resolution)
	}
	return out
}

// WebEdges returns an edge between every pair of vertices.
func (p Polygon) WebEdges(resolution int) []crvs.Edge {
	return crvs.Web(p, resolution)
}

// WebPoints samples resolution points along every edge of [Polygon.WebEdges].
func (p Polygon) WebPoints(resolution int) []crvs.Point {
	var out []crvs.Point
	for _, e := range p.WebEdges(resolution) {
		out = append(out, e.Points(resolution)...)
	}
	return out
}

// PointsWithin returns k points inside p by rejection sampling: candidates
// are drawn uniformly from p's bounding box until one is contained.
//
// Polygons without area yield no points. If sampling needs more than
// [MaxSampleAttempts] candidates per point, it stops early and returns the
// points found so far.
func (p Polygon) PointsWithin(src rnd.Source, k int) []crvs.Point {
	if a := p.Area(); k < 1 || len(p) < 3 || a == 0 || math.IsNaN(a) {
		return nil
	}
	bb := p.BoundingBox()
	out := make([]crvs.Point, 0, k)
	budget := k * MaxSampleAttempts
	for attempts := 0; len(out) < k; attempts++ {
		if attempts == budget {
			crvs.Logger().Warn("rejection sampling gave up",
				"want", k,
				"got", len(out),
				"attempts", attempts)
			break
		}
		pt := crvs.Pt(src.Uniform(bb.X0, bb.X1), src.Uniform(bb.Y0, bb.Y1))
		if p.Contains(pt) {
			out = append(out, pt)
		}
	}
	return out
}

// Clamp returns p with every vertex clamped into r. This is not polygon
// clipping: vertices outside r are moved onto its boundary independently,
// which can distort large polygons.
func (p Polygon) Clamp(r crvs.Rect) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Clamp(r)
	}
	return out
}

// Transform returns p with every vertex transformed by aff.
func (p Polygon) Transform(aff crvs.Affine) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Transform(aff)
	}
	return out
}

// Reverse returns p with its vertex order reversed.
func (p Polygon) Reverse() Polygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}
