package crvs

import (
	"iter"
)

// Edge is a parametrized line segment from Source to Target. It is a [Shape].
type Edge struct {
	Source Point
	Target Point
	// Resolution is the sample count used when none is given.
	Resolution int

	// Translation, Scale and Rotation (in radians) form the edge's local
	// transform about its midpoint, see [Edge.Transformed].
	Translation Vec2
	Scale       Vec2
	Rotation    float64
}

var _ Shape = Edge{}

// NewEdge returns the edge from source to target. Resolutions below 1 are
// raised to 1.
func NewEdge(source, target Point, resolution int) Edge {
	return Edge{
		Source:     source,
		Target:     target,
		Resolution: max(resolution, 1),
		Scale:      Vec(1, 1),
	}
}

// EdgeFromSegment returns the edge for a segment stored as
// [x0, y0, x1, y1].
func EdgeFromSegment(seg [4]float64, resolution int) Edge {
	return NewEdge(Pt(seg[0], seg[1]), Pt(seg[2], seg[3]), resolution)
}

// Segment returns the edge as [x0, y0, x1, y1].
func (e Edge) Segment() [4]float64 {
	return [4]float64{e.Source.X, e.Source.Y, e.Target.X, e.Target.Y}
}

// At linearly interpolates along the edge. At(0) is Source and At(1) is
// Target, exactly.
func (e Edge) At(t float64) Point {
	return e.Source.Lerp(e.Target, t)
}

// Vector returns the direction from Source to Target.
func (e Edge) Vector() Vec2 {
	return e.Target.Sub(e.Source)
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.Vector().Hypot()
}

func (e Edge) Midpoint() Point {
	return e.Source.Midpoint(e.Target)
}

// Angle returns the direction of the edge in radians, see [Vec2.Angle].
func (e Edge) Angle() float64 {
	return e.Vector().Angle()
}

// Transform maps both endpoints through aff.
func (e Edge) Transform(aff Affine) Edge {
	e.Source = e.Source.Transform(aff)
	e.Target = e.Target.Transform(aff)
	return e
}

// Transformed returns the edge with its local transform applied: rotation,
// then scale, both about the midpoint, then translation. The result has an
// identity local transform.
func (e Edge) Transformed() Edge {
	aff := Local(e.Translation, e.Scale, e.Rotation, e.Midpoint())
	return NewEdge(e.Source.Transform(aff), e.Target.Transform(aff), e.Resolution)
}

// Perpendicular returns pt displaced by magnitude along the edge's normal,
// the direction rotated a quarter turn from the edge's. A zero-length edge
// has no normal and returns pt.
func (e Edge) Perpendicular(pt Point, magnitude float64) Point {
	n := e.Vector().Normalize().Perp()
	return pt.Translate(n.Mul(magnitude))
}

// Points returns n points at positions i/n. If n is less than 1, the edge's
// resolution is used.
func (e Edge) Points(n int) []Point {
	if n < 1 {
		n = max(e.Resolution, 1)
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = e.At(float64(i) / float64(n))
	}
	return out
}

// SkinnedBy is Skin with the edge's length as amplitude, so a curve spanning
// unit space displaces in proportion to the edge.
func (e Edge) SkinnedBy(c *Curve, n int) []Point {
	return e.Skin(c, n, e.Length())
}

// Skin samples n points along the edge at positions i/(n-1), so that both
// endpoints are included, and displaces each along the edge's normal by
// (c.YAt(t) - 0.5) * amplitude. A curve that stays at 0.5 leaves the points
// on the edge. If n is less than 1, the edge's resolution is used.
func (e Edge) Skin(c *Curve, n int, amplitude float64) []Point {
	if n < 1 {
		n = max(e.Resolution, 1)
	}
	out := make([]Point, n)
	for i := range out {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = e.Perpendicular(e.At(t), (c.YAt(t)-0.5)*amplitude)
	}
	return out
}

func (e Edge) BoundingBox() Rect {
	return NewRectFromPoints(e.Source, e.Target)
}

func (e Edge) Perimeter() float64 {
	return e.Length()
}

func (e Edge) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(e.Source)) &&
			yield(LineTo(e.Target))
	}
}

func (e Edge) Path() Path {
	return Path{MoveTo(e.Source), LineTo(e.Target)}
}

// Web returns an edge between every pair of pts, in index order.
func Web(pts []Point, resolution int) []Edge {
	var out []Edge
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			out = append(out, NewEdge(pts[i], pts[j], resolution))
		}
	}
	return out
}
