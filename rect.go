package crvs

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1). Windows
// clamp into rects and mesh regions are clamped to them.
//
// Either corner may be the smaller one. Measures that care, such as
// [Rect.Area], report the orientation through their sign.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ ClosedShape = Rect{}

// NewRectFromPoints returns the normalized rectangle with corners p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// NewRectFromOrigin returns the normalized rectangle from origin to
// origin+size.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(Vec(size.Width, size.Height)))
}

// BoundingRect returns the smallest rectangle enclosing pts, or the zero
// rectangle if pts is empty.
func BoundingRect(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		r.X0 = min(r.X0, p.X)
		r.Y0 = min(r.Y0, p.Y)
		r.X1 = max(r.X1, p.X)
		r.Y1 = max(r.Y1, p.Y)
	}
	return r
}

// normalized returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) normalized() Rect {
	return NewRectFromPoints(Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
}

// Width is X1 - X0. It is negative for flipped rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height is Y1 - Y0. It is negative for flipped rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size { return Sz(r.Width(), r.Height()) }

func (r Rect) Center() Point {
	return Pt(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1))
}

// Contains reports whether pt lies in the half-open rectangle
// [X0, X1)×[Y0, Y1).
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Covers reports whether pt lies in the closed rectangle, edges included,
// regardless of orientation.
func (r Rect) Covers(pt Point) bool {
	n := r.normalized()
	return pt.X >= n.X0 && pt.X <= n.X1 && pt.Y >= n.Y0 && pt.Y <= n.Y1
}

// Area is positive when X1 > X0 and Y1 > Y0 or both are flipped.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rect) BoundingBox() Rect {
	return r.normalized()
}

func (r Rect) Perimeter() float64 {
	return 2 * (math.Abs(r.Width()) + math.Abs(r.Height()))
}

// Winding is 1 inside rectangles of positive area, -1 inside flipped ones
// and 0 elsewhere. The bounds are half-open like [Rect.Contains].
func (r Rect) Winding(pt Point) int {
	if !r.normalized().Contains(pt) {
		return 0
	}
	if r.Area() < 0 {
		return -1
	}
	return 1
}

func (r Rect) Path() Path { return slices.Collect(r.PathElements()) }

func (r Rect) PathElements() iter.Seq[PathElement] {
	return PolylineElements([]Point{
		Pt(r.X0, r.Y0),
		Pt(r.X1, r.Y0),
		Pt(r.X1, r.Y1),
		Pt(r.X0, r.Y1),
	}, true)
}
