package crvs

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Curves produce points in unit space;
// windows map them into output space.
type Point struct {
	X float64
	Y float64
}

// UnitCenter is the center of unit space, the pivot of curve transforms.
var UnitCenter = Point{X: 0.5, Y: 0.5}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Pt(pt.X+o.X, pt.Y+o.Y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

// Lerp linearly interpolates between two points. Lerp returns pt exactly at
// t = 0 and o exactly at t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (1-t)*pt.X + t*o.X,
		Y: (1-t)*pt.Y + t*o.Y,
	}
}

func (pt Point) Midpoint(o Point) Point {
	return Pt(0.5*(pt.X+o.X), 0.5*(pt.Y+o.Y))
}

func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// Clamp moves pt onto the nearest point of r, whatever r's orientation.
func (pt Point) Clamp(r Rect) Point {
	r = r.normalized()
	return Pt(Clip(pt.X, r.X0, r.X1), Clip(pt.Y, r.Y0, r.Y1))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Centroid returns the arithmetic mean of pts, or the zero point if pts is
// empty.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{X: c.X / n, Y: c.Y / n}
}
