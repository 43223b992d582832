package crvs

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane: a translation, a scale factor pair
// or an edge direction.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns the unit vector at th radians from +X.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec(x, y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec(v.X+o.X, v.Y+o.Y) }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec(v.X-o.X, v.Y-o.Y) }

func (v Vec2) Mul(f float64) Vec2 { return Vec(v.X*f, v.Y*f) }

func (v Vec2) Negate() Vec2 { return Vec(-v.X, -v.Y) }

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o. It is
// positive when o lies counterclockwise of v in a y-up frame.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns v scaled to length 1. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	h := v.Hypot()
	if h == 0 {
		return v
	}
	return v.Mul(1 / h)
}

// Perp returns v turned a quarter turn from +X towards +Y.
func (v Vec2) Perp() Vec2 {
	return Vec(-v.Y, v.X)
}
