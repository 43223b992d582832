package crvs

import (
	"iter"
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
//
// Curves, edges and windows all describe their placement as a rotation and
// scale about a pivot followed by a translation. See [Local].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale scales x and y independently about the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates by th radians about the origin. Positive angles turn +X
// towards +Y, which is clockwise on screen.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates by th radians, keeping center fixed.
func RotateAbout(th float64, center Point) Affine {
	return around(Rotate(th), center)
}

// ScaleAbout scales by (x, y), keeping center fixed.
func ScaleAbout(x, y float64, center Point) Affine {
	return around(Scale(x, y), center)
}

// around conjugates aff by a translation to center.
func around(aff Affine, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(aff).Mul(Translate(c.Negate()))
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotateAbout returns aff followed by [RotateAbout].
func (aff Affine) ThenRotateAbout(th float64, center Point) Affine {
	return RotateAbout(th, center).Mul(aff)
}

// ThenScaleAbout returns aff followed by [ScaleAbout].
func (aff Affine) ThenScaleAbout(x, y float64, center Point) Affine {
	return ScaleAbout(x, y, center).Mul(aff)
}

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Local returns the placement transform shared by curves, edges and
// windows: rotate by rotation, then scale by scale, both about pivot, then
// translate by translation.
func Local(translation, scale Vec2, rotation float64, pivot Point) Affine {
	return Identity.
		ThenRotateAbout(rotation, pivot).
		ThenScaleAbout(scale.X, scale.Y, pivot).
		ThenTranslate(translation)
}

// MapUnitSquare maps the unit square onto rect.
func MapUnitSquare(rect Rect) Affine {
	return Affine{rect.Width(), 0, 0, rect.Height(), rect.X0, rect.Y0}
}

// Transform maps every element of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
