package crvs

import "iter"

// Shape is anything with a polyline outline.
type Shape interface {
	// Perimeter returns the length of a shape's perimeter.
	Perimeter() float64

	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over the "move to", "line to" and
	// "close path" commands that trace the shape.
	PathElements() iter.Seq[PathElement]

	Path() Path
}

// ClosedShape is a [Shape] with a closed outline.
type ClosedShape interface {
	Shape
	// Area returns the signed area of the closed shape.
	//
	// The convention for positive area is that y increases when x is positive.
	// Thus, it is clockwise when down is increasing y (the usual convention for
	// graphics), and anticlockwise when up is increasing y.
	Area() float64

	// Winding returns the [winding number] of pt with respect to the shape.
	//
	// [winding number]: https://en.wikipedia.org/wiki/Winding_number
	Winding(pt Point) int

	Contains(pt Point) bool
}
