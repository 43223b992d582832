package crvs

import "fmt"

// Window maps unit-space points into an output rectangle.
//
// The window's transform is independent of any curve's transform: points
// are scaled from the unit square onto (Width-1)×(Height-1), rotated and
// scaled about the window's local center, translated, offset by Origin and
// finally clamped into [Window.Bounds].
type Window struct {
	Width  int
	Height int
	Origin Point

	Translation Vec2
	// Scale defaults to ⟨1, 1⟩.
	Scale Vec2
	// Rotation is in radians.
	Rotation float64
}

// NewWindow returns a window of the given dimensions at the origin. It returns
// an error wrapping [ErrDimension] if either dimension is less than 1.
func NewWindow(width, height int) (*Window, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("window %d×%d: %w", width, height, ErrDimension)
	}
	return &Window{
		Width:  width,
		Height: height,
		Scale:  Vec(1, 1),
	}, nil
}

// InsetWindow returns a window covering the rectangle at (x, y) of the given
// size, shrunk on each axis by the given fraction of its size. Half the inset
// goes to each side.
func InsetWindow(x, y, width, height int, insetX, insetY float64) (*Window, error) {
	padX := int(float64(width) * insetX)
	padY := int(float64(height) * insetY)
	w, err := NewWindow(width-padX, height-padY)
	if err != nil {
		return nil, fmt.Errorf("inset window: %w", err)
	}
	w.Origin = Pt(float64(x+padX/2), float64(y+padY/2))
	return w, nil
}

// Size returns the window's dimensions.
func (w *Window) Size() Size {
	return Sz(float64(w.Width), float64(w.Height))
}

// Bounds returns the rectangle points are clamped into.
func (w *Window) Bounds() Rect {
	return NewRectFromOrigin(w.Origin, w.Size())
}

// Center returns the center of [Window.Bounds].
func (w *Window) Center() Point {
	return w.Bounds().Center()
}

// Transform returns the affine transform from unit space into output space,
// before clamping.
func (w *Window) Transform() Affine {
	sx, sy := float64(w.Width-1), float64(w.Height-1)
	local := Local(w.Translation.Add(Vec2(w.Origin)), w.Scale, w.Rotation, Pt(sx/2, sy/2))
	return local.Mul(MapUnitSquare(Rect{0, 0, sx, sy}))
}

// Apply maps a unit-space point into output space and clamps it into the
// window's bounds.
func (w *Window) Apply(pt Point) Point {
	return w.Clamp(pt.Transform(w.Transform()))
}

// Clamp clamps pt into the window's bounds.
func (w *Window) Clamp(pt Point) Point {
	return pt.Clamp(w.Bounds())
}
