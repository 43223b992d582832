package crvs

// Size is a width and height, as of a window or rectangle.
type Size struct {
	Width  float64
	Height float64
}

func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}
