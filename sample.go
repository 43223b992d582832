package crvs

import (
	"iter"
	"slices"

	"github.com/discohead/crvs/op"
)

// SampleOptions controls how a curve is sampled into points.
type SampleOptions struct {
	// Windowed maps points through the curve's window.
	Windowed bool
	// Transformed applies the curve's own transform.
	Transformed bool
	// Distribution, if not nil, remaps each uniform position i/n before
	// evaluation, concentrating samples where it is shallow.
	Distribution op.Func
}

// positions yields the n sampling positions i/n, remapped through dist.
func positions(n int, dist op.Func) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range n {
			pos := float64(i) / float64(n)
			if dist != nil {
				pos = dist(pos)
			}
			if !yield(pos) {
				return
			}
		}
	}
}

func (c *Curve) count(n int) int {
	if n < 1 {
		return max(c.Resolution, 1)
	}
	return n
}

// Points returns an iterator over n points sampled at uniformly spaced
// positions i/n. If n is less than 1, the curve's resolution is used.
func (c *Curve) Points(n int, opts SampleOptions) iter.Seq[Point] {
	n = c.count(n)
	return func(yield func(Point) bool) {
		for pos := range positions(n, opts.Distribution) {
			var p Point
			if opts.Windowed {
				p = c.WindowPointAt(pos, opts.Transformed)
			} else {
				p = c.PointAt(pos, opts.Transformed)
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Sample collects [Curve.Points] into a slice.
func (c *Curve) Sample(n int, opts SampleOptions) []Point {
	out := make([]Point, 0, c.count(n))
	return slices.AppendSeq(out, c.Points(n, opts))
}

// Values samples one component of the curve at the positions used by
// [Curve.Points].
func (c *Curve) Values(n int, comp Component, dist op.Func) []float64 {
	n = c.count(n)
	out := make([]float64, 0, n)
	for pos := range positions(n, dist) {
		out = append(out, c.ValueAt(comp, pos))
	}
	return out
}

// Path returns the polyline through the curve's sampled points.
func (c *Curve) Path(n int, closed bool, opts SampleOptions) Path {
	return Polyline(c.Sample(n, opts), closed)
}
