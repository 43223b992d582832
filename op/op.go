// Package op provides evaluators over the unit interval and the combinators
// that build expression trees out of them.
//
// A [Func] maps a position, normally in [0, 1], to a value. Most factories
// take further Funcs as parameters (a triangle's asymmetry, a pulse's width,
// an easing exponent), so parameters can themselves vary with position. A nil
// Func parameter selects that parameter's documented default. Trees are
// evaluated eagerly and uncached: every call re-evaluates every parameter.
//
// Operators that draw random numbers take an explicit [rnd.Source].
package op

import "math"

// Func is an evaluator over the unit interval.
type Func func(pos float64) float64

// Const returns a Func that always returns v.
func Const(v float64) Func {
	return func(float64) float64 { return v }
}

// eval evaluates f at pos, or returns def if f is nil.
func eval(f Func, pos, def float64) float64 {
	if f == nil {
		return def
	}
	return f(pos)
}

// Clamp clamps pos to [0, 1].
func Clamp(pos float64) float64 {
	return max(0, min(1, pos))
}

// PosToRad maps a position in [0, 1] onto [0, 2π]. Positions outside the unit
// interval are clamped first.
func PosToRad(pos float64) float64 {
	return Clamp(pos) * 2 * math.Pi
}

// fract returns the fractional part of v, always in [0, 1).
func fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// Bipolarize maps the unipolar output of f onto [-1, 1].
func Bipolarize(f Func) Func {
	return func(pos float64) float64 {
		return f(pos)*2 - 1
	}
}

// Rectify maps the bipolar output of f onto [0, 1].
func Rectify(f Func) Func {
	return func(pos float64) float64 {
		return f(pos)*0.5 + 0.5
	}
}

// Sample evaluates f at n positions i/n. If mapFn is not nil, each sample is
// passed through it.
func Sample(f Func, n int, mapFn Func) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		v := f(float64(i) / float64(n))
		if mapFn != nil {
			v = mapFn(v)
		}
		out[i] = v
	}
	return out
}
