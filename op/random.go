package op

import (
	"math"

	"github.com/discohead/crvs/rnd"
)

// Uniform returns uniform noise in [lo, hi). Nil bounds are 0 and 1.
func Uniform(src rnd.Source, lo, hi Func) Func {
	return func(pos float64) float64 {
		l := eval(lo, pos, 0)
		h := eval(hi, pos, 1)
		return l + src.Uniform(0, h-l)
	}
}

// Triangular returns noise in [lo, hi] with a triangular distribution peaking
// at mode. Nil bounds are 0 and 1, a nil mode is their midpoint.
func Triangular(src rnd.Source, lo, hi, mode Func) Func {
	return func(pos float64) float64 {
		l := eval(lo, pos, 0)
		h := eval(hi, pos, 1)
		return rnd.Triangular(src, l, h, eval(mode, pos, (l+h)/2))
	}
}

// Gaussian returns normally distributed noise folded into [lo, hi]. Nil bounds
// are 0 and 1.
//
// Samples outside one standard deviation are reduced modulo 1, so the output
// never leaves the range.
func Gaussian(src rnd.Source, lo, hi Func) Func {
	return func(pos float64) float64 {
		g := src.Gaussian()
		if g < -1 || g > 1 {
			g = math.Mod(g, 1)
		}
		g = (g + 1) * 0.5
		l := eval(lo, pos, 0)
		h := eval(hi, pos, 1)
		return l + g*(h-l)
	}
}

// Noise returns coherent noise sampled at (x, y, z).
//
// A nil x is the position itself, nil y and z are 0. Nil octaves and falloff
// are [rnd.DefaultOctaves] and [rnd.DefaultFalloff]. Octaves are truncated to
// an integer.
func Noise(src rnd.Source, x, y, z, octaves, falloff Func) Func {
	return func(pos float64) float64 {
		xv := pos
		if x != nil {
			xv = x(pos)
		}
		return src.Noise(
			xv,
			eval(y, pos, 0),
			eval(z, pos, 0),
			int(eval(octaves, pos, rnd.DefaultOctaves)),
			eval(falloff, pos, rnd.DefaultFalloff),
		)
	}
}

// Choose evaluates one of ops, picked uniformly at random on every call.
func Choose(src rnd.Source, ops ...Func) Func {
	if len(ops) == 0 {
		return Const(0)
	}
	return func(pos float64) float64 {
		i := int(src.Uniform(0, float64(len(ops))))
		return ops[min(i, len(ops)-1)](pos)
	}
}
