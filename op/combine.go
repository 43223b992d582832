package op

import "math"

// Chain composes ops left to right: the first is evaluated at the position,
// each following op at the previous result. An empty chain is the identity.
func Chain(ops ...Func) Func {
	return func(pos float64) float64 {
		v := pos
		for _, f := range ops {
			v = f(v)
		}
		return v
	}
}

// Ring returns the product of a and b.
func Ring(a, b Func) Func {
	return func(pos float64) float64 {
		return a(pos) * b(pos)
	}
}

// Mult scales the output of f by scalar.
func Mult(f Func, scalar float64) Func {
	return func(pos float64) float64 {
		return f(pos) * scalar
	}
}

// Bias adds offset to the output of f. A nil offset adds nothing.
func Bias(f Func, offset Func) Func {
	return func(pos float64) float64 {
		return f(pos) + eval(offset, pos, 0)
	}
}

// Phase shifts the position passed to f by offset, wrapping results above 1.
func Phase(f Func, offset Func) Func {
	return func(pos float64) float64 {
		pos += eval(offset, pos, 0)
		if pos > 1 {
			pos = math.Mod(pos, 1)
		}
		return f(pos)
	}
}

// Rate scales the position passed to f by rate, wrapping results above 1.
func Rate(f Func, rate Func) Func {
	return func(pos float64) float64 {
		pos *= eval(rate, pos, 1)
		if pos > 1 {
			pos = math.Mod(pos, 1)
		}
		return f(pos)
	}
}

// Fold reflects the output of f downwards about threshold whenever it
// exceeds it. A nil threshold is 1.
func Fold(f Func, threshold Func) Func {
	return func(pos float64) float64 {
		t := eval(threshold, pos, 1)
		v := f(pos)
		if v > t {
			v = t - (v - t)
		}
		return v
	}
}

// LowPass averages f over window positions trailing pos at steps of
// 1/window. Trailing positions are clamped to [0, 1].
func LowPass(f Func, window int) Func {
	window = max(window, 1)
	return func(pos float64) float64 {
		var sum float64
		for i := range window {
			sum += f(Clamp(pos - float64(i)/float64(window)))
		}
		return sum / float64(window)
	}
}
