package op

import "math"

// Phasor returns a rising ramp, the identity over [0, 1].
func Phasor() Func {
	return func(pos float64) float64 { return pos }
}

// Saw returns a falling ramp, 1-pos.
func Saw() Func {
	return func(pos float64) float64 { return 1 - pos }
}

// Tri returns a triangle that peaks at position s. A nil s peaks at 0.5.
func Tri(s Func) Func {
	return func(pos float64) float64 {
		sv := eval(s, pos, 0.5)
		if pos < sv {
			return pos / sv
		}
		return 1 - (pos-sv)/(1-sv)
	}
}

// Sine returns one unipolar period of a sine.
//
// If fb is not nil, the position is first displaced by the unipolar sine of
// itself, scaled by fb. A zero fb leaves the waveform unchanged.
func Sine(fb Func) Func {
	return func(pos float64) float64 {
		if fb != nil {
			pos = pos + fb(pos)*(math.Sin(PosToRad(pos))*0.5+0.5)
		}
		return math.Sin(PosToRad(math.Mod(pos, 1)))*0.5 + 0.5
	}
}

// Cos returns one unipolar period of a cosine. See [Sine] for fb.
func Cos(fb Func) Func {
	return func(pos float64) float64 {
		if fb != nil {
			pos = pos + fb(pos)*(math.Cos(PosToRad(pos))*0.5+0.5)
		}
		return math.Cos(PosToRad(math.Mod(pos, 1)))*0.5 + 0.5
	}
}

// Tan returns a tangent over one period, offset by 0.5. It is unbounded near
// the quarter and three-quarter positions. See [Sine] for fb.
func Tan(fb Func) Func {
	return func(pos float64) float64 {
		if fb != nil {
			pos = pos + fb(pos)*(math.Tan(PosToRad(pos))*0.5+0.5)
		}
		return math.Tan(PosToRad(math.Mod(pos, 1)))*0.5 + 0.5
	}
}

// Asin returns the arcsine of the bipolar position, normalized to [0, 1].
func Asin() Func {
	return func(pos float64) float64 {
		return (math.Asin(pos*2-1) + math.Pi/2) / math.Pi
	}
}

// Acos returns the arccosine of the bipolar position, normalized to [0, 1].
func Acos() Func {
	return func(pos float64) float64 {
		return math.Acos(pos*2-1) / math.Pi
	}
}

// Atan returns the arctangent of the position in radians, offset by 0.5.
func Atan() Func {
	return func(pos float64) float64 {
		return math.Atan(PosToRad(pos))*0.5 + 0.5
	}
}

// Sinh, Cosh and Tanh evaluate hyperbolic functions of the position in
// radians, halved and offset by 0.5. Sinh and Cosh grow past 1.
func Sinh() Func {
	return func(pos float64) float64 {
		return math.Sinh(PosToRad(pos))*0.5 + 0.5
	}
}

func Cosh() Func {
	return func(pos float64) float64 {
		return math.Cosh(PosToRad(pos))*0.5 + 0.5
	}
}

func Tanh() Func {
	return func(pos float64) float64 {
		return math.Tanh(PosToRad(pos))*0.5 + 0.5
	}
}

// Asinh returns asinh(pos), halved and offset by 0.5.
func Asinh() Func {
	return func(pos float64) float64 {
		return math.Asinh(pos)*0.5 + 0.5
	}
}

// Acosh returns acosh(1+pos) normalized so that position 1 maps to 1.
func Acosh() Func {
	norm := math.Acosh(2)
	return func(pos float64) float64 {
		return math.Acosh(1+pos) / norm
	}
}

// Atanh returns atanh(pos). It diverges as pos approaches 1.
func Atanh() Func {
	return func(pos float64) float64 {
		return math.Atanh(pos)
	}
}

// Ln returns a logarithmic rise from 0 at position 0 to 1 at position 1.
func Ln() Func {
	return func(pos float64) float64 {
		return math.Log1p(pos) / math.Ln2
	}
}

// Exp returns an exponential rise from 0 at position 0 to 1 at position 1.
func Exp() Func {
	return func(pos float64) float64 {
		return math.Expm1(pos) / (math.E - 1)
	}
}

// Pulse returns 0 before position w and 1 from w on. A nil w is 0.5.
func Pulse(w Func) Func {
	return func(pos float64) float64 {
		if pos < eval(w, pos, 0.5) {
			return 0
		}
		return 1
	}
}

// Square is a pulse with a width of 0.5.
func Square() Func {
	return Pulse(nil)
}

// EaseIn returns pos raised to e. A nil e is 2.
func EaseIn(e Func) Func {
	return func(pos float64) float64 {
		return math.Pow(pos, eval(e, pos, 2))
	}
}

// EaseOut mirrors [EaseIn]. A nil e is 3.
func EaseOut(e Func) Func {
	return func(pos float64) float64 {
		return 1 - math.Pow(1-pos, eval(e, pos, 3))
	}
}

// EaseInOut eases in over the first half and out over the second. A nil e is 3.
func EaseInOut(e Func) Func {
	return func(pos float64) float64 {
		ev := eval(e, pos, 3)
		v := pos * 2
		if v < 1 {
			return 0.5 * math.Pow(v, ev)
		}
		return 0.5 * (2 - math.Pow(2-v, ev))
	}
}

// EaseOutIn eases out over the first half and in over the second. A nil e is 3.
func EaseOutIn(e Func) Func {
	return func(pos float64) float64 {
		ev := eval(e, pos, 3)
		v := pos * 2
		if v < 1 {
			return 1 - math.Pow(1-v, ev)*0.5 - 0.5
		}
		return math.Pow(v-1, ev)*0.5 + 0.5
	}
}
