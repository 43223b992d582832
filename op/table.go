package op

import "slices"

// Table returns a lookup into a bipolar wavetable. The position is mapped
// onto the table's length and the sample found there is rectified into
// [0, 1]. The table is copied.
func Table(table []float64) Func {
	if len(table) == 0 {
		return Const(0.5)
	}
	t := slices.Clone(table)
	return func(pos float64) float64 {
		i := int(Clamp(pos) * float64(len(t)))
		i = min(i, len(t)-1)
		return (t[i] + 1) / 2
	}
}

// Timeseries returns a piecewise-linear interpolation over values, which
// are first min-max normalized into [0, 1]. Position 0 is the first value,
// position 1 the last.
//
// A series whose values are all equal normalizes to 0.
func Timeseries(values []float64) Func {
	if len(values) == 0 {
		return Const(0)
	}
	norm := normalize(values)
	if len(norm) == 1 {
		return Const(norm[0])
	}
	last := float64(len(norm) - 1)
	return func(pos float64) float64 {
		x := Clamp(pos) * last
		i := int(x)
		if i >= len(norm)-1 {
			return norm[len(norm)-1]
		}
		frac := x - float64(i)
		return norm[i]*(1-frac) + norm[i+1]*frac
	}
}

func normalize(values []float64) []float64 {
	lo := slices.Min(values)
	hi := slices.Max(values)
	out := make([]float64, len(values))
	if hi == lo {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
