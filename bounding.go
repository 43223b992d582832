package crvs

import (
	"fmt"
	"math"
)

// Bounding is a policy for constraining coordinates to a range.
type Bounding int

const (
	// BoundNone leaves coordinates untouched.
	BoundNone Bounding = iota
	// BoundClip clamps coordinates to the range.
	BoundClip
	// BoundWrap wraps coordinates around the range.
	BoundWrap
	// BoundFold reflects coordinates back and forth at the range's ends.
	BoundFold
)

func (b Bounding) String() string {
	switch b {
	case BoundNone:
		return "None"
	case BoundClip:
		return "Clip"
	case BoundWrap:
		return "Wrap"
	case BoundFold:
		return "Fold"
	default:
		return fmt.Sprintf("Bounding(%d)", int(b))
	}
}

// Apply constrains v to [lo, hi] according to b.
func (b Bounding) Apply(v, lo, hi float64) float64 {
	switch b {
	case BoundClip:
		return Clip(v, lo, hi)
	case BoundWrap:
		return Wrap(v, lo, hi)
	case BoundFold:
		return Fold(v, lo, hi)
	default:
		return v
	}
}

// Point constrains both coordinates of pt to unit space.
func (b Bounding) Point(pt Point) Point {
	return Point{
		X: b.Apply(pt.X, 0, 1),
		Y: b.Apply(pt.Y, 0, 1),
	}
}

// Clip clamps v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Wrap wraps v into the half-open range [lo, hi), except that hi itself maps
// to hi. An empty or inverted range maps everything to lo.
func Wrap(v, lo, hi float64) float64 {
	r := hi - lo
	if !(r > 0) {
		return lo
	}
	if v >= lo && v < hi {
		return v
	}
	if v == hi {
		return hi
	}
	f := math.Mod(v-lo, r)
	if f < 0 {
		f += r
		if f >= r {
			// v-lo was a tiny negative number.
			f = 0
		}
	}
	return f + lo
}

// Fold reflects v back and forth between lo and hi until it lies in
// [lo, hi]. Values already in range are returned unchanged. An empty or
// inverted range maps everything to lo.
func Fold(v, lo, hi float64) float64 {
	r := hi - lo
	if !(r > 0) {
		return lo
	}
	if v >= lo && v <= hi {
		return v
	}
	f := math.Mod(v-lo, 2*r)
	if f < 0 {
		f += 2 * r
	}
	return hi - math.Abs(f-r)
}
