// Package rnd provides the random and coherent-noise service consumed by
// curves and operators.
//
// Randomness is always passed explicitly as a [Source]. Nothing in this
// module draws from package-level generator state, so seeding a [Rand] with
// the same value reproduces the same output.
package rnd

import (
	"math"
	"math/rand/v2"
)

// Source is the random service used by jittered curves, random operators and
// interior point sampling.
//
// Implementations need not be safe for concurrent use. Callers that evaluate
// curves from several goroutines must give each goroutine its own Source or
// synchronize access themselves.
type Source interface {
	// Uniform returns a value uniformly distributed in [lo, hi).
	Uniform(lo, hi float64) float64
	// Gaussian returns a normally distributed value with mean 0 and standard
	// deviation 1.
	Gaussian() float64
	// Noise returns multi-octave coherent noise at (x, y, z). The result is
	// in [0, 1) whenever falloff <= 0.5.
	//
	// Each octave doubles the frequency and multiplies the amplitude by
	// falloff. The first octave has amplitude 0.5.
	Noise(x, y, z float64, octaves int, falloff float64) float64
}

// DefaultOctaves and DefaultFalloff are the noise detail used by operators
// that aren't given one.
const (
	DefaultOctaves = 4
	DefaultFalloff = 0.5
)

// Rand is the default [Source], backed by a PCG generator and a
// seed-shuffled permutation table for gradient noise.
type Rand struct {
	r    *rand.Rand
	perm [512]uint8
}

var _ Source = (*Rand)(nil)

// New returns a Rand seeded with seed.
func New(seed uint64) *Rand {
	r := &Rand{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	r.r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := range r.perm {
		r.perm[i] = p[i&255]
	}
	return r
}

func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

func (r *Rand) Gaussian() float64 {
	return r.r.NormFloat64()
}

// IntN returns a uniformly distributed integer in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

func (r *Rand) Noise(x, y, z float64, octaves int, falloff float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var sum float64
	amp := 0.5
	freq := 1.0
	for range octaves {
		sum += amp * (r.noise3(x*freq, y*freq, z*freq)*0.5 + 0.5)
		amp *= falloff
		freq *= 2
	}
	return sum
}

// noise3 is improved gradient noise in [-1, 1].
func (r *Rand) noise3(x, y, z float64) float64 {
	xf, yf, zf := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(xf) & 255
	yi := int(yf) & 255
	zi := int(zf) & 255
	x -= xf
	y -= yf
	z -= zf
	u, v, w := fade(x), fade(y), fade(z)

	p := &r.perm
	a := int(p[xi]) + yi
	aa := int(p[a]) + zi
	ab := int(p[a+1]) + zi
	b := int(p[xi+1]) + yi
	ba := int(p[b]) + zi
	bb := int(p[b+1]) + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad3(p[aa], x, y, z), grad3(p[ba], x-1, y, z)),
			lerp(u, grad3(p[ab], x, y-1, z), grad3(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad3(p[aa+1], x, y, z-1), grad3(p[ba+1], x-1, y, z-1)),
			lerp(u, grad3(p[ab+1], x, y-1, z-1), grad3(p[bb+1], x-1, y-1, z-1))))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad3 computes the dot product of one of twelve gradient directions, picked
// by hash, with (x, y, z).
func grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Triangular returns a value in [lo, hi] drawn from a triangular distribution
// with the given mode.
func Triangular(src Source, lo, hi, mode float64) float64 {
	if hi == lo {
		return lo
	}
	f := (mode - lo) / (hi - lo)
	u := src.Uniform(0, 1)
	if u < f {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}
