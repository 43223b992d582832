package crvs

import (
	"context"
	"log/slog"
	"math"

	"github.com/discohead/crvs/op"
	"github.com/discohead/crvs/rnd"

	"github.com/google/uuid"
)

// Component selects a coordinate of a curve's output.
type Component int

const (
	X Component = iota
	Y
)

func (c Component) String() string {
	if c == X {
		return "X"
	}
	return "Y"
}

// MaxDepth is the deepest modulation graph a curve may root. Evaluation never
// descends further than this, so an over-deep graph degrades instead of
// exhausting the stack.
const MaxDepth = 64

// DefaultResolution is the resolution of curves without a window.
const DefaultResolution = 100

// Curve is a node in a modulation graph.
//
// A curve evaluates its operator at a remapped position and turns the result
// into a unit-space point. Its amplitude, rate, phase and bias can each be
// modulated by a child curve. Children are attached at construction or with
// the Set methods, which reject cycles, and can be shared between parents.
//
// The exported fields tune evaluation and may be changed between samplings.
// Curves are not safe for concurrent use while being mutated, and a curve
// with a [rnd.Source] is only as safe for concurrent use as its source.
type Curve struct {
	id  uuid.UUID
	op  op.Func
	xop op.Func
	src rnd.Source

	amp   *Curve
	rate  *Curve
	phase *Curve
	bias  *Curve

	// AmpOffset multiplies the amplitude. Defaults to 1.
	AmpOffset float64
	// RateOffset multiplies the position. Defaults to 1.
	RateOffset float64
	// PhaseOffset is added to the position.
	PhaseOffset float64
	// BiasOffset is added to the output.
	BiasOffset float64
	// Quantization is the number of output levels. Values of 1 or less
	// disable quantization.
	Quantization int

	// JitterProbability is the chance that a point is jittered.
	JitterProbability float64
	// JitterScale is the magnitude of jitter displacement.
	JitterScale float64

	Bounding Bounding

	// Origin is added to every point after the curve's transform.
	Origin Vec2
	// Translation, Scale and Rotation (in radians) form the curve's
	// transform about [UnitCenter].
	Translation Vec2
	Scale       Vec2
	Rotation    float64

	// Window maps points into output space. A nil window leaves windowed
	// points in unit space.
	Window *Window
	// Resolution is the sample count used when none is given.
	Resolution int
}

// NewCurve returns a curve over f. A nil f is the rising ramp [op.Phasor].
//
// The options are applied in order. NewCurve returns an error if an option
// is invalid.
func NewCurve(f op.Func, opts ...Option) (*Curve, error) {
	if f == nil {
		f = op.Phasor()
	}
	c := &Curve{
		id:         uuid.New(),
		op:         f,
		AmpOffset:  1,
		RateOffset: 1,
		Scale:      Vec(1, 1),
		Resolution: -1,
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	if c.Resolution < 0 {
		c.Resolution = DefaultResolution
		if c.Window != nil {
			c.Resolution = c.Window.Width
		}
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("curve created", "id", c.id, "depth", c.Depth(), "resolution", c.Resolution)
	}
	return c, nil
}

// MustCurve is like [NewCurve] but panics on error.
func MustCurve(f op.Func, opts ...Option) *Curve {
	c, err := NewCurve(f, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the curve's identity.
func (c *Curve) ID() uuid.UUID { return c.id }

// Op returns the curve's operator.
func (c *Curve) Op() op.Func { return c.op }

// Source returns the curve's random source, or nil.
func (c *Curve) Source() rnd.Source { return c.src }

// Amp, Rate, Phase and Bias return the curve's modulation children, or nil.
func (c *Curve) Amp() *Curve   { return c.amp }
func (c *Curve) Rate() *Curve  { return c.rate }
func (c *Curve) Phase() *Curve { return c.phase }
func (c *Curve) Bias() *Curve  { return c.bias }

// Clone returns a shallow copy of c with a new identity. Children are shared
// with c.
func (c *Curve) Clone() *Curve {
	out := *c
	out.id = uuid.New()
	return &out
}

// ValueAt evaluates one component of the curve at pos.
//
// X is the identity unless the curve has an X operator (see [WithXOp]). Y,
// and an overridden X, evaluate the operator at [Curve.Remap] of pos,
// quantize the result, map it to bipolar and apply amplitude and bias:
//
//	f = AmpOffset * amp(pos) / 2
//	v = (2*quantize(op(pos)) - 1) * f + f + bias(pos) + BiasOffset
//
// where absent children contribute 1 for amp and 0 for bias.
func (c *Curve) ValueAt(comp Component, pos float64) float64 {
	return c.valueAt(comp, pos, 0)
}

// XAt is ValueAt(X, pos).
func (c *Curve) XAt(pos float64) float64 { return c.valueAt(X, pos, 0) }

// YAt is ValueAt(Y, pos).
func (c *Curve) YAt(pos float64) float64 { return c.valueAt(Y, pos, 0) }

func (c *Curve) valueAt(comp Component, pos float64, depth int) float64 {
	f := c.op
	if comp == X {
		if c.xop == nil {
			return pos
		}
		f = c.xop
	}
	p := c.remap(pos, depth)
	v := c.Quantize(f(p))*2 - 1
	return c.ampBias(v, p, depth)
}

// child evaluates a modulation child, treating it as absent past MaxDepth.
func (c *Curve) child(ch *Curve, pos float64, depth int, def float64) float64 {
	if ch == nil || depth+1 >= MaxDepth {
		return def
	}
	return ch.valueAt(Y, pos, depth+1)
}

// Remap normalizes pos into [0, 1), applying rate and phase.
func (c *Curve) Remap(pos float64) float64 {
	return c.remap(pos, 0)
}

func (c *Curve) remap(pos float64, depth int) float64 {
	pos = math.Abs(pos) * c.RateOffset
	if pos > 1 {
		pos = math.Mod(pos, 1)
	}
	pos *= c.child(c.rate, pos, depth, 1)
	pos += c.child(c.phase, pos, depth, 0)
	return fract(pos + c.PhaseOffset)
}

func (c *Curve) ampBias(v, pos float64, depth int) float64 {
	f := c.AmpOffset * c.child(c.amp, pos, depth, 1) / 2
	v = v*f + f
	v += c.child(c.bias, pos, depth, 0)
	return v + c.BiasOffset
}

// Quantize rounds y to the curve's quantization levels.
func (c *Curve) Quantize(y float64) float64 {
	return Quantize(y, c.Quantization)
}

// Quantize rounds y to the nearest of levels equally spaced values spanning
// [0, 1]. Levels of 1 or less leave y unchanged.
func Quantize(y float64, levels int) float64 {
	if levels <= 1 {
		return y
	}
	step := 1 / float64(levels-1)
	return math.Round(y/step) * step
}

// fract returns the fractional part of v, always in [0, 1).
func fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// Transform returns the curve's own transform: rotation, then scale, both
// about [UnitCenter], then translation.
func (c *Curve) Transform() Affine {
	return Local(c.Translation, c.Scale, c.Rotation, UnitCenter)
}

// PointAt returns the unit-space point at pos.
//
// The point is jittered, transformed by [Curve.Transform] if transformed is
// set, offset by Origin and finally bounded.
func (c *Curve) PointAt(pos float64, transformed bool) Point {
	p := Pt(c.XAt(pos), c.YAt(pos))
	p = c.jitter(p)
	if transformed {
		p = p.Transform(c.Transform())
	}
	p = p.Translate(c.Origin)
	return c.Bounding.Point(p)
}

// WindowPointAt returns [Curve.PointAt] mapped through the curve's window.
func (c *Curve) WindowPointAt(pos float64, transformed bool) Point {
	p := c.PointAt(pos, transformed)
	if c.Window == nil {
		return p
	}
	return c.Window.Apply(p)
}

func (c *Curve) jitter(p Point) Point {
	if c.src == nil || c.JitterScale == 0 || c.JitterProbability <= 0 {
		return p
	}
	if c.JitterProbability <= c.src.Uniform(0, 1) {
		return p
	}
	th := c.src.Uniform(0, 2*math.Pi)
	return p.Translate(VecFromAngle(th).Mul(c.JitterScale))
}
