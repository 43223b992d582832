package crvs

import (
	"fmt"

	"github.com/discohead/crvs/op"
	"github.com/discohead/crvs/rnd"
)

// Option configures a [Curve] at construction.
type Option func(*Curve) error

// WithAmp modulates the curve's amplitude by ch.
func WithAmp(ch *Curve) Option {
	return func(c *Curve) error { return c.SetAmp(ch) }
}

// WithRate modulates the curve's rate by ch.
func WithRate(ch *Curve) Option {
	return func(c *Curve) error { return c.SetRate(ch) }
}

// WithPhase modulates the curve's phase by ch.
func WithPhase(ch *Curve) Option {
	return func(c *Curve) error { return c.SetPhase(ch) }
}

// WithBias modulates the curve's bias by ch.
func WithBias(ch *Curve) Option {
	return func(c *Curve) error { return c.SetBias(ch) }
}

// WithOffsets sets the amplitude, rate, phase and bias offsets.
func WithOffsets(amp, rate, phase, bias float64) Option {
	return func(c *Curve) error {
		c.AmpOffset = amp
		c.RateOffset = rate
		c.PhaseOffset = phase
		c.BiasOffset = bias
		return nil
	}
}

// WithQuantization quantizes the curve's output to levels values.
func WithQuantization(levels int) Option {
	return func(c *Curve) error {
		c.Quantization = levels
		return nil
	}
}

// WithJitter displaces points by scale with the given probability. Jitter
// requires a source, see [WithSource].
func WithJitter(probability, scale float64) Option {
	return func(c *Curve) error {
		c.JitterProbability = probability
		c.JitterScale = scale
		return nil
	}
}

// WithBounding sets the policy that constrains the curve's values to unit
// space.
func WithBounding(b Bounding) Option {
	return func(c *Curve) error {
		c.Bounding = b
		return nil
	}
}

// WithTransform sets the curve's own transform.
func WithTransform(translation, scale Vec2, rotation float64) Option {
	return func(c *Curve) error {
		c.Translation = translation
		c.Scale = scale
		c.Rotation = rotation
		return nil
	}
}

// WithWindow maps the curve's windowed points through w. Unless a
// resolution is given, the curve's resolution becomes the window's width.
func WithWindow(w *Window) Option {
	return func(c *Curve) error {
		c.Window = w
		return nil
	}
}

// WithResolution sets the default sample count. It fails with
// [ErrResolution] if n is less than 1.
func WithResolution(n int) Option {
	return func(c *Curve) error {
		if n < 1 {
			return fmt.Errorf("curve resolution %d: %w", n, ErrResolution)
		}
		c.Resolution = n
		return nil
	}
}

// WithSource sets the random source used for jitter.
func WithSource(src rnd.Source) Option {
	return func(c *Curve) error {
		c.src = src
		return nil
	}
}

// WithXOp evaluates the X component through f and the same modulation
// pipeline as Y, instead of passing the position through.
func WithXOp(f op.Func) Option {
	return func(c *Curve) error {
		c.xop = f
		return nil
	}
}
