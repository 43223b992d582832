package crvs

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/discohead/crvs/op"
	"github.com/discohead/crvs/rnd"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultCurveIsIdentity(t *testing.T) {
	c := MustCurve(nil)
	for i := range 1000 {
		pos := float64(i) / 1000
		if y := c.YAt(pos); math.Abs(y-pos) > 1e-12 {
			t.Fatalf("YAt(%v) = %v, want %v", pos, y, pos)
		}
		if x := c.XAt(pos); x != pos {
			t.Fatalf("XAt(%v) = %v, want %v", pos, x, pos)
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		y      float64
		levels int
		want   float64
	}{
		{0.6, 3, 0.5},
		{0.8, 3, 1},
		{0.2, 3, 0},
		{0.3, 2, 0},
		{0.6, 2, 1},
		{0.37, 1, 0.37},
		{0.37, 0, 0.37},
		{0.37, -4, 0.37},
	}
	for _, tt := range tests {
		if got := Quantize(tt.y, tt.levels); got != tt.want {
			t.Errorf("Quantize(%v, %d) = %v, want %v", tt.y, tt.levels, got, tt.want)
		}
	}

	c := MustCurve(nil, WithQuantization(3))
	diff(t, []float64{0, 0, 0.5, 0.5, 1}, c.Values(5, Y, nil), cmpopts.EquateApprox(0, 1e-12))
}

func TestRemapRange(t *testing.T) {
	src := rnd.New(21)
	rate := MustCurve(op.Sine(nil))
	phase := MustCurve(op.Saw())
	curves := []*Curve{
		MustCurve(nil),
		MustCurve(nil, WithOffsets(1, 3.7, -0.4, 0)),
		MustCurve(nil, WithRate(rate), WithPhase(phase)),
		MustCurve(nil, WithOffsets(1, -2, 1e9, 0), WithRate(rate)),
	}
	for i, c := range curves {
		for range 5000 {
			pos := src.Uniform(-1e3, 1e3)
			if r := c.Remap(pos); r < 0 || r >= 1 {
				t.Fatalf("curve %d: Remap(%v) = %v, want value in [0, 1)", i, pos, r)
			}
		}
		for _, pos := range []float64{0, 1, -1, 1e300, -1e-300} {
			if r := c.Remap(pos); r < 0 || r >= 1 {
				t.Fatalf("curve %d: Remap(%v) = %v, want value in [0, 1)", i, pos, r)
			}
		}
	}
}

func TestAmpBias(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	half := MustCurve(op.Const(0.5))
	quarter := MustCurve(op.Const(0.25))
	pos := []float64{0, 0.2, 0.5, 0.8}
	tests := []struct {
		name string
		c    *Curve
		want func(p float64) float64
	}{
		{"amp offset", MustCurve(nil, WithOffsets(0.5, 1, 0, 0)), func(p float64) float64 { return p / 2 }},
		{"bias offset", MustCurve(nil, WithOffsets(1, 1, 0, 0.1)), func(p float64) float64 { return p + 0.1 }},
		{"amp child", MustCurve(nil, WithAmp(half)), func(p float64) float64 { return p / 2 }},
		{"bias child", MustCurve(nil, WithBias(quarter)), func(p float64) float64 { return p + 0.25 }},
		{"rate child", MustCurve(nil, WithRate(half)), func(p float64) float64 { return p / 2 }},
		{"phase child", MustCurve(nil, WithPhase(quarter)), func(p float64) float64 { return fract(p + 0.25) }},
		{"phase offset", MustCurve(nil, WithOffsets(1, 1, 0.5, 0)), func(p float64) float64 { return fract(p + 0.5) }},
		{"rate offset", MustCurve(nil, WithOffsets(1, 2, 0, 0)), func(p float64) float64 { return fract(2 * p) }},
		{"constant", half, func(float64) float64 { return 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]float64, len(pos))
			got := make([]float64, len(pos))
			for i, p := range pos {
				want[i] = tt.want(p)
				got[i] = tt.c.YAt(p)
			}
			diff(t, want, got, approx)
		})
	}
}

func TestXOp(t *testing.T) {
	c := MustCurve(op.Saw(), WithXOp(op.Phasor()))
	diff(t, 0.25, c.XAt(0.25), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.75, c.YAt(0.25), cmpopts.EquateApprox(0, 1e-12))

	// X goes through the same modulation as Y.
	c = MustCurve(nil, WithXOp(op.Phasor()), WithOffsets(0.5, 1, 0, 0))
	diff(t, 0.125, c.ValueAt(X, 0.25), cmpopts.EquateApprox(0, 1e-12))
}

func TestCycleRejected(t *testing.T) {
	a := MustCurve(nil)
	b := MustCurve(nil, WithAmp(a))
	c := MustCurve(nil, WithPhase(b))

	if err := a.SetAmp(a); !errors.Is(err, ErrCycle) {
		t.Errorf("self modulation: got %v, want ErrCycle", err)
	}
	if err := a.SetRate(c); !errors.Is(err, ErrCycle) {
		t.Errorf("indirect cycle: got %v, want ErrCycle", err)
	}
	if a.Rate() != nil {
		t.Error("failed SetRate modified the curve")
	}
	if err := a.SetBias(b.Clone()); !errors.Is(err, ErrCycle) {
		t.Errorf("cycle through clone: got %v, want ErrCycle", err)
	}

	// Shared children are not cycles.
	shared := MustCurve(op.Const(0.5))
	d, err := NewCurve(nil, WithAmp(shared), WithRate(shared), WithBias(shared))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	diff(t, 2, d.Depth())
	diff(t, 3, c.Depth())

	if err := b.SetAmp(nil); err != nil {
		t.Fatal(err)
	}
	if b.Amp() != nil {
		t.Error("SetAmp(nil) didn't remove the child")
	}
}

func TestValidateFindsCycle(t *testing.T) {
	a := MustCurve(nil)
	b := MustCurve(nil, WithRate(a))
	c := MustCurve(nil, WithBias(b), WithPhase(a))
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	diff(t, 3, c.Depth())

	// Bypass the setters to build a graph they would reject.
	a.amp = c
	err := c.Validate()
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("got %v, want ErrCycle", err)
	}
	for _, id := range []string{a.ID().String(), c.ID().String()} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error %q doesn't name curve %s", err, id)
		}
	}
	a.amp = nil
	if err := c.Validate(); err != nil {
		t.Errorf("Validate after removing the cycle: %v", err)
	}
}

func TestDepthLimit(t *testing.T) {
	c := MustCurve(nil)
	for range MaxDepth - 1 {
		c = MustCurve(nil, WithAmp(c))
	}
	diff(t, MaxDepth, c.Depth())
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate at MaxDepth: %v", err)
	}
	if _, err := NewCurve(nil, WithAmp(c)); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want ErrDepth", err)
	}
	// Evaluation of the deepest graph still terminates.
	if y := c.YAt(0.5); math.IsNaN(y) {
		t.Errorf("YAt = %v", y)
	}
}

func TestResolution(t *testing.T) {
	diff(t, DefaultResolution, MustCurve(nil).Resolution)
	w, _ := NewWindow(320, 200)
	diff(t, 320, MustCurve(nil, WithWindow(w)).Resolution)
	diff(t, 7, MustCurve(nil, WithResolution(7), WithWindow(w)).Resolution)
	if _, err := NewCurve(nil, WithResolution(0)); !errors.Is(err, ErrResolution) {
		t.Errorf("got %v, want ErrResolution", err)
	}
}

func TestPointAt(t *testing.T) {
	const eps = 1e-12
	c := MustCurve(nil)
	assertNear(t, c.PointAt(0.25, true), Pt(0.25, 0.25), eps)

	c.Rotation = math.Pi
	assertNear(t, c.PointAt(0.25, true), Pt(0.75, 0.75), eps)
	assertNear(t, c.PointAt(0.25, false), Pt(0.25, 0.25), eps)

	c.Rotation = 0
	c.Scale = Vec(2, 0.5)
	c.Translation = Vec(0.1, 0)
	assertNear(t, c.PointAt(0.75, true), Pt(1.1, 0.625), eps)

	c = MustCurve(nil, WithBounding(BoundWrap))
	c.Origin = Vec(0.75, -0.5)
	assertNear(t, c.PointAt(0.5, false), Pt(0.25, 0), eps)
	c.Bounding = BoundClip
	assertNear(t, c.PointAt(0.5, false), Pt(1, 0), eps)
}

func TestJitter(t *testing.T) {
	c := MustCurve(nil, WithJitter(1, 0.1), WithSource(rnd.New(9)))
	for i := range 100 {
		pos := float64(i) / 100
		d := c.PointAt(pos, false).Distance(Pt(pos, pos))
		if math.Abs(d-0.1) > 1e-9 {
			t.Fatalf("jitter distance %v, want 0.1", d)
		}
	}

	c = MustCurve(nil, WithJitter(0, 0.1), WithSource(rnd.New(9)))
	assertNear(t, c.PointAt(0.3, false), Pt(0.3, 0.3), 1e-12)
	c = MustCurve(nil, WithJitter(1, 0.1))
	assertNear(t, c.PointAt(0.3, false), Pt(0.3, 0.3), 1e-12)
}

func TestWindowPointAt(t *testing.T) {
	c := MustCurve(nil)
	diff(t, c.PointAt(0.4, true), c.WindowPointAt(0.4, true))

	w, _ := NewWindow(11, 21)
	c.Window = w
	assertNear(t, c.WindowPointAt(0.5, true), Pt(5, 10), 1e-9)
}

func TestSample(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	c := MustCurve(nil, WithResolution(2))
	diff(t, []Point{{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}}, c.Sample(4, SampleOptions{}), approx)
	diff(t, []Point{{0, 0}, {0.5, 0.5}}, c.Sample(0, SampleOptions{}), approx)

	eased := c.Sample(4, SampleOptions{Distribution: op.EaseIn(nil)})
	diff(t, []Point{{0, 0}, {0.0625, 0.0625}, {0.25, 0.25}, {0.5625, 0.5625}}, eased, approx)

	w, _ := NewWindow(5, 5)
	c.Window = w
	diff(t, []Point{{0, 0}, {2, 2}}, c.Sample(2, SampleOptions{Windowed: true}), approx)

	var n int
	for range c.Points(10, SampleOptions{}) {
		n++
		if n == 3 {
			break
		}
	}
	diff(t, 3, n)

	diff(t, []float64{0, 0.5}, c.Values(2, X, nil))
	diff(t, Path{MoveTo(Pt(0, 0)), LineTo(Pt(0.5, 0.5)), ClosePath()}, c.Path(2, true, SampleOptions{}), approx)
}

func TestClone(t *testing.T) {
	amp := MustCurve(op.Const(0.5))
	c := MustCurve(op.Tri(nil), WithAmp(amp))
	d := c.Clone()
	if d.ID() == c.ID() {
		t.Error("clone shares identity")
	}
	if d.Amp() != amp {
		t.Error("clone doesn't share children")
	}
	diff(t, c.Values(8, Y, nil), d.Values(8, Y, nil))
}

func TestCurveLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := MustCurve(nil)
	if out := buf.String(); !strings.Contains(out, "curve created") || !strings.Contains(out, c.ID().String()) {
		t.Errorf("unexpected log output %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	MustCurve(nil)
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
