package crvs

import (
	"math"
	"testing"

	"github.com/discohead/crvs/rnd"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{1, 0, 1, 1},
		{1.5, 0, 1, 0.5},
		{0, 0, 1, 0},
		{2, 0, 1, 0},
		{-0.25, 0, 1, 0.75},
		{-3, 0, 1, 0},
		{7, 2, 4, 3},
		{0.3, 0.5, 0.5, 0.5},
		{0.3, 1, 0, 1},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapRange(t *testing.T) {
	src := rnd.New(1)
	for range 10000 {
		v := src.Uniform(-100, 100)
		if w := Wrap(v, 0, 1); w < 0 || w >= 1 {
			t.Fatalf("Wrap(%v, 0, 1) = %v, want value in [0, 1)", v, w)
		}
	}
	if w := Wrap(-1e-18, 0, 1); w < 0 || w >= 1 {
		t.Errorf("Wrap(-1e-18, 0, 1) = %v, want value in [0, 1)", w)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{1.5, 0, 1, 0.5},
		{1, 0, 1, 1},
		{0, 0, 1, 0},
		{2, 0, 1, 0},
		{2.25, 0, 1, 0.25},
		{-0.25, 0, 1, 0.25},
		{-1.5, 0, 1, 0.5},
		{5, 2, 4, 3},
		{0.3, 1, 1, 1},
	}
	for _, tt := range tests {
		if got := Fold(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Fold(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFoldProperties(t *testing.T) {
	src := rnd.New(2)
	for range 10000 {
		v := src.Uniform(-100, 100)
		f := Fold(v, 0, 1)
		if f < 0 || f > 1 {
			t.Fatalf("Fold(%v, 0, 1) = %v, want value in [0, 1]", v, f)
		}
		if g := Fold(f, 0, 1); g != f {
			t.Fatalf("Fold is not idempotent at %v: %v then %v", v, f, g)
		}
	}
	for _, v := range []float64{0, 0.2, 0.5, 0.999, 1} {
		if f := Fold(v, 0, 1); f != v {
			t.Errorf("Fold(%v, 0, 1) = %v, want unchanged", v, f)
		}
	}
}

func TestBoundingApply(t *testing.T) {
	pt := Pt(1.25, -0.25)
	tests := []struct {
		b    Bounding
		want Point
	}{
		{BoundNone, pt},
		{BoundClip, Pt(1, 0)},
		{BoundWrap, Pt(0.25, 0.75)},
		{BoundFold, Pt(0.75, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.b.String(), func(t *testing.T) {
			diff(t, tt.want, tt.b.Point(pt))
		})
	}
	if s := Bounding(9).String(); s != "Bounding(9)" {
		t.Errorf("got %q", s)
	}
	if v := BoundClip.Apply(math.Inf(1), -1, 1); v != 1 {
		t.Errorf("clipping +Inf gave %v", v)
	}
}
