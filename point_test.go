package crvs

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -1), Pt(4, 1).Sub(Pt(1, 2)))
	diff(t, Pt(2, 3), Pt(0, 2).Midpoint(Pt(4, 4)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0.1, 0.7), Pt(0.3, 0.2)},
		{Pt(-1e9, 3.3), Pt(1e-9, -7.77)},
		{Pt(123.456, 0.1), Pt(0.3, 1e300)},
	}
	for _, p := range pairs {
		if got := p[0].Lerp(p[1], 0); got != p[0] {
			t.Errorf("Lerp(0) = %v, want %v", got, p[0])
		}
		if got := p[0].Lerp(p[1], 1); got != p[1] {
			t.Errorf("Lerp(1) = %v, want %v", got, p[1])
		}
	}
}

func TestPointClamp(t *testing.T) {
	r := Rect{10, 20, 0, 0}
	diff(t, Pt(10, 0), Pt(12, -5).Clamp(r))
	diff(t, Pt(3, 4), Pt(3, 4).Clamp(r))
}

func TestCentroid(t *testing.T) {
	diff(t, Pt(1, 1), Centroid([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}))
	diff(t, Point{}, Centroid(nil))
}
