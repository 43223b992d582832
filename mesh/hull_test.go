package mesh

import (
	"slices"
	"testing"

	"github.com/discohead/crvs"
)

func TestHullSquare(t *testing.T) {
	pts := []crvs.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}, {1, 0}}
	h := NewHull(pts)
	diff(t, []int{0, 1, 2, 3}, h.Extrema())
	diff(t, Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, h.Region())
	diff(t, 4.0, h.Region().Area())
}

func TestHullCoversPoints(t *testing.T) {
	for seed := range uint64(5) {
		pts := randomPoints(seed, 100, 10)
		r := NewHull(pts).Region()
		if r.Area() <= 0 {
			t.Fatalf("seed %d: hull has area %v", seed, r.Area())
		}
		for i := range r {
			a, b, c := r[i], r[(i+1)%len(r)], r[(i+2)%len(r)]
			if b.Sub(a).Cross(c.Sub(b)) <= 0 {
				t.Fatalf("seed %d: hull isn't strictly convex at %v", seed, b)
			}
		}
		for _, p := range pts {
			if !r.Covers(p, 1e-9) {
				t.Fatalf("seed %d: hull doesn't cover %v", seed, p)
			}
		}
	}
}

func TestHullDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		pts     []crvs.Point
		extrema []int
	}{
		{"empty", nil, nil},
		{"two points", []crvs.Point{{0, 0}, {1, 1}}, nil},
		{"coincident", []crvs.Point{{1, 1}, {1, 1}, {1, 1}}, nil},
		{"collinear", []crvs.Point{{1, 1}, {0, 0}, {2, 2}, {3, 3}}, []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHull(tt.pts)
			if got := h.Extrema(); !slices.Equal(got, tt.extrema) {
				t.Errorf("got extrema %v, want %v", got, tt.extrema)
			}
			for _, p := range tt.pts {
				if len(tt.extrema) > 0 && !h.Region().Covers(p, 1e-9) {
					t.Errorf("hull doesn't cover %v", p)
				}
			}
		})
	}
}
