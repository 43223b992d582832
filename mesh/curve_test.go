package mesh

import (
	"testing"

	"github.com/discohead/crvs"
	"github.com/discohead/crvs/op"
)

func TestCurveBuilders(t *testing.T) {
	w, err := crvs.NewWindow(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	c := crvs.MustCurve(op.Sine(nil), crvs.WithWindow(w))
	opts := crvs.SampleOptions{Windowed: true}
	pts := c.Sample(32, opts)

	d, err := CurveDelaunay(c, 32, opts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pts, d.Points())
	if d.EdgeCount() < len(pts)-1 {
		t.Errorf("got %d links for %d points", d.EdgeCount(), len(pts))
	}

	regions, err := CurveVoronoiRegions(c, 32, opts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, len(pts), len(regions))
	bounds := w.Bounds()
	for i, r := range regions {
		for _, v := range r {
			if !bounds.Covers(v) {
				t.Fatalf("vertex %v of region %d lies outside %v", v, i, bounds)
			}
		}
	}

	// Unwindowed regions aren't clamped.
	v, err := CurveVoronoi(c, 32, crvs.SampleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	unit := crvs.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	var outside bool
	for _, r := range v.Regions() {
		for _, p := range r {
			outside = outside || !unit.Covers(p)
		}
	}
	if !outside {
		t.Error("unwindowed regions are confined to unit space")
	}

	h := CurveHull(c, 32, opts)
	for _, p := range pts {
		if !h.Region().Covers(p, 1e-9) {
			t.Fatalf("hull doesn't cover %v", p)
		}
	}
}
