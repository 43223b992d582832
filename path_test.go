package crvs

import (
	"strings"
	"testing"
)

func TestPolyline(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}}
	diff(t, Path{MoveTo(pts[0]), LineTo(pts[1]), LineTo(pts[2])}, Polyline(pts, false))
	diff(t, Path{MoveTo(pts[0]), LineTo(pts[1]), LineTo(pts[2]), ClosePath()}, Polyline(pts, true))
	if p := Polyline(nil, true); len(p) != 0 {
		t.Errorf("got %v, want empty path", p)
	}
	diff(t, pts, Polyline(pts, true).Vertices())
}

func TestPathPerimeter(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(3, 0))
	p.LineTo(Pt(3, 4))
	p.ClosePath()
	p.MoveTo(Pt(10, 10))
	p.LineTo(Pt(10, 12))
	if got := p.Perimeter(); got != 14 {
		t.Errorf("got perimeter %v, want 14", got)
	}
	diff(t, Rect{0, 0, 10, 12}, p.BoundingBox())
}

func TestPathTransform(t *testing.T) {
	p := Polyline([]Point{{0, 0}, {1, 2}}, true)
	want := Polyline([]Point{{5, 6}, {6, 8}}, true)
	diff(t, want, p.Transform(Translate(Vec(5, 6))))
}

func TestSVG(t *testing.T) {
	p := Polyline([]Point{{0, 0}, {1.25, 0.5}, {1.0 / 3, 2}}, true)
	diff(t, "M0,0 L1.25,0.5 L0.333,2 Z", p.SVG(SVGOptions{MaxPrecision: 3}))
	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0 L1.25,0.5 L0.3333333333333333,2 Z", sb.String())
}
