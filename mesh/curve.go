package mesh

import (
	"github.com/discohead/crvs"
)

// CurveDelaunay triangulates n points sampled from c.
func CurveDelaunay(c *crvs.Curve, n int, sopts crvs.SampleOptions, opts ...Option) (*Delaunay, error) {
	return NewDelaunay(c.Sample(n, sopts), opts...)
}

// CurveVoronoi computes the Voronoi diagram of n points sampled from c.
func CurveVoronoi(c *crvs.Curve, n int, sopts crvs.SampleOptions, opts ...Option) (*Voronoi, error) {
	return NewVoronoi(c.Sample(n, sopts), opts...)
}

// CurveVoronoiRegions returns the Voronoi regions of n points sampled from
// c. If the points are windowed and c has a window, every region vertex is
// clamped into the window's bounds.
func CurveVoronoiRegions(c *crvs.Curve, n int, sopts crvs.SampleOptions, opts ...Option) ([]Polygon, error) {
	v, err := CurveVoronoi(c, n, sopts, opts...)
	if err != nil {
		return nil, err
	}
	if sopts.Windowed && c.Window != nil {
		return v.RegionsIn(c.Window.Bounds()), nil
	}
	return v.Regions(), nil
}

// CurveHull computes the convex hull of n points sampled from c.
func CurveHull(c *crvs.Curve, n int, sopts crvs.SampleOptions) *Hull {
	return NewHull(c.Sample(n, sopts))
}
