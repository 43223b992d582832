package mesh

import (
	"cmp"
	"slices"

	"github.com/discohead/crvs"
)

// Hull is the convex hull of a point set.
type Hull struct {
	points  []crvs.Point
	extrema []int
}

// NewHull computes the convex hull of pts with Andrew's monotone chain.
// Fewer than three points yield an empty hull, as do points that all
// coincide.
//
// Collinear points along the hull are not extrema. For collinear input the
// hull degenerates to the two outermost points.
func NewHull(pts []crvs.Point) *Hull {
	h := &Hull{points: slices.Clone(pts)}
	if len(pts) < 3 {
		return h
	}

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if c := cmp.Compare(pts[a].X, pts[b].X); c != 0 {
			return c
		}
		return cmp.Compare(pts[a].Y, pts[b].Y)
	})

	turn := func(o, a, b int) float64 {
		return pts[a].Sub(pts[o]).Cross(pts[b].Sub(pts[o]))
	}
	chain := make([]int, 0, 2*len(idx))
	for _, i := range idx {
		for len(chain) >= 2 && turn(chain[len(chain)-2], chain[len(chain)-1], i) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, i)
	}
	lower := len(chain) + 1
	for k := len(idx) - 2; k >= 0; k-- {
		i := idx[k]
		for len(chain) >= lower && turn(chain[len(chain)-2], chain[len(chain)-1], i) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, i)
	}
	// The last point repeats the first.
	chain = chain[:len(chain)-1]

	if len(chain) == 2 && pts[chain[0]] == pts[chain[1]] {
		chain = chain[:0]
	}
	h.extrema = chain

	crvs.Logger().Debug("hull built", "points", len(pts), "extrema", len(chain))
	return h
}

// Extrema returns the indices of the hull's vertices, ordered so that
// [Hull.Region] has positive area.
func (h *Hull) Extrema() []int { return slices.Clone(h.extrema) }

// Region returns the hull as a polygon.
func (h *Hull) Region() Polygon {
	out := make(Polygon, len(h.extrema))
	for i, e := range h.extrema {
		out[i] = h.points[e]
	}
	return out
}

// Points returns the input points.
func (h *Hull) Points() []crvs.Point { return slices.Clone(h.points) }
