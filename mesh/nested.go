package mesh

import (
	"fmt"

	"github.com/discohead/crvs"
	"github.com/discohead/crvs/rnd"
)

// Level is one level of a nested tessellation.
type Level struct {
	// Depth is 0 for the regions passed to [NestedVoronoi] and increases by
	// one per subdivision.
	Depth   int
	Regions []Polygon
}

// NestedVoronoi subdivides regions depth-1 times and returns depth levels,
// the first holding regions itself.
//
// Each region of a level is subdivided by sampling k points inside it with
// [Polygon.PointsWithin] and computing their Voronoi diagram. Regions that
// yield three points or fewer are not subdivided. The resulting regions are
// clamped to the bounding box of the region they subdivide.
//
// Each level owns its own region slice. A depth below 1 returns no levels.
func NestedVoronoi(src rnd.Source, regions []Polygon, depth, k int, opts ...Option) ([]Level, error) {
	if depth < 1 {
		return nil, nil
	}
	levels := make([]Level, 0, depth)
	levels = append(levels, Level{Depth: 0, Regions: regions})
	for d := 1; d < depth; d++ {
		var next []Polygon
		for _, r := range levels[d-1].Regions {
			pts := r.PointsWithin(src, k)
			if len(pts) <= 3 {
				continue
			}
			v, err := NewVoronoi(pts, opts...)
			if err != nil {
				return levels, fmt.Errorf("nested voronoi at depth %d: %w", d, err)
			}
			next = append(next, v.RegionsIn(r.BoundingBox())...)
		}
		crvs.Logger().Debug("nested voronoi level", "depth", d, "regions", len(next))
		levels = append(levels, Level{Depth: d, Regions: next})
	}
	return levels, nil
}

// Deloronoi triangulates the vertices of every region, returning one
// triangulation per region.
func Deloronoi(regions []Polygon, opts ...Option) ([]*Delaunay, error) {
	out := make([]*Delaunay, len(regions))
	for i, r := range regions {
		d, err := NewDelaunay(r, opts...)
		if err != nil {
			return nil, fmt.Errorf("deloronoi region %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}
