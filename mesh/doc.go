// Package mesh builds planar meshes from point sets: Delaunay
// triangulations, Voronoi regions, convex hulls and polygons.
//
// Delaunay triangulations are computed by lifting points onto a paraboloid
// and taking the three-dimensional convex hull of the lifted set. The hull
// computation is a replaceable service, see [Huller] and [WithHuller].
//
// Points typically come from sampled curves (see [CurveDelaunay] and
// friends), and results convert back into [crvs.Edge] values and
// [crvs.Path] outlines, so meshes can be skinned by curves or decomposed
// again with [NestedVoronoi].
//
// Degenerate input, such as duplicate or co-circular points, yields whatever
// the hull computation returns for it. Results are built once and never
// change.
package mesh
