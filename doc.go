// Package crvs generates parametric 2D curves from a composable modulation
// graph and maps them into output windows.
//
// # Curves
//
// A [Curve] evaluates an operator (see package [github.com/discohead/crvs/op])
// at a remapped position and turns the result into a point. Curves can be
// modulated by other curves: the amplitude, rate, phase and bias children of
// a curve are themselves curves, evaluated at the same remapped position on
// every sample. Modulation children form a directed acyclic graph; attaching a
// child that would introduce a cycle fails with [ErrCycle].
//
// With no children and default offsets, a curve over the rising ramp is the
// identity: [Curve.YAt] returns its argument for every position in [0, 1).
//
// # Spaces
//
// Curves produce points in unit space, nominally [0, 1]×[0, 1]. A curve's own
// transform (rotation, scale and translation about [UnitCenter]) and its
// [Bounding] policy operate in unit space. A [Window] maps unit space into an
// output rectangle, applying its own independent transform and clamping into
// its bounds.
//
// # Edges and paths
//
// [Edge] is a parametrized segment that can sample itself and be "skinned" by
// a curve, displacing its samples perpendicularly by the curve's output.
// [Path] is a polyline path that can be written as SVG path data.
//
// Planar meshes built from sampled points live in package
// [github.com/discohead/crvs/mesh].
//
// # Randomness
//
// Jitter and random operators draw from an explicit
// [github.com/discohead/crvs/rnd.Source]. There is no package-level
// generator; a curve without a source never jitters.
package crvs
