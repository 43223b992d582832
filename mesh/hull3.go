package mesh

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate is returned by a [Huller] for fewer than four points or
// points that don't span three dimensions.
var ErrDegenerate = errors.New("mesh: degenerate point set")

// Vec3 is a point in three dimensions.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Mul(f float64) Vec3 { return Vec3{a.X * f, a.Y * f, a.Z * f} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Winding is the vertex order of hull faces, as seen from outside the hull.
type Winding int

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// Huller computes three-dimensional convex hulls.
//
// Hull returns the faces of the convex hull of points. Each face lists
// indices into points, ordered by w. Points that aren't hull vertices appear
// in no face.
type Huller interface {
	Hull(points []Vec3, w Winding) ([][]int, error)
}

// Incremental is the default [Huller]. It inserts points one at a time,
// replacing the faces each point sees, and returns triangular faces.
// Running time is quadratic in the number of points.
type Incremental struct {
	// Tolerance is the distance in front of a face below which a point
	// counts as lying on it. The same tolerance applies to every face. Zero
	// selects 1e-12 times the largest coordinate magnitude of the input.
	Tolerance float64
}

var _ Huller = Incremental{}

type face struct {
	v [3]int
	n Vec3
	// anchor is the vertex of smallest magnitude. Distances are measured
	// from it to keep rounding error proportional to the point tested
	// rather than to far away vertices.
	anchor Vec3
	dead   bool
}

func newFace(points []Vec3, a, b, c int) face {
	v := [3]int{a, b, c}
	k := 0
	for i := 1; i < 3; i++ {
		if norm(points[v[i]]) < norm(points[v[k]]) {
			k = i
		}
	}
	// Rotating the vertices leaves the orientation of the normal unchanged.
	p0, p1, p2 := points[v[k]], points[v[(k+1)%3]], points[v[(k+2)%3]]
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if l := n.Length(); l > 0 {
		n = n.Mul(1 / l)
	}
	return face{v: v, n: n, anchor: p0}
}

func (f *face) dist(p Vec3) float64 {
	return f.n.Dot(p.Sub(f.anchor))
}

// norm is the maximum norm of p.
func norm(p Vec3) float64 {
	return max(math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z))
}

const tolerance = 1e-12

type edgeKey struct{ a, b int }

func (h Incremental) Hull(points []Vec3, w Winding) ([][]int, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%d points: %w", len(points), ErrDegenerate)
	}
	var scale float64
	for _, p := range points {
		scale = max(scale, norm(p))
	}
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("points with extent %v: %w", scale, ErrDegenerate)
	}
	eps := h.Tolerance
	if eps <= 0 {
		eps = tolerance * scale
	}

	simplex, ok := initialSimplex(points, eps)
	if !ok {
		return nil, fmt.Errorf("%d points don't span a volume: %w", len(points), ErrDegenerate)
	}
	var inner Vec3
	for _, i := range simplex {
		inner = inner.Add(points[i])
	}
	inner = inner.Mul(0.25)

	faces := make([]face, 0, 4)
	for _, tri := range [4][3]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {0, 2, 3}} {
		f := newFace(points, simplex[tri[0]], simplex[tri[1]], simplex[tri[2]])
		if f.dist(inner) > 0 {
			f = newFace(points, f.v[0], f.v[2], f.v[1])
		}
		faces = append(faces, f)
	}

	edges := make(map[edgeKey]bool)
	var (
		horizon []edgeKey
		visible []int
	)
	for i, p := range points {
		if i == simplex[0] || i == simplex[1] || i == simplex[2] || i == simplex[3] {
			continue
		}
		clear(edges)
		visible = visible[:0]
		for j := range faces {
			f := &faces[j]
			if f.dist(p) <= eps {
				continue
			}
			f.dead = true
			visible = append(visible, j)
			edges[edgeKey{f.v[0], f.v[1]}] = true
			edges[edgeKey{f.v[1], f.v[2]}] = true
			edges[edgeKey{f.v[2], f.v[0]}] = true
		}
		if len(visible) == 0 {
			continue
		}

		// Edges of the visible region whose twin belongs to a face that
		// stays form the horizon.
		horizon = horizon[:0]
		for _, j := range visible {
			v := faces[j].v
			for k := range 3 {
				a, b := v[k], v[(k+1)%3]
				if !edges[edgeKey{b, a}] {
					horizon = append(horizon, edgeKey{a, b})
				}
			}
		}
		live := faces[:0]
		for _, f := range faces {
			if !f.dead {
				live = append(live, f)
			}
		}
		faces = live
		for _, e := range horizon {
			faces = append(faces, newFace(points, e.a, e.b, i))
		}
	}

	out := make([][]int, len(faces))
	for i, f := range faces {
		if w == Clockwise {
			out[i] = []int{f.v[0], f.v[2], f.v[1]}
		} else {
			out[i] = []int{f.v[0], f.v[1], f.v[2]}
		}
	}
	return out, nil
}

// initialSimplex picks four points spanning a tetrahedron of non-negligible
// volume.
func initialSimplex(points []Vec3, eps float64) ([4]int, bool) {
	var s [4]int
	p0 := points[0]

	best := 0.0
	for i, p := range points {
		if d := p.Sub(p0).Length(); d > best {
			best, s[1] = d, i
		}
	}
	if best <= eps {
		return s, false
	}

	d01 := points[s[1]].Sub(p0)
	best = 0
	for i, p := range points {
		if d := d01.Cross(p.Sub(p0)).Length() / d01.Length(); d > best {
			best, s[2] = d, i
		}
	}
	if best <= eps {
		return s, false
	}

	n := d01.Cross(points[s[2]].Sub(p0))
	n = n.Mul(1 / n.Length())
	best = 0
	for i, p := range points {
		if d := math.Abs(n.Dot(p.Sub(p0))); d > best {
			best, s[3] = d, i
		}
	}
	if best <= eps {
		return s, false
	}
	return s, true
}
