package mesh

import (
	"math"

	"github.com/discohead/crvs"
)

const (
	// sentinelRadius places the sentinel triangle around the normalized
	// point set, which fits in the unit disk.
	sentinelRadius = 4
	// sentinelDepth puts the sentinels far below the paraboloid. Triangles
	// with a circumradius above roughly sentinelDepth/8 times the extent of
	// the point set are lost to them.
	sentinelDepth = 1e6
	// liftTolerance is the hull tolerance for lifted points. It is sized to
	// the real points, which have unit extent, not to the sentinels.
	liftTolerance = tolerance
)

// frame normalizes points into the unit disk.
type frame struct {
	center crvs.Point
	radius float64
}

func newFrame(pts []crvs.Point) frame {
	c := crvs.BoundingRect(pts).Center()
	var r float64
	for _, p := range pts {
		r = max(r, p.Distance(c))
	}
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		r = 1
	}
	return frame{center: c, radius: r}
}

func (f frame) normalize(p crvs.Point) crvs.Point {
	return crvs.Pt((p.X-f.center.X)/f.radius, (p.Y-f.center.Y)/f.radius)
}

// at returns the point at normalized polar coordinates (r, th).
func (f frame) at(r, th float64) crvs.Point {
	return f.center.Translate(crvs.VecFromAngle(th).Mul(r * f.radius))
}

// lift maps pts onto the downward paraboloid z = -(x²+y²) and appends three
// sentinels below it. Sentinel indices are len(pts) and up.
func lift(pts []crvs.Point) []Vec3 {
	f := newFrame(pts)
	out := make([]Vec3, 0, len(pts)+3)
	for _, p := range pts {
		n := f.normalize(p)
		out = append(out, Vec3{n.X, n.Y, -(n.X*n.X + n.Y*n.Y)})
	}
	for i := range 3 {
		v := crvs.VecFromAngle(float64(i) * 2 * math.Pi / 3).Mul(sentinelRadius)
		out = append(out, Vec3{v.X, v.Y, -sentinelDepth})
	}
	return out
}

// triangulate returns the hull faces of the lifted points. Faces may
// reference the sentinels.
func triangulate(pts []crvs.Point, h Huller) ([][]int, error) {
	return h.Hull(lift(pts), Clockwise)
}

// triangles filters faces down to triangles of real points, ordered so that
// their signed area is positive. Faces with more than three vertices are
// split into fans.
func triangles(pts []crvs.Point, faces [][]int) [][3]int {
	var out [][3]int
faces:
	for _, f := range faces {
		if len(f) < 3 {
			continue
		}
		for _, v := range f {
			if v >= len(pts) {
				continue faces
			}
		}
		for i := 1; i+1 < len(f); i++ {
			t := [3]int{f[0], f[i], f[i+1]}
			a, b, c := pts[t[0]], pts[t[1]], pts[t[2]]
			if b.Sub(a).Cross(c.Sub(a)) < 0 {
				t[1], t[2] = t[2], t[1]
			}
			out = append(out, t)
		}
	}
	return out
}
