package mesh

import (
	"testing"

	"github.com/discohead/crvs"
	"github.com/discohead/crvs/rnd"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// randomPoints returns n points uniformly distributed in [0, size)².
func randomPoints(seed uint64, n int, size float64) []crvs.Point {
	src := rnd.New(seed)
	out := make([]crvs.Point, n)
	for i := range out {
		out[i] = crvs.Pt(src.Uniform(0, size), src.Uniform(0, size))
	}
	return out
}
