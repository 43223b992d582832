package crvs

import (
	"fmt"
	"strings"

	"github.com/lvlath/go/core"
	"github.com/lvlath/go/dfs"
)

// SetAmp replaces the amplitude child. A nil ch removes it.
//
// SetAmp, SetRate, SetPhase and SetBias fail with [ErrCycle] if c is
// reachable from ch, and with [ErrDepth] if the graph rooted at c would be
// deeper than [MaxDepth]. On failure the curve is unchanged.
func (c *Curve) SetAmp(ch *Curve) error { return c.setChild(&c.amp, ch, "amp") }

func (c *Curve) SetRate(ch *Curve) error { return c.setChild(&c.rate, ch, "rate") }

func (c *Curve) SetPhase(ch *Curve) error { return c.setChild(&c.phase, ch, "phase") }

func (c *Curve) SetBias(ch *Curve) error { return c.setChild(&c.bias, ch, "bias") }

func (c *Curve) setChild(slot **Curve, ch *Curve, role string) error {
	prev := *slot
	*slot = ch
	if ch == nil {
		return nil
	}
	if err := c.Validate(); err != nil {
		*slot = prev
		return fmt.Errorf("%s child %s of curve %s: %w", role, ch.id, c.id, err)
	}
	return nil
}

func (c *Curve) children() [4]*Curve {
	return [4]*Curve{c.amp, c.rate, c.phase, c.bias}
}

// modulation is the graph of modulation links reachable from root. Vertices
// are curve IDs and edges run from a curve to each of its children.
type modulation struct {
	root   *Curve
	graph  *core.Graph
	curves map[string]*Curve
}

func newModulation(root *Curve) (*modulation, error) {
	g, err := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	if err != nil {
		return nil, err
	}
	m := &modulation{root: root, graph: g, curves: map[string]*Curve{}}
	stack := []*Curve{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := n.id.String()
		if _, ok := m.curves[id]; ok {
			continue
		}
		m.curves[id] = n
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		for _, ch := range n.children() {
			if ch == nil {
				continue
			}
			if _, err := g.AddEdge(id, ch.id.String(), 0); err != nil {
				return nil, err
			}
			stack = append(stack, ch)
		}
	}
	return m, nil
}

// cycle returns a closed cycle of curve IDs, or nil if the graph is acyclic.
func (m *modulation) cycle() ([]string, error) {
	res, err := dfs.DetectCycles(m.graph)
	if err != nil {
		return nil, err
	}
	if !res.HasCycle {
		return nil, nil
	}
	return res.Cycles[0], nil
}

// depth returns the number of curves on the longest path from the root. The
// graph must be acyclic for the result to be meaningful.
func (m *modulation) depth() (int, error) {
	depths := make(map[string]int, len(m.curves))
	// Post-order: every child of an acyclic graph exits before its parent.
	exit := func(id string) error {
		d := 1
		for _, ch := range m.curves[id].children() {
			if ch != nil {
				d = max(d, depths[ch.id.String()]+1)
			}
		}
		depths[id] = d
		return nil
	}
	root := m.root.id.String()
	if _, err := dfs.DFS(m.graph, root, dfs.WithOnExit(exit)); err != nil {
		return 0, err
	}
	return depths[root], nil
}

// Depth returns the number of levels in the modulation graph rooted at c.
// A curve without children has a depth of 1.
func (c *Curve) Depth() int {
	m, err := newModulation(c)
	if err != nil {
		return 0
	}
	d, _ := m.depth()
	return d
}

// Validate checks the graph rooted at c. It returns an error wrapping
// [ErrCycle] if a curve reaches itself, or [ErrDepth] if the graph is
// deeper than [MaxDepth].
//
// The Set methods never admit a cycle, but they only bound the depth of the
// graph rooted at the curve being changed. Attaching a child below an
// existing parent can push the parent's graph past MaxDepth; evaluation then
// ignores modulation below that depth.
func (c *Curve) Validate() error {
	m, err := newModulation(c)
	if err != nil {
		return fmt.Errorf("curve %s: modulation graph: %w", c.id, err)
	}
	cyc, err := m.cycle()
	if err != nil {
		return fmt.Errorf("curve %s: modulation graph: %w", c.id, err)
	}
	if cyc != nil {
		return fmt.Errorf("curve %s: cycle %s: %w", c.id, strings.Join(cyc, " -> "), ErrCycle)
	}
	d, err := m.depth()
	if err != nil {
		return fmt.Errorf("curve %s: modulation graph: %w", c.id, err)
	}
	if d > MaxDepth {
		return fmt.Errorf("curve %s has depth %d: %w", c.id, d, ErrDepth)
	}
	return nil
}
