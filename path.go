package crvs

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one command of a polyline path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("InvalidPathElement(%s)", el.P0)
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of polyline path elements. Sampled curves, edges and
// mesh regions all convert to paths for output.
type Path []PathElement

// Polyline returns the path through pts, closing it back to the first point
// if closed is set. An empty pts yields an empty path.
func Polyline(pts []Point, closed bool) Path {
	return slices.Collect(PolylineElements(pts, closed))
}

// PolylineElements is the iterator form of [Polyline].
func PolylineElements(pts []Point, closed bool) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, p := range pts {
			el := LineTo(p)
			if i == 0 {
				el = MoveTo(p)
			}
			if !yield(el) {
				return
			}
		}
		if closed && len(pts) > 0 {
			yield(ClosePath())
		}
	}
}

func (p Path) PathElements() iter.Seq[PathElement] { return slices.Values(p) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

func (p Path) Transform(aff Affine) Path {
	out := make(Path, 0, len(p))
	return slices.AppendSeq(out, Transform(p.Elements(), aff))
}

func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
//
// A path that doesn't start with a "move to" element has undefined
// behavior when rendered.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Vertices returns the points visited by the path, in order.
func (p Path) Vertices() []Point {
	var out []Point
	for _, el := range p {
		if el.Kind == MoveToKind || el.Kind == LineToKind {
			out = append(out, el.P0)
		}
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing the path's vertices.
func (p Path) BoundingBox() Rect {
	return BoundingRect(p.Vertices())
}

// Perimeter returns the total length of the path's segments, including the
// closing segments of closed subpaths.
func (p Path) Perimeter() float64 {
	var sum float64
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start, cur = el.P0, el.P0
		case LineToKind:
			sum += cur.Distance(el.P0)
			cur = el.P0
		case ClosePathKind:
			sum += cur.Distance(start)
			cur = start
		}
	}
	return sum
}

// SVG converts the path to a string of SVG path commands.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
