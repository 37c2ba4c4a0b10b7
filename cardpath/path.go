// Implements an abstract representation of
// the vector paths making up a card, which can then be consumed
// by painting drivers.
package cardpath

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder interface for types that can accumulate path commands.
// It matches the adder of github.com/srwiley/rasterx.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathArc
	pathClose
)

// Point is a location in user units, y growing downwards.
type Point struct{ X, Y float64 }

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

// Arc is a circular arc. Angles are in radians and
// grow clockwise on screen (y axis pointing down), from Start to End.
type Arc struct {
	Center     Point
	Radius     float64
	Start, End float64
}

type Close struct{}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }
func (Arc) command() pathCommand    { return pathArc }
func (Close) command() pathCommand  { return pathClose }

// PointAt returns the point of the arc circle at angle theta.
func (a Arc) PointAt(theta float64) Point {
	return Point{X: a.Center.X + a.Radius*math.Cos(theta), Y: a.Center.Y + a.Radius*math.Sin(theta)}
}

// Path describes a sequence of basic operations.
// Higher-level shapes may be reduced to a path.
type Path []Operation

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, MoveTo{x, y})
}

// LineTo adds a linear segment to the current subpath.
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, LineTo{x, y})
}

// Arc adds a circular arc. If a subpath is open, a line joins
// its current point to the start of the arc.
func (p *Path) Arc(cx, cy, r, start, end float64) {
	*p = append(*p, Arc{Center: Point{cx, cy}, Radius: r, Start: start, End: end})
}

// Close joins the ends of the current subpath.
func (p *Path) Close() {
	*p = append(*p, Close{})
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

func formatPoint(pt Point) string {
	return fmt.Sprintf("%4.3f,%4.3f", pt.X, pt.Y)
}

// ToSVGPath returns a string representation of the path,
// suitable for the "d" attribute of an SVG <path> element.
func (p Path) ToSVGPath() string {
	var (
		chunks []string
		open   bool
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks = append(chunks, "M"+formatPoint(Point(op)))
			open = true
		case LineTo:
			chunks = append(chunks, "L"+formatPoint(Point(op)))
		case Arc:
			if open {
				chunks = append(chunks, "L"+formatPoint(op.PointAt(op.Start)))
			} else {
				chunks = append(chunks, "M"+formatPoint(op.PointAt(op.Start)))
				open = true
			}
			// an SVG arc can't describe more than half a circle unambiguously
			delta := op.End - op.Start
			segs := int(math.Ceil(math.Abs(delta)/math.Pi - epsilon))
			if segs < 1 {
				segs = 1
			}
			sweep := 1
			if delta < 0 {
				sweep = 0
			}
			for i := 1; i <= segs; i++ {
				end := op.PointAt(op.Start + delta*float64(i)/float64(segs))
				chunks = append(chunks, fmt.Sprintf("A%4.3f,%4.3f 0 0,%d %s", op.Radius, op.Radius, sweep, formatPoint(end)))
			}
		case Close:
			chunks = append(chunks, "Z")
			open = false
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// AddTo adds the Path p to q, approximating arcs
// with cubic bezier curves.
func (p Path) AddTo(q Adder) {
	p.walk(fixedWalker{q})
}

// walker receives the flattened path, in floating point precision.
type walker interface {
	start(a Point)
	line(b Point)
	cubic(b, c, d Point)
	stop(closeLoop bool)
}

func (p Path) walk(w walker) {
	open := false
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if open {
				w.stop(false) // implicit end of the previous subpath
			}
			w.start(Point(op))
			open = true
		case LineTo:
			w.line(Point(op))
		case Arc:
			first := op.PointAt(op.Start)
			if open {
				w.line(first)
			} else {
				w.start(first)
				open = true
			}
			addArc(w, op)
		case Close:
			if open {
				w.stop(true)
			}
			open = false
		}
	}
	if open {
		w.stop(false)
	}
}

func toFixedP(pt Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(pt.X * 64)), Y: fixed.Int26_6(math.Round(pt.Y * 64))}
}

type fixedWalker struct{ q Adder }

func (f fixedWalker) start(a Point)       { f.q.Start(toFixedP(a)) }
func (f fixedWalker) line(b Point)        { f.q.Line(toFixedP(b)) }
func (f fixedWalker) cubic(b, c, d Point) { f.q.CubeBezier(toFixedP(b), toFixedP(c), toFixedP(d)) }
func (f fixedWalker) stop(closeLoop bool) { f.q.Stop(closeLoop) }
