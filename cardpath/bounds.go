package cardpath

import (
	"math"
)

// compute the bounding box of a path, used to check where
// the drivers will actually paint

const epsilon = 1e-9

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < epsilon {
		// bX + c : a simple line
		if math.Abs(b) < epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

type bbox struct {
	minX, minY, maxX, maxY float64
	empty                  bool
	current                Point
}

func (bb *bbox) add(pt Point) {
	if bb.empty {
		bb.minX, bb.maxX, bb.minY, bb.maxY = pt.X, pt.X, pt.Y, pt.Y
		bb.empty = false
		return
	}
	bb.minX = math.Min(bb.minX, pt.X)
	bb.minY = math.Min(bb.minY, pt.Y)
	bb.maxX = math.Max(bb.maxX, pt.X)
	bb.maxY = math.Max(bb.maxY, pt.Y)
}

func (bb *bbox) start(a Point) {
	bb.add(a)
	bb.current = a
}

func (bb *bbox) line(b Point) {
	bb.add(b)
	bb.current = b
}

func (bb *bbox) cubic(b, c, d Point) {
	a := bb.current
	aX, bX, cX := cubicDerivative(a.X, b.X, c.X, d.X)
	aY, bY, cY := cubicDerivative(a.Y, b.Y, c.Y, d.Y)
	// critical points, plus the end point
	ts := append(append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...), 1)
	for _, t := range ts {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		bb.add(Point{bezierSpline(a.X, b.X, c.X, d.X, t), bezierSpline(a.Y, b.Y, c.Y, d.Y, t)})
	}
	bb.current = d
}

func (bb *bbox) stop(bool) {}

// Bounds returns the bounding box of the path outline, arcs included.
// The stroke width is not taken into account.
// An empty path has a zero bounding box.
func (p Path) Bounds() (minX, minY, maxX, maxY float64) {
	bb := bbox{empty: true}
	p.walk(&bb)
	if bb.empty {
		return 0, 0, 0, 0
	}
	return bb.minX, bb.minY, bb.maxX, bb.maxY
}
