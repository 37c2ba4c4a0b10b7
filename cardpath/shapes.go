package cardpath

import (
	"math"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating a circular arc.
const maxDx float64 = math.Pi / 8

// AddRect adds the closed rectangle with the given corners.
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.MoveTo(minX, minY)
	p.LineTo(maxX, minY)
	p.LineTo(maxX, maxY)
	p.LineTo(minX, maxY)
	p.Close()
}

// AddRoundRect adds a rectangle with rounded corners of radius r.
// r is clamped to half the smallest side; a non positive radius
// gives a plain rectangle.
func (p *Path) AddRoundRect(minX, minY, maxX, maxY, r float64) {
	if r <= 0 {
		p.AddRect(minX, minY, maxX, maxY)
		return
	}
	if w := maxX - minX; w < r*2 {
		r = w / 2
	}
	if h := maxY - minY; h < r*2 {
		r = h / 2
	}

	p.MoveTo(minX+r, minY)
	p.LineTo(maxX-r, minY)
	p.Arc(maxX-r, minY+r, r, -math.Pi/2, 0)
	p.LineTo(maxX, maxY-r)
	p.Arc(maxX-r, maxY-r, r, 0, math.Pi/2)
	p.LineTo(minX+r, maxY)
	p.Arc(minX+r, maxY-r, r, math.Pi/2, math.Pi)
	p.LineTo(minX, minY+r)
	p.Arc(minX+r, minY+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// AddCircle adds a full circle, as a single arc.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
}

// addArc sends the arc a to w as cubic bezier curves,
// starting from its (already emitted) first point.
func addArc(w walker, a Arc) {
	deltaTheta := a.End - a.Start
	// Round up to determine number of cubic splines to approximate the arc
	segs := int(math.Abs(deltaTheta)/maxDx) + 1
	dTheta := deltaTheta / float64(segs) // span of each segment
	// Approximate the circle using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dTheta / 2)
	alpha := math.Sin(dTheta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	l := a.PointAt(a.Start)
	ld := circlePrime(a.Radius, a.Start)
	for i := 1; i <= segs; i++ {
		eta := a.Start + dTheta*float64(i)
		pt := a.PointAt(eta)
		d := circlePrime(a.Radius, eta)
		w.cubic(Point{l.X + alpha*ld.X, l.Y + alpha*ld.Y},
			Point{pt.X - alpha*d.X, pt.Y - alpha*d.Y}, pt)
		l, ld = pt, d
	}
}

// circlePrime gives the tangent vector of the circle of radius r at angle eta
func circlePrime(r, eta float64) Point {
	return Point{X: -r * math.Sin(eta), Y: r * math.Cos(eta)}
}
