package card

import "fmt"

// Bounds defines a rectangle in user units,
// with the y axis pointing down.
// W and H are expected to be non negative.
type Bounds struct{ X, Y, W, H float64 }

func (b Bounds) MinX() float64 { return b.X }
func (b Bounds) MidX() float64 { return b.X + b.W/2 }
func (b Bounds) MaxX() float64 { return b.X + b.W }
func (b Bounds) MinY() float64 { return b.Y }
func (b Bounds) MidY() float64 { return b.Y + b.H/2 }
func (b Bounds) MaxY() float64 { return b.Y + b.H }

// Inset shrinks the rectangle by dx on the left and right sides
// and by dy on the top and bottom sides, keeping its center.
func (b Bounds) Inset(dx, dy float64) Bounds {
	return Bounds{X: b.X + dx, Y: b.Y + dy, W: b.W - 2*dx, H: b.H - 2*dy}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%.2f, %.2f) %.2fx%.2f", b.X, b.Y, b.W, b.H)
}
