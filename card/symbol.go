package card

import (
	"github.com/benoitkugler/setcard/cardpath"
)

// ShapePath is the outline of one symbol,
// with the width of its stroke.
type ShapePath struct {
	Path      cardpath.Path
	LineWidth float64
}

// GeneratePath returns the outline of shape, fitted in the square bounds.
// The stroke width scales with the symbol, not the card.
func GeneratePath(shape Shape, square Bounds) ShapePath {
	var path cardpath.Path
	switch shape {
	case Circle:
		path.AddCircle(square.MidX(), square.MidY(), square.W/2)
	case Triangle:
		offset := TriangleOffset * square.H
		path.MoveTo(square.MidX(), square.MinY()+offset)
		path.LineTo(square.MaxX(), square.MaxY()-offset)
		path.LineTo(square.MinX(), square.MaxY()-offset)
		path.Close()
	case Square:
		path.AddRect(square.MinX(), square.MinY(), square.MaxX(), square.MaxY())
	}
	return ShapePath{Path: path, LineWidth: StrokeWidthRatio * square.W}
}
