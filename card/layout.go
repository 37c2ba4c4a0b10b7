package card

import "math"

// Layout ratios, relative to the rectangle they apply to.
const (
	// CardRatio is the card width to height ratio.
	CardRatio = 0.66
	// CornerRadiusRatio is the card corner radius to card width ratio.
	CornerRadiusRatio = 0.18
	// SymbolAreaInset is the margin between the card edges and the
	// area holding the symbols.
	SymbolAreaInset = 0.1
	// SymbolInset is the margin between a slot edges and its symbol.
	SymbolInset = 0.1
	// StrokeWidthRatio is the symbol line width to symbol width ratio.
	StrokeWidthRatio = 0.05
	// TriangleOffset moves the triangle corners inside the square bounds,
	// so that the triangle looks vertically centered.
	TriangleOffset = 0.06
	// SemitransparentAlpha is the fill opacity of [Semitransparent] symbols.
	SemitransparentAlpha = 0.45
)

// ratios closer than ratioTolerance are considered equal,
// so that CardArea(CardArea(b)) == CardArea(b)
const ratioTolerance = 1e-9

// CardArea returns the largest rectangle with a [CardRatio] aspect ratio,
// centered in bounds.
// bounds.H must be positive.
func CardArea(bounds Bounds) Bounds {
	boundsRatio := bounds.W / bounds.H
	switch {
	case math.Abs(boundsRatio-CardRatio) <= ratioTolerance:
		return bounds
	case boundsRatio > CardRatio:
		// The bounds are wider than the card, so we shrink the width
		desiredWidth := bounds.H * CardRatio
		widthDifference := math.Abs(bounds.W - desiredWidth)
		return Bounds{X: bounds.X + widthDifference/2, Y: bounds.Y, W: bounds.W - widthDifference, H: bounds.H}
	default:
		// The bounds are thinner than the card, so we shrink the height
		desiredHeight := bounds.W / CardRatio
		heightDifference := math.Abs(bounds.H - desiredHeight)
		return Bounds{X: bounds.X, Y: bounds.Y + heightDifference/2, W: bounds.W, H: bounds.H - heightDifference}
	}
}

// SymbolArea returns the part of the card where
// symbols are drawn.
func SymbolArea(card Bounds) Bounds {
	return card.Inset(SymbolAreaInset*card.W, SymbolAreaInset*card.H)
}

// Slots are the three horizontal bands of the symbol area,
// from top to bottom.
type Slots struct {
	Top, Middle, Bottom Bounds
}

// SplitIntoSlots divides area into three bands of equal height.
func SplitIntoSlots(area Bounds) Slots {
	h := area.H / 3
	return Slots{
		Top:    Bounds{X: area.X, Y: area.Y, W: area.W, H: h},
		Middle: Bounds{X: area.X, Y: area.Y + h, W: area.W, H: h},
		Bottom: Bounds{X: area.X, Y: area.Y + 2*h, W: area.W, H: h},
	}
}

// For returns the slots used to draw n symbols, from top to bottom.
// The middle slot is always used.
func (s Slots) For(n Number) []Bounds {
	switch n {
	case One:
		return []Bounds{s.Middle}
	case Two:
		return []Bounds{s.Top, s.Middle}
	default:
		return []Bounds{s.Top, s.Middle, s.Bottom}
	}
}

// SymbolBounds returns the square, centered in slot,
// where a symbol is drawn.
func SymbolBounds(slot Bounds) Bounds {
	inset := slot.Inset(SymbolInset*slot.W, SymbolInset*slot.H)
	if inset.W >= inset.H {
		widthInset := (inset.W - inset.H) / 2
		return inset.Inset(widthInset, 0)
	}
	heightInset := (inset.H - inset.W) / 2
	return inset.Inset(0, heightInset)
}
