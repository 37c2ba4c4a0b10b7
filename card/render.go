package card

import (
	"image/color"

	"github.com/benoitkugler/setcard/cardpath"
)

// Style holds the paint settings of a path.
// A nil FillerColor disables filling, a nil LinerColor disables stroking.
type Style struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64

	FillerColor, LinerColor color.Color
}

// RenderInstruction binds a style to a path. It is a fully
// resolved drawing directive, see carddraw.Draw to execute it.
type RenderInstruction struct {
	Path  cardpath.Path
	Style Style
}

// Palette maps the card colors to opaque RGB values.
type Palette [numColors]color.NRGBA

// DefaultPalette holds the orange, green and blue colors of the original deck.
var DefaultPalette = Palette{
	ColorA: {R: 0xfc, G: 0xae, B: 0x33, A: 0xff},
	ColorB: {R: 0x95, G: 0xd2, B: 0x6b, A: 0xff},
	ColorC: {R: 0x42, G: 0xc1, B: 0xf7, A: 0xff},
}

// Resolve returns the RGB value of c.
func (p Palette) Resolve(c Color) color.NRGBA { return p[c] }

// BuildInstruction paints path according to the shading and color attributes:
// symbols are always stroked, and filled (fully or partially)
// unless shading is [Outline].
func BuildInstruction(path ShapePath, shading Shading, c Color, palette Palette) RenderInstruction {
	rgb := palette.Resolve(c)
	style := Style{
		LineOpacity: 1,
		LineWidth:   path.LineWidth,
		LinerColor:  rgb,
	}
	switch shading {
	case Filled:
		style.FillerColor = rgb
		style.FillOpacity = 1
	case Semitransparent:
		style.FillerColor = rgb
		style.FillOpacity = SemitransparentAlpha
	}
	return RenderInstruction{Path: path.Path, Style: style}
}

// Theme groups the colors used to paint a card.
type Theme struct {
	Palette   Palette
	CardColor color.NRGBA
}

// DefaultTheme paints the symbols with [DefaultPalette] on white cards.
var DefaultTheme = Theme{
	Palette:   DefaultPalette,
	CardColor: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// LayoutSymbols returns the instructions painting the symbols of a card
// occupying the card area, from top to bottom.
func (th Theme) LayoutSymbols(card Bounds, attrs Attributes) []RenderInstruction {
	slots := SplitIntoSlots(SymbolArea(card)).For(attrs.Number)
	out := make([]RenderInstruction, len(slots))
	for i, slot := range slots {
		path := GeneratePath(attrs.Shape, SymbolBounds(slot))
		out[i] = BuildInstruction(path, attrs.Shading, attrs.Color, th.Palette)
	}
	return out
}

// Background returns the instruction painting the card itself,
// as a filled rounded rectangle.
func (th Theme) Background(card Bounds) RenderInstruction {
	var path cardpath.Path
	path.AddRoundRect(card.MinX(), card.MinY(), card.MaxX(), card.MaxY(), CornerRadiusRatio*card.W)
	return RenderInstruction{
		Path: path,
		Style: Style{
			FillOpacity: 1,
			FillerColor: th.CardColor,
		},
	}
}

// Compose returns the instructions painting a whole card, fitted in bounds:
// the background comes first, followed by the symbols.
func (th Theme) Compose(bounds Bounds, attrs Attributes) []RenderInstruction {
	card := CardArea(bounds)
	return append([]RenderInstruction{th.Background(card)}, th.LayoutSymbols(card, attrs)...)
}

// LayoutSymbols uses the [DefaultTheme].
// See [Theme.LayoutSymbols].
func LayoutSymbols(card Bounds, attrs Attributes) []RenderInstruction {
	return DefaultTheme.LayoutSymbols(card, attrs)
}
