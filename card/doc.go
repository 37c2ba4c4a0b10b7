// Package card computes the layout of the symbols drawn on a playing card
// of a "Set"-like game.
//
// Given the rectangle of a drawing surface and the four attributes of a card
// (shape, number, shading and color), the package returns a list of
// [RenderInstruction], which are resolved vector paths, ready to be painted
// by a driver (see packages carddraw, cardraster, cardpdf and cardsvg).
//
// The two entry points are [CardArea], which fits a card of fixed aspect ratio
// in an arbitrary rectangle, and [LayoutSymbols], which positions one to three
// symbols in this card:
//
//	area := card.CardArea(card.Bounds{W: 400, H: 300})
//	instrs := card.LayoutSymbols(area, card.Attributes{
//		Shape:   card.Triangle,
//		Number:  card.Two,
//		Shading: card.Semitransparent,
//		Color:   card.ColorC,
//	})
//
// Every function of this package is pure: there is no shared state and the
// results only depend on the arguments. Attributes outside their declared
// constants are a programming error and are not validated.
package card
