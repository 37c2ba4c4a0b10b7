// Given the render instructions of a card, implements how to
// draw them on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package carddraw

import (
	"image/color"

	"github.com/benoitkugler/setcard/card"
	"github.com/benoitkugler/setcard/cardpath"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any card knowledge.
// Arcs are already flattened into bezier curves
// before sending them to the Drawer.
type Drawer interface {
	cardpath.Adder

	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// SetColor set the color for the current path.
	// It is called before any path command.
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the beginning of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // the miter cutoff value for the miter join mode
	LineJoin   JoinMode
	LineCap    CapMode
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinOptions
}

// DefaultJoin is used to stroke the symbols:
// sharp corners and butt line ends.
var DefaultJoin = JoinOptions{
	MiterLimit: fixed.I(10),
	LineJoin:   Miter,
	LineCap:    ButtCap,
}

// Draw paints the instructions, in order, into the driver `d`.
// Each path is filled first, then stroked.
func Draw(d Driver, instrs ...card.RenderInstruction) {
	for _, instr := range instrs {
		drawInstruction(d, instr)
	}
}

func drawInstruction(d Driver, instr card.RenderInstruction) {
	style := instr.Style
	willFill := style.FillerColor != nil && style.FillOpacity > 0
	willStroke := style.LinerColor != nil && style.LineWidth > 0
	if !willFill && !willStroke {
		return
	}

	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(true)
		filler.SetColor(style.FillerColor, style.FillOpacity)

		instr.Path.AddTo(filler)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(style.LineWidth * 64),
			Join:      DefaultJoin,
		})
		stroker.SetColor(style.LinerColor, style.LineOpacity)

		instr.Path.AddTo(stroker)
		stroker.Draw()
	}
}
