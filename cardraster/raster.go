// Implements a raster backend to render cards,
// by wrapping rasterx.
package cardraster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/setcard/card"
	"github.com/benoitkugler/setcard/carddraw"
	"github.com/srwiley/rasterx"
)

var _ carddraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// The same scanner is shared by the filler and the stroker.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RenderImage uses a ScannerGV instance to render the
// instructions into a new, transparent image of size width x height.
func RenderImage(width, height int, instrs []card.RenderInstruction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	carddraw.Draw(NewRenderer(width, height, scanner), instrs...)
	return img
}

// EncodePNG writes img in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SetupDrawers implements carddraw.Driver
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f carddraw.Filler, s carddraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		carddraw.Round: rasterx.Round,
		carddraw.Bevel: rasterx.Bevel,
		carddraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		carddraw.ButtCap:   rasterx.ButtCap,
		carddraw.SquareCap: rasterx.SquareCap,
		carddraw.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options carddraw.StrokeOptions) {
	lineCap := capToFunc[options.Join.LineCap]
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, lineCap, lineCap,
		rasterx.FlatGap, joinToJoin[options.Join.LineJoin], nil, 0,
	)
}
