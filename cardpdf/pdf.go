// Implements a PDF backend to render cards,
// by wrapping github.com/jung-kurt/gofpdf.
package cardpdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/setcard/card"
	"github.com/benoitkugler/setcard/carddraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ carddraw.Driver  = Renderer{}
	_ carddraw.Filler  = (*filler)(nil)
	_ carddraw.Stroker = stroker{}
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation, while
// also writing the path
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the current page of the given `pdf`.
// The pdf unit should match the one of the card bounds.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// Write renders the instructions on a single page document
// of size width x height points, and writes it to `w`.
func Write(w io.Writer, width, height float64, instrs []card.RenderInstruction) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("setcard", false)
	pdf.AddPage()

	carddraw.Draw(NewRenderer(pdf), instrs...)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f carddraw.Filler, s carddraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}}
	}
	if willStroke {
		s = stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// rgb returns the 8-bit components of c,
// and its alpha as a fraction.
func rgb(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255.
}

// the path is written directly in the content stream
func (pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

var (
	joinToStyle = [...]string{
		carddraw.Round: "round",
		carddraw.Bevel: "bevel",
		carddraw.Miter: "miter",
	}

	capToStyle = [...]string{
		carddraw.ButtCap:   "butt",
		carddraw.SquareCap: "square",
		carddraw.RoundCap:  "round",
	}
)

func (s stroker) SetStrokeOptions(options carddraw.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle(joinToStyle[options.Join.LineJoin])
	s.pdf.SetLineCapStyle(capToStyle[options.Join.LineCap])
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (s stroker) Draw() {
	s.pdf.DrawPath("D")
}
