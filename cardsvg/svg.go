// Package cardsvg writes render instructions as a standalone SVG document.
package cardsvg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"

	"github.com/benoitkugler/setcard/card"
)

type Option func(*svgRenderer)

type svgRenderer struct {
	title    string
	backdrop color.Color
}

// WithTitle adds a <title> element, used by viewers as a tooltip.
func WithTitle(title string) Option { return func(r *svgRenderer) { r.title = title } }

// WithBackdrop paints the whole viewport with c, behind the card.
func WithBackdrop(c color.Color) Option { return func(r *svgRenderer) { r.backdrop = c } }

// Render returns an SVG document of size width x height,
// with one <path> per instruction, in painting order.
func Render(width, height float64, instrs []card.RenderInstruction, opts ...Option) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	if r.title != "" {
		buf.WriteString("  <title>")
		xml.EscapeText(&buf, []byte(r.title))
		buf.WriteString("</title>\n")
	}
	if r.backdrop != nil {
		hex, opacity := hexColor(r.backdrop)
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"%s/>`+"\n", hex, opacityAttr("fill-opacity", opacity))
	}

	for _, instr := range instrs {
		renderPath(&buf, instr)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPath(buf *bytes.Buffer, instr card.RenderInstruction) {
	style := instr.Style
	fmt.Fprintf(buf, `  <path d="%s"`, instr.Path.ToSVGPath())

	if style.FillerColor != nil && style.FillOpacity > 0 {
		hex, alpha := hexColor(style.FillerColor)
		fmt.Fprintf(buf, ` fill="%s"%s`, hex, opacityAttr("fill-opacity", alpha*style.FillOpacity))
	} else {
		buf.WriteString(` fill="none"`)
	}

	if style.LinerColor != nil && style.LineWidth > 0 {
		hex, alpha := hexColor(style.LinerColor)
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.3f" stroke-linejoin="miter"%s`,
			hex, style.LineWidth, opacityAttr("stroke-opacity", alpha*style.LineOpacity))
	}

	buf.WriteString("/>\n")
}

// hexColor returns the #rrggbb notation of c, and its alpha as a fraction.
func hexColor(c color.Color) (string, float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B), float64(nc.A) / 255
}

// opacityAttr is empty for opaque paints
func opacityAttr(name string, opacity float64) string {
	if opacity >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%.2f"`, name, opacity)
}
