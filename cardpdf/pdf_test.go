package cardpdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benoitkugler/setcard/card"
	"github.com/benoitkugler/setcard/carddraw"
	"github.com/jung-kurt/gofpdf"
)

// renderContent returns the uncompressed output of the instructions
func renderContent(t *testing.T, instrs []card.RenderInstruction) string {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	carddraw.Draw(NewRenderer(pdf), instrs...)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("can't write pdf: %s", err)
	}
	return buf.String()
}

func TestRenderFilled(t *testing.T) {
	attrs := card.Attributes{Shape: card.Square, Number: card.One, Shading: card.Filled, Color: card.ColorA}
	out := renderContent(t, card.LayoutSymbols(card.Bounds{W: 66, H: 100}, attrs))

	for _, op := range []string{
		"0.988 0.682 0.200 rg", // fill color
		"0.988 0.682 0.200 RG", // stroke color
		"\nf\n",                // non zero fill
		"\nh\n",                // closed square
		"\nS\n",                // stroke
		"/ca 1.000",
	} {
		if !strings.Contains(out, op) {
			t.Errorf("missing %q in output", op)
		}
	}
	if strings.Index(out, "\nf\n") > strings.Index(out, "\nS\n") {
		t.Error("the symbol should be filled before being stroked")
	}
}

func TestRenderOutline(t *testing.T) {
	attrs := card.Attributes{Shape: card.Triangle, Number: card.Two, Shading: card.Outline, Color: card.ColorB}
	out := renderContent(t, card.LayoutSymbols(card.Bounds{W: 66, H: 100}, attrs))

	if strings.Contains(out, "\nf\n") {
		t.Error("outline symbols should not be filled")
	}
	if got := strings.Count(out, "\nS\n"); got != 2 {
		t.Errorf("expected 2 strokes, got %d", got)
	}
}

func TestRenderSemitransparent(t *testing.T) {
	attrs := card.Attributes{Shape: card.Circle, Number: card.Three, Shading: card.Semitransparent, Color: card.ColorC}
	out := renderContent(t, card.LayoutSymbols(card.Bounds{W: 66, H: 100}, attrs))

	if !strings.Contains(out, "/ca 0.450") {
		t.Error("missing the fill opacity")
	}
	// circles are approximated by cubic curves
	if !strings.Contains(out, " c\n") {
		t.Error("missing curve operator")
	}
}

func TestWrite(t *testing.T) {
	instrs := card.DefaultTheme.Compose(card.Bounds{W: 198, H: 300}, card.Attributes{Shape: card.Circle, Number: card.Two})

	var buf bytes.Buffer
	if err := Write(&buf, 198, 300, instrs); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("invalid pdf header %q", buf.Bytes()[:10])
	}
}
