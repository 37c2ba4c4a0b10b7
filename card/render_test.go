package card

import (
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/benoitkugler/setcard/cardpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePathTriangle(t *testing.T) {
	sp := GeneratePath(Triangle, Bounds{W: 100, H: 100})

	require.Len(t, sp.Path, 4)
	assertPoint(t, cardpath.Point{X: 50, Y: 6}, cardpath.Point(sp.Path[0].(cardpath.MoveTo)))
	assertPoint(t, cardpath.Point{X: 100, Y: 94}, cardpath.Point(sp.Path[1].(cardpath.LineTo)))
	assertPoint(t, cardpath.Point{X: 0, Y: 94}, cardpath.Point(sp.Path[2].(cardpath.LineTo)))
	assert.Equal(t, cardpath.Close{}, sp.Path[3])
	assert.InDelta(t, 5, sp.LineWidth, delta)
}

func TestGeneratePathCircle(t *testing.T) {
	sp := GeneratePath(Circle, Bounds{X: 10, Y: 20, W: 40, H: 40})

	require.Len(t, sp.Path, 2)
	arc, ok := sp.Path[0].(cardpath.Arc)
	require.True(t, ok)
	assertPoint(t, cardpath.Point{X: 30, Y: 40}, arc.Center)
	assert.Equal(t, 20., arc.Radius)
	assert.InDelta(t, 2*math.Pi, arc.End-arc.Start, delta)
	assert.InDelta(t, 2, sp.LineWidth, delta)

	minX, minY, maxX, maxY := sp.Path.Bounds()
	assert.InDelta(t, 10, minX, 1e-4)
	assert.InDelta(t, 20, minY, 1e-4)
	assert.InDelta(t, 50, maxX, 1e-4)
	assert.InDelta(t, 60, maxY, 1e-4)
}

func TestGeneratePathSquare(t *testing.T) {
	square := Bounds{X: 1, Y: 2, W: 60, H: 60}
	sp := GeneratePath(Square, square)

	var want cardpath.Path
	want.AddRect(1, 2, 61, 62)
	assert.Equal(t, want, sp.Path)
	assert.InDelta(t, 3, sp.LineWidth, delta)
}

func assertPoint(t *testing.T, want, got cardpath.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
}

func TestBuildInstruction(t *testing.T) {
	path := GeneratePath(Square, Bounds{W: 10, H: 10})
	orange := DefaultPalette[ColorA]

	tests := []struct {
		shading     Shading
		wantFill    color.Color
		wantOpacity float64
	}{
		{Outline, nil, 0},
		{Filled, orange, 1},
		{Semitransparent, orange, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.shading.String(), func(t *testing.T) {
			instr := BuildInstruction(path, tt.shading, ColorA, DefaultPalette)

			assert.Equal(t, path.Path, instr.Path)
			assert.Equal(t, tt.wantFill, instr.Style.FillerColor)
			assert.Equal(t, tt.wantOpacity, instr.Style.FillOpacity)
			// always stroked, fully opaque
			assert.Equal(t, orange, instr.Style.LinerColor)
			assert.Equal(t, 1., instr.Style.LineOpacity)
			assert.Equal(t, path.LineWidth, instr.Style.LineWidth)
		})
	}
}

func TestPaletteOverride(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	palette := DefaultPalette
	palette[ColorB] = red

	instr := BuildInstruction(GeneratePath(Circle, Bounds{W: 10, H: 10}), Filled, ColorB, palette)
	assert.Equal(t, red, instr.Style.FillerColor)
	assert.Equal(t, red, instr.Style.LinerColor)
	// the default palette is untouched
	assert.NotEqual(t, red, DefaultPalette.Resolve(ColorB))
}

func TestLayoutSymbolsOrder(t *testing.T) {
	card := CardArea(Bounds{W: 660, H: 1000})

	for _, n := range [...]Number{One, Two, Three} {
		t.Run(n.String(), func(t *testing.T) {
			instrs := LayoutSymbols(card, Attributes{Shape: Square, Number: n, Shading: Outline, Color: ColorC})
			require.Len(t, instrs, int(n))

			slots := SplitIntoSlots(SymbolArea(card)).For(n)
			for i, instr := range instrs {
				minX, minY, maxX, maxY := instr.Path.Bounds()
				want := SymbolBounds(slots[i])
				assert.InDelta(t, want.MinX(), minX, delta)
				assert.InDelta(t, want.MinY(), minY, delta)
				assert.InDelta(t, want.MaxX(), maxX, delta)
				assert.InDelta(t, want.MaxY(), maxY, delta)
				if i > 0 {
					_, prevMinY, _, _ := instrs[i-1].Path.Bounds()
					assert.Less(t, prevMinY, minY, "top to bottom")
				}
			}
		})
	}

	one := LayoutSymbols(card, Attributes{Shape: Circle, Number: One})
	three := LayoutSymbols(card, Attributes{Shape: Circle, Number: Three})
	assert.Equal(t, three[1], one[0], "the single symbol uses the middle slot")
}

func TestLayoutSymbolsThreeFilledCircles(t *testing.T) {
	// the symbol area is a 200x200 square at (25, 25)
	card := Bounds{W: 250, H: 250}
	instrs := LayoutSymbols(card, Attributes{Shape: Circle, Number: Three, Shading: Filled, Color: ColorA})
	require.Len(t, instrs, 3)

	bandHeight := 200. / 3
	side := 0.8 * bandHeight
	for i, instr := range instrs {
		arc, ok := instr.Path[0].(cardpath.Arc)
		require.True(t, ok)
		assertPoint(t, cardpath.Point{X: 125, Y: 25 + bandHeight*(float64(i)+0.5)}, arc.Center)
		assert.InDelta(t, side/2, arc.Radius, delta)

		assert.Equal(t, DefaultPalette[ColorA], instr.Style.FillerColor)
		assert.Equal(t, 1., instr.Style.FillOpacity)
		assert.InDelta(t, 0.05*side, instr.Style.LineWidth, delta)
	}
}

func TestBackground(t *testing.T) {
	card := Bounds{X: 5, Y: 5, W: 66, H: 100}
	bg := DefaultTheme.Background(card)

	assert.Nil(t, bg.Style.LinerColor)
	assert.Equal(t, DefaultTheme.CardColor, bg.Style.FillerColor)
	assert.Equal(t, 1., bg.Style.FillOpacity)

	minX, minY, maxX, maxY := bg.Path.Bounds()
	assert.InDelta(t, 5, minX, 1e-4)
	assert.InDelta(t, 5, minY, 1e-4)
	assert.InDelta(t, 71, maxX, 1e-4)
	assert.InDelta(t, 105, maxY, 1e-4)

	var radius float64
	for _, op := range bg.Path {
		if arc, ok := op.(cardpath.Arc); ok {
			radius = arc.Radius
		}
	}
	assert.InDelta(t, 0.18*66, radius, delta)
}

func TestCompose(t *testing.T) {
	bounds := Bounds{W: 400, H: 300}
	attrs := Attributes{Shape: Triangle, Number: Two, Shading: Semitransparent, Color: ColorB}
	instrs := DefaultTheme.Compose(bounds, attrs)

	require.Len(t, instrs, 3)
	card := CardArea(bounds)
	assert.Equal(t, DefaultTheme.Background(card), instrs[0])
	assert.Equal(t, LayoutSymbols(card, attrs), instrs[1:])
}

func TestLayoutConcurrent(t *testing.T) {
	attrs := AllAttributes()
	want := make([][]RenderInstruction, len(attrs))
	for i, a := range attrs {
		want[i] = DefaultTheme.Compose(Bounds{W: 300, H: 200}, a)
	}

	var wg sync.WaitGroup
	got := make([][]RenderInstruction, len(attrs))
	for i, a := range attrs {
		wg.Add(1)
		go func(i int, a Attributes) {
			defer wg.Done()
			got[i] = DefaultTheme.Compose(Bounds{W: 300, H: 200}, a)
		}(i, a)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}
