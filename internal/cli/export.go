package cli

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/benoitkugler/setcard/card"
)

type jsonBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toJSONBounds(b card.Bounds) jsonBounds {
	return jsonBounds{X: b.X, Y: b.Y, Width: b.W, Height: b.H}
}

type jsonSymbol struct {
	Bounds      jsonBounds `json:"bounds"`
	Path        string     `json:"path"`
	Fill        string     `json:"fill,omitempty"`
	FillOpacity float64    `json:"fill_opacity,omitempty"`
	Stroke      string     `json:"stroke"`
	StrokeWidth float64    `json:"stroke_width"`
}

type jsonOutput struct {
	Shape      string       `json:"shape"`
	Number     int          `json:"number"`
	Shading    string       `json:"shading"`
	Color      string       `json:"color"`
	Frame      jsonBounds   `json:"frame"`
	Card       jsonBounds   `json:"card"`
	SymbolArea jsonBounds   `json:"symbol_area"`
	Slots      []jsonBounds `json:"slots"`
	Symbols    []jsonSymbol `json:"symbols"`
}

// renderJSON describes the layout of a card fitted in frame:
// every intermediate rectangle and the resolved symbols.
func renderJSON(frame card.Bounds, attrs card.Attributes, theme card.Theme) ([]byte, error) {
	area := card.CardArea(frame)
	symbolArea := card.SymbolArea(area)
	slots := card.SplitIntoSlots(symbolArea)
	used := slots.For(attrs.Number)
	instrs := theme.LayoutSymbols(area, attrs)

	out := jsonOutput{
		Shape:      attrs.Shape.String(),
		Number:     int(attrs.Number),
		Shading:    attrs.Shading.String(),
		Color:      attrs.Color.String(),
		Frame:      toJSONBounds(frame),
		Card:       toJSONBounds(area),
		SymbolArea: toJSONBounds(symbolArea),
		Slots:      []jsonBounds{toJSONBounds(slots.Top), toJSONBounds(slots.Middle), toJSONBounds(slots.Bottom)},
		Symbols:    make([]jsonSymbol, len(instrs)),
	}
	for i, instr := range instrs {
		sym := jsonSymbol{
			Bounds:      toJSONBounds(card.SymbolBounds(used[i])),
			Path:        instr.Path.ToSVGPath(),
			Stroke:      hexString(instr.Style.LinerColor),
			StrokeWidth: instr.Style.LineWidth,
		}
		if instr.Style.FillerColor != nil {
			sym.Fill = hexString(instr.Style.FillerColor)
			sym.FillOpacity = instr.Style.FillOpacity
		}
		out.Symbols[i] = sym
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return data, nil
}

func hexString(c color.Color) string {
	if c == nil {
		return ""
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}
