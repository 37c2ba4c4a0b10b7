package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/setcard/card"
)

var (
	shapes   = [...]card.Shape{card.Circle, card.Triangle, card.Square}
	numbers  = [...]card.Number{card.One, card.Two, card.Three}
	shadings = [...]card.Shading{card.Outline, card.Filled, card.Semitransparent}
	colors   = [...]card.Color{card.ColorA, card.ColorB, card.ColorC}
)

func parseShape(s string) (card.Shape, error) {
	for _, shape := range shapes {
		if strings.EqualFold(s, shape.String()) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q (must be 'circle', 'triangle' or 'square')", ErrInvalidAttribute, s)
}

// parseNumber accepts both digits and names ("2" or "two").
func parseNumber(s string) (card.Number, error) {
	for _, n := range numbers {
		if s == fmt.Sprint(int(n)) || strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: number %q (must be 1, 2 or 3)", ErrInvalidAttribute, s)
}

func parseShading(s string) (card.Shading, error) {
	for _, shading := range shadings {
		if strings.EqualFold(s, shading.String()) {
			return shading, nil
		}
	}
	return 0, fmt.Errorf("%w: shading %q (must be 'outline', 'filled' or 'semitransparent')", ErrInvalidAttribute, s)
}

func parseColor(s string) (card.Color, error) {
	for _, c := range colors {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: color %q (must be 'a', 'b' or 'c')", ErrInvalidAttribute, s)
}

// attributeFlags holds the raw values of the attribute flags,
// shared by the render and layout commands.
type attributeFlags struct {
	shape, number, shading, color string
}

func (f attributeFlags) parse() (attrs card.Attributes, err error) {
	if attrs.Shape, err = parseShape(f.shape); err != nil {
		return attrs, err
	}
	if attrs.Number, err = parseNumber(f.number); err != nil {
		return attrs, err
	}
	if attrs.Shading, err = parseShading(f.shading); err != nil {
		return attrs, err
	}
	if attrs.Color, err = parseColor(f.color); err != nil {
		return attrs, err
	}
	return attrs, nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return formats
}

const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatPDF  = "pdf"
	formatJSON = "json"
)

var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true, formatJSON: true}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("%w: %s (must be 'svg', 'png', 'pdf' or 'json')", ErrInvalidFormat, f)
		}
	}
	return nil
}

// validateSize checks the frame dimensions, which must be finite and positive.
func validateSize(width, height float64) error {
	for _, v := range [2]float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
		}
	}
	return nil
}

// cardName returns a file name friendly identifier, like "circle-two-filled-a"
func cardName(attrs card.Attributes) string {
	return fmt.Sprintf("%s-%s-%s-%s", attrs.Shape, attrs.Number, attrs.Shading, attrs.Color)
}
