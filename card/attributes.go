package card

// Shape is the kind of symbol drawn on a card.
type Shape uint8

const (
	Circle Shape = iota
	Triangle
	Square
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return "<unknown Shape>"
	}
}

// Number is the count of symbols drawn on a card.
type Number uint8

const (
	One Number = iota + 1
	Two
	Three
)

func (n Number) String() string {
	switch n {
	case One:
		return "one"
	case Two:
		return "two"
	case Three:
		return "three"
	default:
		return "<unknown Number>"
	}
}

// Shading is the fill treatment of the symbols.
type Shading uint8

const (
	Outline Shading = iota
	Filled
	Semitransparent
)

func (s Shading) String() string {
	switch s {
	case Outline:
		return "outline"
	case Filled:
		return "filled"
	case Semitransparent:
		return "semitransparent"
	default:
		return "<unknown Shading>"
	}
}

// Color identifies one of the three entries of a [Palette].
type Color uint8

const (
	ColorA Color = iota
	ColorB
	ColorC

	numColors = 3
)

func (c Color) String() string {
	switch c {
	case ColorA:
		return "a"
	case ColorB:
		return "b"
	case ColorC:
		return "c"
	default:
		return "<unknown Color>"
	}
}

// Attributes are the four properties defining a card.
type Attributes struct {
	Shape   Shape
	Number  Number
	Shading Shading
	Color   Color
}

// AllAttributes returns the 81 different cards of a deck,
// ordered by shape, number, shading and color.
func AllAttributes() []Attributes {
	out := make([]Attributes, 0, 81)
	for _, s := range [...]Shape{Circle, Triangle, Square} {
		for _, n := range [...]Number{One, Two, Three} {
			for _, sh := range [...]Shading{Outline, Filled, Semitransparent} {
				for _, c := range [...]Color{ColorA, ColorB, ColorC} {
					out = append(out, Attributes{Shape: s, Number: n, Shading: sh, Color: c})
				}
			}
		}
	}
	return out
}
