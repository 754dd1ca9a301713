package render

import (
	"fmt"
	"strconv"

	"blocgraph/internal/movies"
)

// RGB is an opaque colour.
type RGB struct {
	R, G, B uint8
}

// CSS renders the colour as rgb(r, g, b).
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// WithAlpha renders the colour as rgba(r, g, b, a).
func (c RGB) WithAlpha(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Palette maps side verdicts to colours.
type Palette struct {
	Western    RGB
	Eastern    RGB
	None       RGB
	LackOfData RGB
	Black      RGB
}

// DefaultPalette is deep blue for the West, deep red for the East, grey for
// None and yellow for Lack of data.
func DefaultPalette() Palette {
	return Palette{
		Western:    RGB{28, 94, 169},
		Eastern:    RGB{189, 0, 50},
		None:       RGB{187, 185, 185},
		LackOfData: RGB{255, 233, 137},
		Black:      RGB{0, 0, 0},
	}
}

// Side returns the node colour for a verdict.
func (p Palette) Side(side movies.Side) RGB {
	switch side {
	case movies.Western:
		return p.Western
	case movies.Eastern:
		return p.Eastern
	case movies.None:
		return p.None
	default:
		return p.LackOfData
	}
}
