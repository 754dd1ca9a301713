package render

import (
	"fmt"
	"math"

	"blocgraph/internal/collab"
)

// Width factors applied to edge weights.
const (
	networkWidthPerWeight = 0.01
	mapMaxWidth           = 5.0
	alphaGain             = 5.0
)

// EdgeStyle is the stroke of one rendered edge.
type EdgeStyle struct {
	Width float64
	Color string
}

// MarkerSize damps the undamped scaled size for display.
func MarkerSize(size, scale float64) float64 {
	return size * scale
}

// HoverText labels a node with its name and film count, recovered from the
// scaled size.
func HoverText(name string, size float64) string {
	return fmt.Sprintf("%s : %d", name, int64(math.Round(size*size)))
}

// relativeAlpha is (weight / maxWeight) * 5 clamped to [0, 1].
func relativeAlpha(weight, maxWeight int) float64 {
	if maxWeight <= 0 {
		return 1
	}
	return math.Min(1, float64(weight)/float64(maxWeight)*alphaGain)
}

// NetworkEdgeStyle strokes an edge of the force-directed figure: width grows
// linearly with the weight; same-bloc pairs take the bloc colour with a
// weight-relative alpha, every other pair is opaque black.
func NetworkEdgeStyle(tone collab.Tone, weight, maxWeight int, p Palette) EdgeStyle {
	style := EdgeStyle{Width: float64(weight) * networkWidthPerWeight}
	switch tone {
	case collab.SameWestern:
		style.Color = p.Western.WithAlpha(relativeAlpha(weight, maxWeight))
	case collab.SameEastern:
		style.Color = p.Eastern.WithAlpha(relativeAlpha(weight, maxWeight))
	default:
		style.Color = p.Black.WithAlpha(1)
	}
	return style
}

// MapEdgeStyle strokes an edge of the geographic figure: width is relative
// to the heaviest edge; pairs outside a shared bloc use the None colour.
func MapEdgeStyle(tone collab.Tone, weight, maxWeight int, p Palette) EdgeStyle {
	style := EdgeStyle{Width: mapMaxWidth}
	if maxWeight > 0 {
		style.Width = float64(weight) / float64(maxWeight) * mapMaxWidth
	}
	switch tone {
	case collab.SameWestern:
		style.Color = p.Western.WithAlpha(relativeAlpha(weight, maxWeight))
	case collab.SameEastern:
		style.Color = p.Eastern.WithAlpha(relativeAlpha(weight, maxWeight))
	default:
		style.Color = p.None.CSS()
	}
	return style
}
