package collab

import (
	"cmp"
	"math"
	"slices"
)

// Filtered is the outcome of the relevance filter.
type Filtered struct {
	Films          map[string]int
	Sizes          map[string]float64
	Collaborations map[Pair]int
}

// Filter keeps countries with more than minFilms films, then pairs with more
// than minCollab co-productions whose endpoints both survived. Scaled sizes
// are derived from the surviving counts only.
func Filter(counts Counts, minFilms, minCollab int) Filtered {
	out := Filtered{
		Films:          make(map[string]int),
		Sizes:          make(map[string]float64),
		Collaborations: make(map[Pair]int),
	}
	for country, n := range counts.Films {
		if n > minFilms {
			out.Films[country] = n
		}
	}
	for pair, weight := range counts.Collaborations {
		if weight <= minCollab {
			continue
		}
		if _, ok := out.Films[pair.A]; !ok {
			continue
		}
		if _, ok := out.Films[pair.B]; !ok {
			continue
		}
		out.Collaborations[pair] = weight
	}
	for country, n := range out.Films {
		out.Sizes[country] = ScaledSize(n)
	}
	return out
}

// ScaledSize is the square-root sizing transform applied to film counts.
func ScaledSize(filmCount int) float64 {
	return math.Sqrt(float64(filmCount))
}

// Countries returns the surviving countries in name order.
func (f Filtered) Countries() []string {
	out := make([]string, 0, len(f.Films))
	for country := range f.Films {
		out = append(out, country)
	}
	slices.Sort(out)
	return out
}

// Pairs returns the surviving pairs ordered by (A, B).
func (f Filtered) Pairs() []Pair {
	return sortedPairs(f.Collaborations)
}

func sortedPairs(m map[Pair]int) []Pair {
	out := make([]Pair, 0, len(m))
	for pair := range m {
		out = append(out, pair)
	}
	slices.SortFunc(out, comparePairs)
	return out
}

func comparePairs(x, y Pair) int {
	return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
}
