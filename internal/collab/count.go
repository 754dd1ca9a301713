package collab

import (
	"slices"

	"blocgraph/internal/movies"
)

// Pair is an unordered country pair stored with A < B.
type Pair struct {
	A string
	B string
}

// NewPair orders the two names so (x, y) and (y, x) yield the same pair.
func NewPair(x, y string) Pair {
	if y < x {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

func (p Pair) String() string {
	return p.A + " - " + p.B
}

// Counts holds the raw per-country film counts and per-pair co-production
// counts for a record set.
type Counts struct {
	Films          map[string]int
	Collaborations map[Pair]int
}

// Count scans records once. Each movie increments every listed country by one
// and every unordered pair of distinct listed countries by one.
func Count(records []movies.Record) Counts {
	counts := Counts{
		Films:          make(map[string]int),
		Collaborations: make(map[Pair]int),
	}
	for _, rec := range records {
		countries := distinctCountries(rec.Countries)
		for i, a := range countries {
			counts.Films[a]++
			for _, b := range countries[i+1:] {
				counts.Collaborations[Pair{A: a, B: b}]++
			}
		}
	}
	return counts
}

// distinctCountries returns a sorted, duplicate-free copy without empty names.
func distinctCountries(countries []string) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		if c != "" {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
