package collab

import (
	"blocgraph/internal/movies"
)

// Tally aggregates the side labels of every movie crediting one country.
type Tally struct {
	Total int
	West  int
	East  int
}

// Neutral is the number of movies labelled None.
func (t Tally) Neutral() int {
	return t.Total - t.West - t.East
}

// Polarized is West + East.
func (t Tally) Polarized() int {
	return t.West + t.East
}

// PercentageDifference is |West - East| / (West + East) * 100. The second
// result is false when there are no polarized movies.
func (t Tally) PercentageDifference() (float64, bool) {
	denom := t.Polarized()
	if denom == 0 {
		return 0, false
	}
	diff := t.West - t.East
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(denom) * 100, true
}

// ClassifierParams drive the side verdict.
type ClassifierParams struct {
	// RelevanceNB is the minimum number of movies, any label, below which
	// the verdict is Lack of data.
	RelevanceNB int
	// RelevanceDiff is the minimum West + East count below which the verdict
	// is None.
	RelevanceDiff int
	// Threshold is the minimum percentage-point gap needed to pick a bloc.
	Threshold float64
}

// DefaultClassifierParams returns relevance_nb 10, relevance_diff 10 and a
// 19 percent threshold.
func DefaultClassifierParams() ClassifierParams {
	return ClassifierParams{RelevanceNB: 10, RelevanceDiff: 10, Threshold: 19}
}

// TallySides sweeps the full record set once, counting labels per country.
// Relevance-filter thresholds play no part here.
func TallySides(records []movies.Record) map[string]Tally {
	tallies := make(map[string]Tally)
	for _, rec := range records {
		for _, country := range distinctCountries(rec.Countries) {
			t := tallies[country]
			t.Total++
			switch rec.Side {
			case movies.Western:
				t.West++
			case movies.Eastern:
				t.East++
			}
			tallies[country] = t
		}
	}
	return tallies
}

// Classify turns a tally into a verdict. The gates run in a fixed order:
// total volume, then polarized volume, then the percentage gap.
func Classify(t Tally, p ClassifierParams) movies.Side {
	if t.Total < p.RelevanceNB {
		return movies.LackOfData
	}
	if t.Polarized() < p.RelevanceDiff {
		return movies.None
	}
	pd, ok := t.PercentageDifference()
	if !ok || pd < p.Threshold || t.West == t.East {
		return movies.None
	}
	if t.West > t.East {
		return movies.Western
	}
	return movies.Eastern
}

// AssignSides classifies each of countries against the unfiltered records.
// Countries absent from the records classify from an empty tally.
func AssignSides(records []movies.Record, countries []string, p ClassifierParams) map[string]movies.Side {
	return classifyAll(TallySides(records), countries, p)
}

func classifyAll(tallies map[string]Tally, countries []string, p ClassifierParams) map[string]movies.Side {
	out := make(map[string]movies.Side, len(countries))
	for _, country := range countries {
		out[country] = Classify(tallies[country], p)
	}
	return out
}
