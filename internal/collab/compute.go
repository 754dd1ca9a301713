package collab

import (
	"errors"
	"fmt"
	"math"

	"blocgraph/internal/movies"
)

// ErrInvalidParams is returned when a parameter is outside its range.
var ErrInvalidParams = errors.New("invalid collaboration parameters")

// Params are the two independent filtering passes: the graph relevance
// filter (MinFilms, MinCollab) and the side classifier.
type Params struct {
	MinFilms   int
	MinCollab  int
	Classifier ClassifierParams
}

// DefaultParams keeps every country and pair and uses the default
// classifier settings.
func DefaultParams() Params {
	return Params{Classifier: DefaultClassifierParams()}
}

// Validate checks that counts are non-negative and the threshold is a
// percentage.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"min_films", p.MinFilms},
		{"min_collab", p.MinCollab},
		{"relevance_nb", p.Classifier.RelevanceNB},
		{"relevance_diff", p.Classifier.RelevanceDiff},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0 (got %d)", ErrInvalidParams, c.name, c.value)
		}
	}
	th := p.Classifier.Threshold
	if math.IsNaN(th) || th < 0 || th > 100 {
		return fmt.Errorf("%w: threshold must be within [0, 100] (got %v)", ErrInvalidParams, th)
	}
	return nil
}

// Result carries every intermediate of one pipeline run.
type Result struct {
	Params   Params
	Counts   Counts
	Filtered Filtered
	Tallies  map[string]Tally
	Sides    map[string]movies.Side
	Graph    *Graph
}

// Compute runs counting, relevance filtering, side classification and graph
// assembly from scratch. Records are only read.
func Compute(records []movies.Record, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	counts := Count(records)
	filtered := Filter(counts, p.MinFilms, p.MinCollab)
	tallies := TallySides(records)
	sides := classifyAll(tallies, filtered.Countries(), p.Classifier)
	return &Result{
		Params:   p,
		Counts:   counts,
		Filtered: filtered,
		Tallies:  tallies,
		Sides:    sides,
		Graph:    Build(filtered, sides),
	}, nil
}
