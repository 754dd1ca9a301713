package movies

import (
	"slices"
)

// Record is one movie as consumed by the collaboration engine.
type Record struct {
	Title       string
	Countries   []string
	Side        Side
	ReleaseYear int
}

// NewRecord normalizes and de-duplicates country names. The returned
// country list is sorted; empty names are dropped.
func NewRecord(title string, countries []string, side Side, year int) Record {
	return Record{
		Title:       title,
		Countries:   NormalizeCountries(countries),
		Side:        side,
		ReleaseYear: year,
	}
}

// Store is an immutable collection of movie records. It is safe to share
// between concurrent readers.
type Store struct {
	records []Record
}

// NewStore copies the provided records into a read-only store.
func NewStore(records []Record) *Store {
	cp := make([]Record, len(records))
	for i, rec := range records {
		rec.Countries = slices.Clone(rec.Countries)
		cp[i] = rec
	}
	return &Store{records: cp}
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of the record slice. Country slices are shared and
// must be treated as read-only.
func (s *Store) Records() []Record {
	if s == nil {
		return nil
	}
	return slices.Clone(s.records)
}

// Countries returns every distinct country credited in the store, sorted.
func (s *Store) Countries() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, rec := range s.records {
		for _, c := range rec.Countries {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
