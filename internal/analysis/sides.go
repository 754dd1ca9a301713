package analysis

import (
	"cmp"
	"slices"

	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
)

// CountryTally is the side breakdown of the movies crediting one country.
type CountryTally struct {
	Country     string `json:"country"`
	Occurrences int    `json:"occurrences"`
	Western     int    `json:"western"`
	Eastern     int    `json:"eastern"`
	None        int    `json:"none"`
}

// SideTallies breaks each country's movies down by side, most credited
// country first, ties by name.
func SideTallies(records []movies.Record) []CountryTally {
	tallies := collab.TallySides(records)
	out := make([]CountryTally, 0, len(tallies))
	for country, t := range tallies {
		out = append(out, CountryTally{
			Country:     country,
			Occurrences: t.Total,
			Western:     t.West,
			Eastern:     t.East,
			None:        t.Neutral(),
		})
	}
	slices.SortFunc(out, func(a, b CountryTally) int {
		return cmp.Or(cmp.Compare(b.Occurrences, a.Occurrences), cmp.Compare(a.Country, b.Country))
	})
	return out
}

// SideShare is the count and fraction of movies carrying one label.
type SideShare struct {
	Side  movies.Side `json:"side"`
	Count int         `json:"count"`
	Share float64     `json:"share"`
}

// Distribution is the overall side breakdown, with and without None.
type Distribution struct {
	Total     int         `json:"total"`
	All       []SideShare `json:"all"`
	Polarized []SideShare `json:"polarized"`
}

// SideDistribution counts labels over every record.
func SideDistribution(records []movies.Record) Distribution {
	counts := make(map[movies.Side]int, len(movies.MovieSides))
	for _, rec := range records {
		counts[rec.Side]++
	}
	polarizedTotal := counts[movies.Western] + counts[movies.Eastern]
	dist := Distribution{Total: len(records)}
	for _, side := range movies.MovieSides {
		dist.All = append(dist.All, SideShare{Side: side, Count: counts[side], Share: fraction(counts[side], len(records))})
		if side.Polarized() {
			dist.Polarized = append(dist.Polarized, SideShare{Side: side, Count: counts[side], Share: fraction(counts[side], polarizedTotal)})
		}
	}
	return dist
}

// YearCount is the side breakdown of movies released in one year.
type YearCount struct {
	Year    int `json:"year"`
	Western int `json:"western"`
	Eastern int `json:"eastern"`
	None    int `json:"none"`
	Total   int `json:"total"`
}

// YearlyCounts groups records by release year, oldest first. Records with
// an unknown year are left out.
func YearlyCounts(records []movies.Record) []YearCount {
	byYear := make(map[int]*YearCount)
	for _, rec := range records {
		if rec.ReleaseYear <= 0 {
			continue
		}
		yc, ok := byYear[rec.ReleaseYear]
		if !ok {
			yc = &YearCount{Year: rec.ReleaseYear}
			byYear[rec.ReleaseYear] = yc
		}
		yc.Total++
		switch rec.Side {
		case movies.Western:
			yc.Western++
		case movies.Eastern:
			yc.Eastern++
		default:
			yc.None++
		}
	}
	out := make([]YearCount, 0, len(byYear))
	for _, yc := range byYear {
		out = append(out, *yc)
	}
	slices.SortFunc(out, func(a, b YearCount) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

func fraction(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
