package movies

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// CountryTable maps historical or regional country names onto the name a
// country is represented by in the analysis. Lookups are case-insensitive.
type CountryTable struct {
	entries map[string]string
}

// NewCountryTable builds a lookup from historical name to represented name.
func NewCountryTable(representations map[string]string) *CountryTable {
	table := &CountryTable{entries: make(map[string]string, len(representations))}
	for from, to := range representations {
		table.entries[foldKey(from)] = cleanName(to)
	}
	return table
}

// DefaultCountryTable returns the representation table applied by the
// dataset preprocessing.
func DefaultCountryTable() *CountryTable {
	return NewCountryTable(map[string]string{
		"Soviet Union":                             "Russia",
		"Soviet occupation zone":                   "Russia",
		"Ukrainian SSR":                            "Ukraine",
		"Ukranian SSR":                             "Ukraine",
		"Uzbek SSR":                                "Uzbekistan",
		"Georgian SSR":                             "Georgia",
		"West Germany":                             "Germany",
		"German Democratic Republic":               "Germany",
		"East Germany":                             "Germany",
		"England":                                  "United Kingdom",
		"Wales":                                    "United Kingdom",
		"Scotland":                                 "United Kingdom",
		"Northern Ireland":                         "United Kingdom",
		"Kingdom of Great Britain":                 "United Kingdom",
		"Socialist Federal Republic of Yugoslavia": "Yugoslavia",
		"Federal Republic of Yugoslavia":           "Yugoslavia",
		"Republic of China":                        "Taiwan",
		"South Korea":                              "Korea",
		"North Korea":                              "Korea",
		"Kingdom of Italy":                         "Italy",
		"Republic of Macedonia":                    "Macedonia",
		"Libyan Arab Jamahiriya":                   "Libya",
		"Cote DIvoire":                             "Côte d'Ivoire",
		"Malayalam Language":                       "India",
		"Syrian Arab Republic":                     "Syria",
		"Kyrgyz Republic":                          "Kyrgyzstan",
		"Slovak Republic":                          "Czechoslovakia",
	})
}

// Canonical returns the represented name for a raw country string. Unknown
// names are returned cleaned but otherwise unchanged.
func (t *CountryTable) Canonical(raw string) string {
	name := cleanName(raw)
	if name == "" || t == nil {
		return name
	}
	if mapped, ok := t.entries[foldKey(name)]; ok {
		return mapped
	}
	return name
}

// foldKey builds a fresh Caser per call; Casers are stateful.
func foldKey(name string) string {
	return cases.Fold().String(cleanName(name))
}

var defaultTable = DefaultCountryTable()

// NormalizeCountries canonicalizes names with the default table, drops
// empties, de-duplicates and sorts.
func NormalizeCountries(raw []string) []string {
	return defaultTable.Normalize(raw)
}

// Normalize canonicalizes names, drops empties, de-duplicates and sorts.
func (t *CountryTable) Normalize(raw []string) []string {
	if len(raw) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if canonical := t.Canonical(name); canonical != "" {
			out = append(out, canonical)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// cleanName applies NFC and collapses internal whitespace.
func cleanName(raw string) string {
	return strings.Join(strings.Fields(norm.NFC.String(raw)), " ")
}
