package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// DatasetRow is one movie in a generated preprocessed CSV.
type DatasetRow struct {
	Title     string
	Countries []string
	Side      string
	Year      int
}

// WriteDataset writes rows at path in the preprocessed dataset layout, with
// countries serialized as a Python list literal.
func WriteDataset(t testing.TB, path string, rows []DatasetRow) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"title", "countries", "cold_war_side", "release_date"}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, row := range rows {
		quoted := make([]string, len(row.Countries))
		for i, c := range row.Countries {
			quoted[i] = "'" + c + "'"
		}
		date := ""
		if row.Year > 0 {
			date = strconv.Itoa(row.Year) + "-01-01"
		}
		record := []string{row.Title, "[" + strings.Join(quoted, ", ") + "]", row.Side, date}
		if err := w.Write(record); err != nil {
			t.Fatalf("write row %q: %v", row.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

// ColdWarScenario is a twelve movie dataset crediting the United States on
// every movie (seven Western, three Eastern, two None), France on six and
// the Soviet Union on three. The loader folds the Soviet Union into Russia.
func ColdWarScenario() []DatasetRow {
	const (
		us   = "United States of America"
		fr   = "France"
		ussr = "Soviet Union"
	)
	return []DatasetRow{
		{Title: "Solo A", Countries: []string{us}, Side: "Western", Year: 1952},
		{Title: "Solo B", Countries: []string{us}, Side: "Western", Year: 1955},
		{Title: "Solo C", Countries: []string{us}, Side: "Western", Year: 1955},
		{Title: "Solo D", Countries: []string{us}, Side: "Western", Year: 1961},
		{Title: "Joint A", Countries: []string{us, fr}, Side: "Western", Year: 1962},
		{Title: "Joint B", Countries: []string{us, fr}, Side: "Western", Year: 1964},
		{Title: "Joint C", Countries: []string{us, fr}, Side: "Western", Year: 1966},
		{Title: "Thaw A", Countries: []string{us, ussr}, Side: "Eastern", Year: 1972},
		{Title: "Thaw B", Countries: []string{us, ussr}, Side: "Eastern", Year: 1975},
		{Title: "Triple", Countries: []string{us, ussr, fr}, Side: "Eastern", Year: 1979},
		{Title: "Neutral A", Countries: []string{us, fr}, Side: "None", Year: 1983},
		{Title: "Neutral B", Countries: []string{us, fr}, Side: "None", Year: 0},
	}
}
