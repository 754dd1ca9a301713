package movies

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"blocgraph/internal/logging"
)

// Column names understood by the CSV loader.
const (
	ColumnTitle       = "title"
	ColumnCountries   = "countries"
	ColumnSide        = "cold_war_side"
	ColumnReleaseDate = "release_date"
	ColumnReleaseYear = "year_release_date"
)

// Skip reasons reported by LoadReport.
const (
	SkipInvalidCountries = "invalid_countries"
	SkipInvalidSide      = "invalid_side"
	SkipMalformedRow     = "malformed_row"
)

// LoadOptions customize CSV ingestion.
type LoadOptions struct {
	Countries *CountryTable
	Logger    *slog.Logger
}

// LoadReport summarizes a CSV ingestion.
type LoadReport struct {
	Rows    int
	Loaded  int
	Skipped map[string]int
}

// SkippedTotal returns the number of rejected rows.
func (r LoadReport) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// LoadCSV reads the preprocessed movie dataset at path.
func LoadCSV(ctx context.Context, path string, opts LoadOptions) (*Store, LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	return ReadCSV(ctx, file, opts)
}

// ReadCSV parses movie rows from r. CSV syntax errors, unparseable countries
// and unknown side labels skip the row and are counted. A header missing the
// countries or cold_war_side column is fatal, as is any error from r itself.
func ReadCSV(ctx context.Context, r io.Reader, opts LoadOptions) (*Store, LoadReport, error) {
	table := opts.Countries
	if table == nil {
		table = defaultTable
	}
	logger := logging.NewComponentLogger(opts.Logger, "movies")

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, LoadReport{}, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
		}
		return nil, LoadReport{}, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)
	for _, required := range []string{ColumnCountries, ColumnSide} {
		if _, ok := columns[required]; !ok {
			return nil, LoadReport{}, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	report := LoadReport{Skipped: map[string]int{}}
	var records []Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return nil, report, fmt.Errorf("read row %d: %w", report.Rows+1, err)
		}
		report.Rows++
		if err != nil {
			report.Skipped[SkipMalformedRow]++
			logger.Debug("skipping malformed row", logging.Int("row", report.Rows), logging.Error(err))
			continue
		}

		rec, reason, err := decodeRow(row, columns, table)
		if err != nil {
			report.Skipped[reason]++
			logger.Debug("skipping row", logging.Int("row", report.Rows), logging.String("reason", reason), logging.Error(err))
			continue
		}
		records = append(records, rec)
		report.Loaded++
	}

	if skipped := report.SkippedTotal(); skipped > 0 {
		logging.WarnWithContext(logger, "dataset rows skipped", "dataset_rows_skipped",
			logging.Int("skipped", skipped),
			logging.Int("loaded", report.Loaded),
			logging.String("reasons", formatReasons(report.Skipped)),
			logging.String(logging.FieldErrorHint, "inspect the countries and cold_war_side columns"),
			logging.String(logging.FieldImpact, "skipped movies do not contribute to counts or verdicts"),
		)
	}
	logger.Info("dataset loaded", logging.Int("rows", report.Rows), logging.Int("records", report.Loaded))
	return NewStore(records), report, nil
}

func decodeRow(row []string, columns map[string]int, table *CountryTable) (Record, string, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	countries, err := ParseCountryList(field(ColumnCountries))
	if err != nil {
		return Record{}, SkipInvalidCountries, err
	}
	side, err := ParseSide(field(ColumnSide))
	if err != nil {
		return Record{}, SkipInvalidSide, err
	}
	year := ParseYear(field(ColumnReleaseYear))
	if year == 0 {
		year = ParseYear(field(ColumnReleaseDate))
	}
	return Record{
		Title:       strings.TrimSpace(field(ColumnTitle)),
		Countries:   table.Normalize(countries),
		Side:        side,
		ReleaseYear: year,
	}, "", nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	return columns
}

func formatReasons(skipped map[string]int) string {
	keys := make([]string, 0, len(skipped))
	for k := range skipped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, skipped[k]))
	}
	return strings.Join(parts, ",")
}
