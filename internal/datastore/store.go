package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"blocgraph/internal/movies"
)

// ErrEmpty indicates the cache holds no imported dataset yet.
var ErrEmpty = errors.New("dataset cache is empty")

// Store is a single-file SQLite cache of the movie dataset.
type Store struct {
	db   *sql.DB
	path string
}

// ImportInfo describes the most recent import.
type ImportInfo struct {
	RunID       string
	Source      string
	RecordCount int
	ImportedAt  time.Time
}

// Open initializes or connects to the cache at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import replaces the cached dataset with records in one transaction.
func (s *Store) Import(ctx context.Context, records []movies.Record, source, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM movie_countries", "DELETE FROM movies"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear dataset: %w", err)
		}
	}

	movieStmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (id, title, side, release_year) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare movie insert: %w", err)
	}
	defer movieStmt.Close()
	countryStmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO movie_countries (movie_id, country) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare country insert: %w", err)
	}
	defer countryStmt.Close()

	for i, rec := range records {
		id := int64(i + 1)
		if _, err := movieStmt.ExecContext(ctx, id, rec.Title, string(rec.Side), rec.ReleaseYear); err != nil {
			return fmt.Errorf("insert movie %d: %w", id, err)
		}
		for _, country := range rec.Countries {
			if _, err := countryStmt.ExecContext(ctx, id, country); err != nil {
				return fmt.Errorf("insert country for movie %d: %w", id, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (run_id, source, record_count, imported_at) VALUES (?, ?, ?, ?)`,
		runID, source, len(records), time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Records reads the cached dataset back in import order.
func (s *Store) Records(ctx context.Context) ([]movies.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT m.id, m.title, m.side, m.release_year, c.country
        FROM movies m
        LEFT JOIN movie_countries c ON c.movie_id = m.id
        ORDER BY m.id, c.country`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var (
		records []movies.Record
		lastID  int64 = -1
	)
	for rows.Next() {
		var (
			id      int64
			title   string
			sideRaw string
			year    int
			country sql.NullString
		)
		if err := rows.Scan(&id, &title, &sideRaw, &year, &country); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if id != lastID {
			side, err := movies.ParseSide(sideRaw)
			if err != nil {
				return nil, fmt.Errorf("movie %d: %w", id, err)
			}
			records = append(records, movies.Record{Title: title, Countries: []string{}, Side: side, ReleaseYear: year})
			lastID = id
		}
		if country.Valid {
			last := &records[len(records)-1]
			last.Countries = append(last.Countries, country.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Load returns the cached dataset as a movie store. ErrEmpty is returned
// when nothing has been imported.
func (s *Store) Load(ctx context.Context) (*movies.Store, error) {
	_, ok, err := s.LastImport(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmpty
	}
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return movies.NewStore(records), nil
}

// LastImport returns metadata about the latest import.
func (s *Store) LastImport(ctx context.Context) (ImportInfo, bool, error) {
	var (
		info        ImportInfo
		importedRaw string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, source, record_count, imported_at FROM imports ORDER BY id DESC LIMIT 1`,
	).Scan(&info.RunID, &info.Source, &info.RecordCount, &importedRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return ImportInfo{}, false, nil
	}
	if err != nil {
		return ImportInfo{}, false, fmt.Errorf("read last import: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, importedRaw); parseErr == nil {
		info.ImportedAt = ts
	}
	return info, true, nil
}
