package datastore_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"blocgraph/internal/collab"
	"blocgraph/internal/datastore"
	"blocgraph/internal/movies"
)

func openStore(t *testing.T) (*datastore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache", "movies.db")
	store, err := datastore.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func sampleRecords() []movies.Record {
	return []movies.Record{
		movies.NewRecord("Dr. Strangelove", []string{"United Kingdom", "United States of America"}, movies.Western, 1964),
		movies.NewRecord("Solaris", []string{"Soviet Union"}, movies.Eastern, 1972),
		movies.NewRecord("Untitled", nil, movies.None, 0),
	}
}

func TestImportRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	if err := store.Import(ctx, sampleRecords(), "movies.csv", "run-1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	got, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if !reflect.DeepEqual(got, sampleRecords()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, sampleRecords())
	}

	info, ok, err := store.LastImport(ctx)
	if err != nil || !ok {
		t.Fatalf("LastImport: %v %v", ok, err)
	}
	if info.RunID != "run-1" || info.Source != "movies.csv" || info.RecordCount != 3 || info.ImportedAt.IsZero() {
		t.Fatalf("unexpected import info %+v", info)
	}
}

func TestImportReplacesDataset(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	if err := store.Import(ctx, sampleRecords(), "first.csv", "run-1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	second := []movies.Record{movies.NewRecord("Only", []string{"France"}, movies.None, 1959)}
	if err := store.Import(ctx, second, "second.csv", "run-2"); err != nil {
		t.Fatalf("second Import: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 1 || loaded.Records()[0].Title != "Only" {
		t.Fatalf("expected dataset replaced, got %+v", loaded.Records())
	}
	info, _, _ := store.LastImport(ctx)
	if info.RunID != "run-2" {
		t.Fatalf("expected latest import, got %+v", info)
	}
}

func TestCachedRecordsComputeSameGraph(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	records := sampleRecords()
	if err := store.Import(ctx, records, "movies.csv", "run-1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	cached, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	a, _ := collab.Compute(records, collab.DefaultParams())
	b, _ := collab.Compute(cached, collab.DefaultParams())
	if !a.Graph.Equal(b.Graph) {
		t.Fatal("cached records should build the same graph")
	}
}

func TestLoadEmptyCache(t *testing.T) {
	store, _ := openStore(t)
	if _, err := store.Load(context.Background()); !errors.Is(err, datastore.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()
	if err := store.Import(ctx, sampleRecords(), "movies.csv", "run-1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := datastore.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records after reopen, got %d", len(got))
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	store, path := openStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	if _, err := datastore.Open(context.Background(), path); !errors.Is(err, datastore.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
