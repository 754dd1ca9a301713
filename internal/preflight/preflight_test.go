package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blocgraph/internal/datastore"
	"blocgraph/internal/movies"
	"blocgraph/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDataset_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	testsupport.WriteDataset(t, path, testsupport.ColdWarScenario())

	result := CheckDataset(context.Background(), path)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "12 movies") {
		t.Fatalf("expected movie count in detail, got: %s", result.Detail)
	}
}

func TestCheckDataset_Missing(t *testing.T) {
	result := CheckDataset(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if result.Passed || !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("expected missing dataset failure, got %+v", result)
	}
}

func TestCheckDataset_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte("title,countries\nA,['France']\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDataset(context.Background(), path)
	if result.Passed || !strings.Contains(result.Detail, "cold_war_side") {
		t.Fatalf("expected missing column failure, got %+v", result)
	}
}

func TestCheckDatasetCache_States(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "movies.db")

	if result := CheckDatasetCache(ctx, path); !result.Passed || !strings.Contains(result.Detail, "not built") {
		t.Fatalf("expected absent cache to pass, got %+v", result)
	}

	store, err := datastore.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if result := CheckDatasetCache(ctx, path); !result.Passed || !strings.Contains(result.Detail, "empty") {
		t.Fatalf("expected empty cache to pass, got %+v", result)
	}

	records := []movies.Record{movies.NewRecord("Solaris", []string{"Russia"}, movies.Eastern, 1972)}
	if err := store.Import(ctx, records, "movies.csv", "run-1"); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	result := CheckDatasetCache(ctx, path)
	if !result.Passed || !strings.Contains(result.Detail, "1 movies from movies.csv") {
		t.Fatalf("expected imported cache detail, got %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDataset(testsupport.ColdWarScenario()))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	results := RunAll(context.Background(), cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if n := Failed(results); n != 0 {
		t.Fatalf("expected all checks to pass, %d failed: %+v", n, results)
	}
	if RunAll(context.Background(), nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
