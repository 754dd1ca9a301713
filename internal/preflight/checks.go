package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"blocgraph/internal/datastore"
	"blocgraph/internal/movies"
)

// CheckDataset verifies that the movie CSV parses and reports how many rows
// the loader would keep.
func CheckDataset(ctx context.Context, path string) Result {
	const name = "Dataset"

	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	store, report, err := movies.LoadCSV(ctx, path, movies.LoadOptions{})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if store.Len() == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no usable rows out of %d)", path, report.Rows)}
	}
	detail := fmt.Sprintf("%s (%d movies", path, store.Len())
	if skipped := report.SkippedTotal(); skipped > 0 {
		detail += fmt.Sprintf(", %d rows skipped", skipped)
	}
	return Result{Name: name, Passed: true, Detail: detail + ")"}
}

// CheckDatasetCache reports on the SQLite cache. A missing cache passes
// since CSV input does not need it.
func CheckDatasetCache(ctx context.Context, path string) Result {
	const name = "Dataset cache"

	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Passed: true, Detail: "not configured"}
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not built; run `blocgraph import`)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	store, err := datastore.Open(ctx, path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()

	info, ok, err := store.LastImport(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if !ok {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (empty; run `blocgraph import`)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d movies from %s, imported %s)",
		path, info.RecordCount, info.Source, info.ImportedAt.Format("2006-01-02 15:04"))}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
