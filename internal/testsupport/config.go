package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"blocgraph/internal/config"
)

// ConfigOption adjusts a config produced by NewConfig.
type ConfigOption func(testing.TB, *config.Config)

// NewConfig returns the default config with every path moved under a fresh
// temp directory, then applies opts in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths = config.Paths{
		Dataset:      filepath.Join(root, "data", "movies.csv"),
		DatasetCache: filepath.Join(root, "cache", "movies.db"),
		OutputDir:    filepath.Join(root, "figures"),
		LogDir:       filepath.Join(root, "logs"),
	}
	for _, opt := range opts {
		opt(t, &cfg)
	}
	return &cfg
}

// WithDataset writes rows to the configured dataset path.
func WithDataset(rows []DatasetRow) ConfigOption {
	return func(t testing.TB, cfg *config.Config) {
		WriteDataset(t, cfg.Paths.Dataset, rows)
	}
}

// WithFilter overrides the relevance thresholds.
func WithFilter(minFilms, minCollab int) ConfigOption {
	return func(_ testing.TB, cfg *config.Config) {
		cfg.Filter = config.Filter{MinFilms: minFilms, MinCollab: minCollab}
	}
}

// WithJSONLogs switches log output to JSON lines.
func WithJSONLogs() ConfigOption {
	return func(_ testing.TB, cfg *config.Config) {
		cfg.Logging.Format = "json"
	}
}

// WriteConfig encodes cfg as TOML at path, creating parent directories.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
