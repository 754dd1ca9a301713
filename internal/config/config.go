package config

import "path/filepath"

// Paths contains dataset locations and output directories.
type Paths struct {
	Dataset      string `toml:"dataset"`
	DatasetCache string `toml:"dataset_cache"`
	OutputDir    string `toml:"output_dir"`
	LogDir       string `toml:"log_dir"`
}

// Filter contains the graph relevance thresholds. Both are exclusive lower
// bounds: a country or pair survives only when its count is strictly greater.
type Filter struct {
	MinFilms  int `toml:"min_films"`
	MinCollab int `toml:"min_collab"`
}

// Classifier contains the Cold War side verdict parameters.
type Classifier struct {
	// RelevanceNB is the minimum number of films (any side) below which a
	// country is reported as lacking data.
	RelevanceNB int `toml:"relevance_nb"`
	// RelevanceDiff is the minimum number of Western plus Eastern films needed
	// before a polarized side can be assigned.
	RelevanceDiff int `toml:"relevance_diff"`
	// Threshold is the minimum percentage-point gap between Western and
	// Eastern counts. Default: 19
	Threshold float64 `toml:"threshold"`
}

// Render contains figure layout settings for the renderer boundary.
type Render struct {
	NodeScale        float64 `toml:"node_scale"`
	LayoutSeed       int64   `toml:"layout_seed"`
	LayoutIterations int     `toml:"layout_iterations"`
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for blocgraph.
//
// Configuration sections by subsystem:
//   - Paths: input dataset, optional SQLite cache, output and log directories
//   - Filter: graph relevance thresholds (min films, min collaborations)
//   - Classifier: side verdict relevance gates and percentage threshold
//   - Render: figure sizing and force-directed layout settings
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Filter     Filter     `toml:"filter"`
	Classifier Classifier `toml:"classifier"`
	Render     Render     `toml:"render"`
	Logging    Logging    `toml:"logging"`
}

// OutputPath joins name onto the configured output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.Paths.OutputDir, name)
}
