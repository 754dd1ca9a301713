package config

const (
	defaultDataset          = "data/preprocessed/preprocessed_movies.csv"
	defaultDatasetCache     = "~/.cache/blocgraph/movies.db"
	defaultOutputDir        = "~/.local/share/blocgraph/figures"
	defaultLogDir           = "~/.local/share/blocgraph/logs"
	defaultMinFilms         = 0
	defaultMinCollab        = 0
	defaultRelevanceNB      = 10
	defaultRelevanceDiff    = 10
	defaultThreshold        = 19.0
	defaultNodeScale        = 0.5
	defaultLayoutSeed       = 42
	defaultLayoutIterations = 100
	defaultWidth            = 1000.0
	defaultHeight           = 800.0
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Dataset:      defaultDataset,
			DatasetCache: defaultDatasetCache,
			OutputDir:    defaultOutputDir,
			LogDir:       defaultLogDir,
		},
		Filter: Filter{
			MinFilms:  defaultMinFilms,
			MinCollab: defaultMinCollab,
		},
		Classifier: Classifier{
			RelevanceNB:   defaultRelevanceNB,
			RelevanceDiff: defaultRelevanceDiff,
			Threshold:     defaultThreshold,
		},
		Render: Render{
			NodeScale:        defaultNodeScale,
			LayoutSeed:       defaultLayoutSeed,
			LayoutIterations: defaultLayoutIterations,
			Width:            defaultWidth,
			Height:           defaultHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
