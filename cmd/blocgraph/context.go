package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blocgraph/internal/collab"
	"blocgraph/internal/config"
	"blocgraph/internal/datastore"
	"blocgraph/internal/logging"
	"blocgraph/internal/movies"
	"blocgraph/internal/render"
)

const (
	sourceCSV    = "csv"
	sourceSQLite = "sqlite"
)

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	runID string
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and layers explicitly set
// flags on top of it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		expanded, err := config.ExpandPath(strings.TrimSpace(c.flags.dataset))
		if err != nil {
			return fmt.Errorf("resolve dataset path: %w", err)
		}
		cfg.Paths.Dataset = expanded
	}
	if flags.Changed("min-films") {
		cfg.Filter.MinFilms = c.flags.minFilms
	}
	if flags.Changed("min-collab") {
		cfg.Filter.MinCollab = c.flags.minCollab
	}
	if flags.Changed("relevance-nb") {
		cfg.Classifier.RelevanceNB = c.flags.relevanceNB
	}
	if flags.Changed("relevance-diff") {
		cfg.Classifier.RelevanceDiff = c.flags.relevanceDiff
	}
	if flags.Changed("threshold") {
		cfg.Classifier.Threshold = c.flags.threshold
	}
	switch c.flags.source {
	case sourceCSV, sourceSQLite:
	default:
		return fmt.Errorf("unknown --source %q (want %s or %s)", c.flags.source, sourceCSV, sourceSQLite)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// bindRun tags the command context with a fresh run id and the command
// name so every log line of this invocation can be correlated.
func (c *commandContext) bindRun(cmd *cobra.Command) {
	c.runID = uuid.NewString()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, c.runID)
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	cmd.SetContext(ctx)
}

func (c *commandContext) loggerFor(ctx context.Context) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.NewFromConfig(c.config)
	})
	if c.loggerErr != nil {
		return nil, fmt.Errorf("init logger: %w", c.loggerErr)
	}
	return logging.WithContext(ctx, c.logger), nil
}

func (c *commandContext) params() collab.Params {
	cfg := c.config
	return collab.Params{
		MinFilms:  cfg.Filter.MinFilms,
		MinCollab: cfg.Filter.MinCollab,
		Classifier: collab.ClassifierParams{
			RelevanceNB:   cfg.Classifier.RelevanceNB,
			RelevanceDiff: cfg.Classifier.RelevanceDiff,
			Threshold:     cfg.Classifier.Threshold,
		},
	}
}

func (c *commandContext) renderOptions(logger *slog.Logger) render.Options {
	opts := render.DefaultOptions()
	opts.NodeScale = c.config.Render.NodeScale
	opts.Layout.Seed = c.config.Render.LayoutSeed
	opts.Layout.Iterations = c.config.Render.LayoutIterations
	opts.Layout.Width = c.config.Render.Width
	opts.Layout.Height = c.config.Render.Height
	opts.Logger = logger
	return opts
}

// loadRecords reads the dataset from the configured source.
func (c *commandContext) loadRecords(ctx context.Context, logger *slog.Logger) ([]movies.Record, error) {
	switch c.flags.source {
	case sourceSQLite:
		return c.loadCached(ctx)
	default:
		store, report, err := movies.LoadCSV(ctx, c.config.Paths.Dataset, movies.LoadOptions{Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", c.config.Paths.Dataset, err)
		}
		logger.Debug("dataset ready", logging.Int("records", report.Loaded), logging.Int("skipped", report.SkippedTotal()))
		return store.Records(), nil
	}
}

func (c *commandContext) loadCached(ctx context.Context) ([]movies.Record, error) {
	path := c.config.Paths.DatasetCache
	store, err := datastore.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open dataset cache: %w", err)
	}
	defer store.Close()

	loaded, err := store.Load(ctx)
	if errors.Is(err, datastore.ErrEmpty) {
		return nil, fmt.Errorf("dataset cache %s is empty; run `blocgraph import` first", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset cache: %w", err)
	}
	return loaded.Records(), nil
}

// compute loads the dataset and runs the collaboration pipeline.
func (c *commandContext) compute(cmd *cobra.Command) (*collab.Result, []movies.Record, *slog.Logger, error) {
	ctx := cmd.Context()
	logger, err := c.loggerFor(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	records, err := c.loadRecords(ctx, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := collab.Compute(records, c.params())
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("graph built",
		logging.Int("nodes", res.Graph.NodeCount()),
		logging.Int("edges", res.Graph.EdgeCount()),
		logging.Int("min_films", res.Params.MinFilms),
		logging.Int("min_collab", res.Params.MinCollab),
	)
	return res, records, logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
