package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFilter(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Dataset) == "" && strings.TrimSpace(c.Paths.DatasetCache) == "" {
		return errors.New("paths.dataset or paths.dataset_cache must be set")
	}
	return nil
}

func (c *Config) validateFilter() error {
	return ensureNonNegativeMap(map[string]int{
		"filter.min_films":  c.Filter.MinFilms,
		"filter.min_collab": c.Filter.MinCollab,
	})
}

func (c *Config) validateClassifier() error {
	if err := ensureNonNegativeMap(map[string]int{
		"classifier.relevance_nb":   c.Classifier.RelevanceNB,
		"classifier.relevance_diff": c.Classifier.RelevanceDiff,
	}); err != nil {
		return err
	}
	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > 100 {
		return errors.New("classifier.threshold must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.NodeScale <= 0 {
		return errors.New("render.node_scale must be positive")
	}
	if c.Render.LayoutIterations <= 0 {
		return errors.New("render.layout_iterations must be positive")
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.New("render.width and render.height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensureNonNegativeMap(values map[string]int) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must be zero or greater", key)
		}
	}
	return nil
}
