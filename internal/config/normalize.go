package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("BLOCGRAPH_DATASET"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Dataset = value
	}

	var err error
	if c.Paths.Dataset, err = expandPath(strings.TrimSpace(c.Paths.Dataset)); err != nil {
		return fmt.Errorf("paths.dataset: %w", err)
	}
	if c.Paths.DatasetCache, err = expandPath(strings.TrimSpace(c.Paths.DatasetCache)); err != nil {
		return fmt.Errorf("paths.dataset_cache: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() {
	if c.Render.NodeScale == 0 {
		c.Render.NodeScale = defaultNodeScale
	}
	if c.Render.LayoutIterations == 0 {
		c.Render.LayoutIterations = defaultLayoutIterations
	}
	if c.Render.Width == 0 {
		c.Render.Width = defaultWidth
	}
	if c.Render.Height == 0 {
		c.Render.Height = defaultHeight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
