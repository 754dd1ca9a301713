// Package logging assembles structured slog loggers and formatting helpers used
// across blocgraph commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so every line of a run carries
// the run identifier and command name. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
