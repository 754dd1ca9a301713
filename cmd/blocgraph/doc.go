// Package main hosts the blocgraph CLI entrypoint and command graph.
//
// Each command loads the movie dataset (CSV or the SQLite cache), runs the
// collaboration pipeline with the configured relevance and classifier
// parameters, and prints tables, JSON, or figure files. Configuration is
// resolved once per invocation; explicitly set flags override it.
package main
