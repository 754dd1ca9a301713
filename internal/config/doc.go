// Package config loads, normalizes, and validates blocgraph configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the BLOCGRAPH_DATASET environment
// fallback. The Config type centralizes the dataset locations, the two
// independently parameterized filtering passes (graph relevance filter and
// side classifier gates), and renderer settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
