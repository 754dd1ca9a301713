// Package datastore caches the movie dataset in a single SQLite file so
// repeated analyses can skip CSV parsing.
//
// The cache is written wholesale by Import and is read-only otherwise. The
// schema is embedded and versioned; a cache built by another version is
// rejected with ErrSchemaMismatch rather than migrated.
package datastore
