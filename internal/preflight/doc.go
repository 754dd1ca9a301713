// Package preflight provides readiness checks for the dataset, the optional
// SQLite cache, and the directories blocgraph writes to.
//
// The CLI "blocgraph check" command runs RunAll and prints one status line
// per result. Checks never modify the dataset; the cache check only opens an
// existing cache file.
package preflight
