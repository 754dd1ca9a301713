// Package analysis provides the descriptive statistics reported alongside
// the collaboration graph: per-country side tallies, the overall side
// distribution, yearly counts, structural graph metrics and parameter
// sweeps.
package analysis
