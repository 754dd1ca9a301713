// Package collab builds the country co-production graph and classifies each
// country into a Cold War bloc.
//
// The pipeline is Count, Filter, TallySides/Classify and Build, wrapped by
// Compute. The relevance filter and the classifier are independently
// parameterized passes over the same records: the classifier always tallies
// the unfiltered records. Every function is pure and results are rebuilt for
// each parameter set.
package collab
