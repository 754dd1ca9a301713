// Package movies holds the read-only movie record store and the ingestion
// boundary that produces it.
//
// Records carry a de-duplicated, sorted country list, one of the movie side
// labels and a release year. The CSV loader decodes the preprocessed dataset
// (serialized country lists, quoted side labels, partial dates), applies the
// historical country representation table and skips rows it cannot decode.
// Nothing downstream mutates a Store once built.
package movies
