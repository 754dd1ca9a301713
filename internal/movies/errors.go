package movies

import "errors"

var (
	// ErrInvalidSide indicates a cold_war_side value outside the movie labels.
	ErrInvalidSide = errors.New("invalid cold war side")
	// ErrInvalidCountries indicates a countries field that could not be parsed.
	ErrInvalidCountries = errors.New("invalid countries field")
	// ErrMissingColumn indicates the dataset header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)
