package movies

import (
	"fmt"
	"strings"
)

// Side is a Cold War bloc label. Movies carry Western, Eastern or None;
// LackOfData is only ever produced by country classification.
type Side string

const (
	Western    Side = "Western"
	Eastern    Side = "Eastern"
	None       Side = "None"
	LackOfData Side = "Lack of data"
)

// MovieSides lists the labels a movie record may carry, in display order.
var MovieSides = []Side{Western, Eastern, None}

// CountrySides lists every classification verdict, in display order.
var CountrySides = []Side{Western, Eastern, None, LackOfData}

func (s Side) String() string { return string(s) }

// Polarized reports whether the side names a bloc.
func (s Side) Polarized() bool {
	return s == Western || s == Eastern
}

// ParseSide accepts one of the movie labels, optionally wrapped in quotes
// and surrounding whitespace. Lack of data is rejected because it is a
// verdict, not an input label.
func ParseSide(raw string) (Side, error) {
	value := strings.TrimSpace(raw)
	value = strings.Trim(value, `"'`)
	value = strings.TrimSpace(value)
	for _, side := range MovieSides {
		if strings.EqualFold(value, string(side)) {
			return side, nil
		}
	}
	if value == "" {
		return "", fmt.Errorf("%w: empty side label", ErrInvalidSide)
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, raw)
}
