package render

// LatLon is a geographic coordinate in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinates maps country names to marker positions. It is supplied to the
// map renderer as static data.
type Coordinates map[string]LatLon

// Lookup returns the coordinate for a country.
func (c Coordinates) Lookup(name string) (LatLon, bool) {
	ll, ok := c[name]
	return ll, ok
}
