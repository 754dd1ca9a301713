// Package render turns a collaboration graph into figure data: a seeded
// force-directed network and a geographic map. Figures are plain structs
// with JSON tags; drawing them is left to whatever consumes the files.
package render
