package analysis

import (
	"fmt"

	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
)

// Axis names the relevance-filter parameter a sweep varies.
type Axis string

const (
	AxisMinFilms  Axis = "min_films"
	AxisMinCollab Axis = "min_collab"
)

// ParseAxis validates an axis name.
func ParseAxis(raw string) (Axis, error) {
	switch Axis(raw) {
	case AxisMinFilms, AxisMinCollab:
		return Axis(raw), nil
	default:
		return "", fmt.Errorf("unknown sweep axis %q (want %s or %s)", raw, AxisMinFilms, AxisMinCollab)
	}
}

// SweepPoint is the graph size at one parameter value.
type SweepPoint struct {
	Value int `json:"value"`
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
	// Western and Eastern count surviving nodes per bloc verdict.
	Western int `json:"western"`
	Eastern int `json:"eastern"`
}

// Sweep recomputes the graph from scratch for each value of axis, keeping
// every other parameter from base.
func Sweep(records []movies.Record, base collab.Params, axis Axis, values []int) ([]SweepPoint, error) {
	if _, err := ParseAxis(string(axis)); err != nil {
		return nil, err
	}
	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		p := base
		switch axis {
		case AxisMinFilms:
			p.MinFilms = v
		case AxisMinCollab:
			p.MinCollab = v
		}
		res, err := collab.Compute(records, p)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%d: %w", axis, v, err)
		}
		point := SweepPoint{Value: v, Nodes: res.Graph.NodeCount(), Edges: res.Graph.EdgeCount()}
		for _, n := range res.Graph.Nodes() {
			switch n.Side {
			case movies.Western:
				point.Western++
			case movies.Eastern:
				point.Eastern++
			}
		}
		points = append(points, point)
	}
	return points, nil
}

// MaxSweepPoints bounds how many graphs one sweep may compute.
const MaxSweepPoints = 1000

// Range expands [from, to] by step into a value list. A non-positive step
// is treated as 1. Values near the int limits stop at to instead of
// wrapping.
func Range(from, to, step int) []int {
	if step <= 0 {
		step = 1
	}
	if to < from {
		return nil
	}
	out := make([]int, 0, min(RangeLen(from, to, step), MaxSweepPoints))
	for v := from; ; v += step {
		out = append(out, v)
		if uint64(to)-uint64(v) < uint64(step) {
			break
		}
	}
	return out
}

// RangeLen reports how many values Range(from, to, step) yields without
// building them.
func RangeLen(from, to, step int) uint64 {
	if step <= 0 {
		step = 1
	}
	if to < from {
		return 0
	}
	return (uint64(to)-uint64(from))/uint64(step) + 1
}
