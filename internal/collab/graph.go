package collab

import (
	"slices"

	"blocgraph/internal/movies"
)

// Node is one surviving country.
type Node struct {
	Name      string
	Side      movies.Side
	FilmCount int
	// Size is the undamped scaled size, sqrt(FilmCount).
	Size float64
}

// Edge is one surviving co-production pair.
type Edge struct {
	Pair
	Weight int
}

// Tone describes how the sides of an edge's endpoints relate.
type Tone int

const (
	// Mixed covers differing sides and shared non-bloc sides.
	Mixed Tone = iota
	SameWestern
	SameEastern
)

func (t Tone) String() string {
	switch t {
	case SameWestern:
		return "same_western"
	case SameEastern:
		return "same_eastern"
	default:
		return "mixed"
	}
}

// Graph is an immutable, undirected, simple collaboration graph. Nodes are
// ordered by name and edges by (A, B), so equal inputs build equal graphs.
type Graph struct {
	nodes     []Node
	nodeIndex map[string]int
	edges     []Edge
	edgeIndex map[Pair]int
	adjacency map[string][]string
}

// Build assembles the graph from filtered counts and side verdicts. A
// surviving country without a verdict is marked Lack of data. Pairs whose
// endpoints are not both present are ignored.
func Build(filtered Filtered, sides map[string]movies.Side) *Graph {
	g := &Graph{
		nodeIndex: make(map[string]int, len(filtered.Films)),
		edgeIndex: make(map[Pair]int, len(filtered.Collaborations)),
		adjacency: make(map[string][]string, len(filtered.Films)),
	}
	for _, name := range filtered.Countries() {
		side, ok := sides[name]
		if !ok {
			side = movies.LackOfData
		}
		count := filtered.Films[name]
		size, ok := filtered.Sizes[name]
		if !ok {
			size = ScaledSize(count)
		}
		g.nodeIndex[name] = len(g.nodes)
		g.nodes = append(g.nodes, Node{Name: name, Side: side, FilmCount: count, Size: size})
	}
	for _, pair := range filtered.Pairs() {
		_, okA := g.nodeIndex[pair.A]
		_, okB := g.nodeIndex[pair.B]
		if !okA || !okB || pair.A == pair.B {
			continue
		}
		g.edgeIndex[pair] = len(g.edges)
		g.edges = append(g.edges, Edge{Pair: pair, Weight: filtered.Collaborations[pair]})
		g.adjacency[pair.A] = append(g.adjacency[pair.A], pair.B)
		g.adjacency[pair.B] = append(g.adjacency[pair.B], pair.A)
	}
	for name := range g.adjacency {
		slices.Sort(g.adjacency[name])
	}
	return g
}

// Nodes returns a copy of the nodes in name order.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.nodes)
}

// Edges returns a copy of the edges in pair order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node looks a country up by name.
func (g *Graph) Node(name string) (Node, bool) {
	idx, ok := g.nodeIndex[name]
	if !ok {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Edge looks a pair up in either endpoint order.
func (g *Graph) Edge(a, b string) (Edge, bool) {
	idx, ok := g.edgeIndex[NewPair(a, b)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[idx], true
}

// Neighbors returns the sorted names adjacent to name.
func (g *Graph) Neighbors(name string) []string {
	return slices.Clone(g.adjacency[name])
}

// EndpointSides returns the verdicts of the edge's A and B endpoints.
func (g *Graph) EndpointSides(e Edge) (movies.Side, movies.Side) {
	return g.sideOf(e.A), g.sideOf(e.B)
}

// Tone reports whether both endpoints share a bloc.
func (g *Graph) Tone(e Edge) Tone {
	a, b := g.EndpointSides(e)
	if a != b {
		return Mixed
	}
	switch a {
	case movies.Western:
		return SameWestern
	case movies.Eastern:
		return SameEastern
	default:
		return Mixed
	}
}

// MaxWeight returns the largest edge weight; false when there are no edges.
func (g *Graph) MaxWeight() (int, bool) {
	if len(g.edges) == 0 {
		return 0, false
	}
	maxWeight := g.edges[0].Weight
	for _, e := range g.edges[1:] {
		maxWeight = max(maxWeight, e.Weight)
	}
	return maxWeight, true
}

// Equal reports whether both graphs hold the same nodes, verdicts, sizes,
// edges and weights.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	return slices.Equal(g.nodes, other.nodes) && slices.Equal(g.edges, other.edges)
}

func (g *Graph) sideOf(name string) movies.Side {
	if n, ok := g.Node(name); ok {
		return n.Side
	}
	return movies.LackOfData
}
