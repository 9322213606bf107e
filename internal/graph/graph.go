package graph

import "math"

// Graph holds nodes keyed by identifier plus an ordered edge list.
// Directedness is fixed at construction; nodes and edges may be added
// at any time. A Graph is exclusively owned by one logical caller —
// concurrent mutation and traversal need external synchronization.
type Graph struct {
	directed bool
	nodes    map[string]*Node // id → Node
	order    []string         // ids in insertion order
	edges    []Edge           // insertion order, scanned for weight lookup
	weight   WeightFunc
}

// Node is a vertex with a unique identifier and an ordered neighbor list.
type Node struct {
	id        string
	neighbors []string // ids in edge-insertion order
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Neighbors returns the node's neighbor ids in edge-insertion order.
// The returned slice is a copy.
func (n *Node) Neighbors() []string {
	out := make([]string, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

// Edge is a weighted connection, oriented as given at insertion.
// For undirected graphs the orientation is storage only; both endpoints
// are linked as neighbors.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Predecessors maps a node id to the id it was reached from during a
// traversal or shortest-path search. The empty string means "none"
// (roots and unvisited nodes).
type Predecessors map[string]string

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithWeightFunc replaces the default weight source used for edges
// added without an explicit weight.
func WithWeightFunc(fn WeightFunc) Option {
	return func(g *Graph) { g.weight = fn }
}

// New allocates an empty Graph with the given directedness.
func New(directed bool, opts ...Option) *Graph {
	g := &Graph{
		directed: directed,
		nodes:    make(map[string]*Node),
		weight:   defaultWeightFunc(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddNode inserts a node with the given identifier if absent.
// Adding an existing identifier is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{id: id}
	g.order = append(g.order, id)
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns a node by id (nil if not found).
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// EdgeExists reports whether an edge connects u and v. Undirected
// graphs treat (u,v) and (v,u) as the same edge.
func (g *Graph) EdgeExists(u, v string) bool {
	for _, e := range g.edges {
		if e.From == u && e.To == v {
			return true
		}
		if !g.directed && e.From == v && e.To == u {
			return true
		}
	}
	return false
}

// AddEdge appends an edge from u to v with the given weight. Both
// endpoints must already exist and no edge may connect them yet;
// otherwise the call is a silent no-op. Callers verify outcomes via
// EdgeExists/EdgeWeight, not via failure signals.
func (g *Graph) AddEdge(u, v string, weight float64) {
	g.addEdge(u, v, weight)
}

// AddRandomEdge is AddEdge with the weight drawn from the graph's
// weight source.
func (g *Graph) AddRandomEdge(u, v string) {
	g.addEdge(u, v, g.weight())
}

func (g *Graph) addEdge(u, v string, weight float64) {
	un, ok := g.nodes[u]
	if !ok {
		return
	}
	vn, ok := g.nodes[v]
	if !ok {
		return
	}
	if g.EdgeExists(u, v) {
		return
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	un.neighbors = append(un.neighbors, v)
	if !g.directed {
		vn.neighbors = append(vn.neighbors, u)
	}
}

// EdgeWeight returns the weight of the edge connecting u and v, or
// +Inf if no such edge exists. Linear scan over the edge list — O(E),
// fine for the target graph sizes; callers needing repeated lookups
// should not assume better.
func (g *Graph) EdgeWeight(u, v string) float64 {
	for _, e := range g.edges {
		if e.From == u && e.To == v {
			return e.Weight
		}
		if !g.directed && e.From == v && e.To == u {
			return e.Weight
		}
	}
	return math.Inf(1)
}

// Neighbors returns the neighbor ids of a node in edge-insertion
// order (nil for unknown nodes).
func (g *Graph) Neighbors(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.neighbors
}

// Nodes returns all node ids in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns a copy of the edge records in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of stored edge records.
func (g *Graph) EdgeCount() int { return len(g.edges) }
