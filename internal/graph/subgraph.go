package graph

// BuildSubgraph materializes the spanning structure induced by a
// predecessor mapping as a new, independent Graph with the same
// directedness and weight source. For every (node, predecessor) pair
// with a predecessor, both endpoints are added and the edge is carried
// over with its weight recovered from this graph.
//
// Nodes with no predecessor (the traversal root and anything the
// traversal never reached) appear only if some other node names them
// as its predecessor. An isolated root therefore yields an empty
// subgraph; callers relying on the root being present must add it
// themselves.
func (g *Graph) BuildSubgraph(pred Predecessors) *Graph {
	sub := New(g.directed, WithWeightFunc(g.weight))
	for _, id := range g.order {
		p := pred[id]
		if p == "" {
			continue
		}
		sub.AddNode(p)
		sub.AddNode(id)
		sub.AddEdge(p, id, g.EdgeWeight(p, id))
	}
	return sub
}
