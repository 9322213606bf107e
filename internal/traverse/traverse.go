// Package traverse implements breadth-first and depth-first walks over
// a graph.Graph. Each traversal starts from a source node and returns
// a predecessor mapping covering every node present at call time;
// nodes the walk never reaches keep the empty ("none") predecessor.
// The mapping feeds graph.BuildSubgraph to produce the spanning tree.
package traverse

import "github.com/samkhatri/graphpath/internal/graph"

// Algorithm names accepted by Run.
const (
	AlgoBFS          = "bfs"
	AlgoDFS          = "dfs"
	AlgoDFSIterative = "dfs-iterative"
)

// Run dispatches by algorithm name. Unknown names return nil.
func Run(algorithm string, g *graph.Graph, source string) graph.Predecessors {
	switch algorithm {
	case AlgoBFS:
		return BFS(g, source)
	case AlgoDFS:
		return DFS(g, source)
	case AlgoDFSIterative:
		return DFSIterative(g, source)
	}
	return nil
}

// BFS walks the graph breadth-first from source. Neighbors are visited
// in stored (edge-insertion) order, so the predecessor map is the BFS
// spanning tree rooted at source.
func BFS(g *graph.Graph, source string) graph.Predecessors {
	pred := newPredecessors(g)
	if !g.HasNode(source) {
		return pred
	}
	visited := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			pred[v] = u
			queue = append(queue, v)
		}
	}
	return pred
}

// dfsFrame tracks how far into a node's neighbor list the walk has
// advanced, so the explicit stack reproduces recursive preorder.
type dfsFrame struct {
	id   string
	next int
}

// DFS walks the graph depth-first from source in recursive preorder:
// a node is marked visited on entry, then each unvisited neighbor is
// descended into in stored order with the current node recorded as its
// predecessor. The recursion is carried on an explicit frame stack so
// the walk depth is bounded by heap, not goroutine stack, while visit
// order and predecessor assignment stay identical to the naive
// recursive form.
func DFS(g *graph.Graph, source string) graph.Predecessors {
	pred := newPredecessors(g)
	if !g.HasNode(source) {
		return pred
	}
	visited := map[string]bool{source: true}
	stack := []dfsFrame{{id: source}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.Neighbors(top.id)
		if top.next >= len(nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := nbrs[top.next]
		top.next++
		if visited[v] {
			continue
		}
		visited[v] = true
		pred[v] = top.id
		stack = append(stack, dfsFrame{id: v})
	}
	return pred
}

// DFSIterative walks the graph with the naive pop/push stack scheme:
// pop a node, visit it if unvisited, then push its unvisited neighbors
// in reverse stored order so the first neighbor is processed first.
//
// The predecessor is written at push time. A node sitting on the stack
// can be pushed again from a different parent before it is popped, in
// which case the later push overwrites the recorded predecessor. That
// is the behavior of this scheme and is kept as is; DFS above gives
// the recursive assignment.
func DFSIterative(g *graph.Graph, source string) graph.Predecessors {
	pred := newPredecessors(g)
	if !g.HasNode(source) {
		return pred
	}
	visited := make(map[string]bool)
	stack := []string{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		nbrs := g.Neighbors(u)
		for i := len(nbrs) - 1; i >= 0; i-- {
			v := nbrs[i]
			if visited[v] {
				continue
			}
			pred[v] = u
			stack = append(stack, v)
		}
	}
	return pred
}

// newPredecessors pre-populates the "none" predecessor for every node
// currently in the graph.
func newPredecessors(g *graph.Graph) graph.Predecessors {
	pred := make(graph.Predecessors, g.NodeCount())
	for _, id := range g.Nodes() {
		pred[id] = ""
	}
	return pred
}
