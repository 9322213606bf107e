// Package shortest implements single-source shortest paths (Dijkstra)
// and path reconstruction over a graph.Graph. Edge weights must be
// non-negative; this is not validated.
package shortest

import (
	"container/heap"
	"math"

	"github.com/samkhatri/graphpath/internal/graph"
)

// Distances maps a node id to its minimum known distance from the
// source. Unreached nodes carry +Inf.
type Distances map[string]float64

// Reachable reports whether id has a finite recorded distance. This is
// the supported way to tell unreached nodes apart; ReconstructPath
// alone cannot (an unreached destination still yields a one-element
// path).
func (d Distances) Reachable(id string) bool {
	dist, ok := d[id]
	return ok && !math.IsInf(dist, 1)
}

// Dijkstra computes minimum distances and predecessors from source
// over all nodes present at call time.
func Dijkstra(g *graph.Graph, source string) (Distances, graph.Predecessors) {
	return run(g, source, "")
}

// DijkstraTo is Dijkstra with early termination: the search stops as
// soon as dest is popped with its final distance. Entries for nodes
// not yet finalized at that point are left at their current,
// possibly non-final values.
func DijkstraTo(g *graph.Graph, source, dest string) (Distances, graph.Predecessors) {
	return run(g, source, dest)
}

func run(g *graph.Graph, source, dest string) (Distances, graph.Predecessors) {
	dist := make(Distances, g.NodeCount())
	pred := make(graph.Predecessors, g.NodeCount())
	for _, id := range g.Nodes() {
		dist[id] = math.Inf(1)
		pred[id] = ""
	}
	if !g.HasNode(source) {
		return dist, pred
	}
	dist[source] = 0

	pq := &queue{{id: source, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(entry)
		if dest != "" && item.id == dest {
			break
		}
		// A stale entry (node re-pushed with a smaller distance and
		// already finalized) relaxes nothing: no candidate through it
		// beats the recorded distances.
		for _, v := range g.Neighbors(item.id) {
			candidate := dist[item.id] + g.EdgeWeight(item.id, v)
			if candidate < dist[v] {
				dist[v] = candidate
				pred[v] = item.id
				heap.Push(pq, entry{id: v, dist: candidate})
			}
		}
	}
	return dist, pred
}

// ReconstructPath walks predecessor links backward from dest until the
// predecessor is "none", then reverses the collected ids. The guard on
// the first collected element is kept from the original contract even
// though the walk starts at dest and so cannot trip it; callers check
// reachability via Distances.Reachable, not via this function.
func ReconstructPath(pred graph.Predecessors, dest string) []string {
	var path []string
	for u := dest; u != ""; u = pred[u] {
		path = append(path, u)
	}
	if len(path) == 0 || path[0] != dest {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// entry is a heap element: a node with its tentative distance at push
// time. Nodes may appear multiple times; later pops with worse
// distances relax nothing.
type entry struct {
	id   string
	dist float64
}

type queue []entry

func (q queue) Len() int            { return len(q) }
func (q queue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) { *q = append(*q, x.(entry)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
