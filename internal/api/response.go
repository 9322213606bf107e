package api

import (
	"encoding/json"
	"net/http"

	"github.com/samkhatri/graphpath/internal/graph"
	"github.com/samkhatri/graphpath/internal/shortest"
)

// graphCreatedResponse acknowledges an uploaded graph.
type graphCreatedResponse struct {
	ID       string `json:"id"`
	Directed bool   `json:"directed"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
}

// shortestPathResponse splits the distance table into finite entries
// and unreachable nodes, since +Inf does not survive JSON encoding.
// Path fields are present only when a reachable destination was
// queried.
type shortestPathResponse struct {
	Source      string             `json:"source"`
	Distances   map[string]float64 `json:"distances"`
	Unreachable []string           `json:"unreachable"`
	Path        []string           `json:"path,omitempty"`
	PathCost    *float64           `json:"path_cost,omitempty"`
}

// newShortestPathResponse shapes a distance map for the wire, walking
// nodes in insertion order.
func newShortestPathResponse(g *graph.Graph, source string, dist shortest.Distances) shortestPathResponse {
	resp := shortestPathResponse{
		Source:    source,
		Distances: make(map[string]float64, len(dist)),
	}
	for _, id := range g.Nodes() {
		if dist.Reachable(id) {
			resp.Distances[id] = dist[id]
		} else {
			resp.Unreachable = append(resp.Unreachable, id)
		}
	}
	return resp
}

// treeEdge is one spanning-tree edge on the wire.
type treeEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// traverseResponse carries the spanning tree induced by a traversal.
type traverseResponse struct {
	Algorithm string     `json:"algorithm"`
	Source    string     `json:"source"`
	Edges     []treeEdge `json:"edges"`
}

func newTraverseResponse(algorithm, source string, tree *graph.Graph) traverseResponse {
	resp := traverseResponse{
		Algorithm: algorithm,
		Source:    source,
		Edges:     make([]treeEdge, 0, tree.EdgeCount()),
	}
	for _, e := range tree.Edges() {
		resp.Edges = append(resp.Edges, treeEdge{From: e.From, To: e.To, Weight: e.Weight})
	}
	return resp
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
