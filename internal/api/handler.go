package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samkhatri/graphpath/internal/dot"
	"github.com/samkhatri/graphpath/internal/graph"
	"github.com/samkhatri/graphpath/internal/metrics"
	"github.com/samkhatri/graphpath/internal/shortest"
	"github.com/samkhatri/graphpath/internal/traverse"
)

const maxGraphBytes = 1 << 20 // uploaded DOT documents are capped at 1 MiB

// Handler holds graphs uploaded through the API, keyed by id. Graphs
// are immutable once stored, so queries only take the read lock.
type Handler struct {
	mu     sync.RWMutex
	graphs map[string]*graph.Graph
	seed   int64
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes. seed feeds the
// weight source used for uploaded edges without a label.
func New(seed int64) http.Handler {
	h := &Handler{graphs: make(map[string]*graph.Graph), seed: seed, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/graphs", h.createGraph)
	h.mux.HandleFunc("GET /v1/graphs/{id}", h.renderGraph)
	h.mux.HandleFunc("POST /v1/graphs/{id}/shortest-path", h.shortestPath)
	h.mux.HandleFunc("POST /v1/graphs/{id}/traverse", h.traverseGraph)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/graphs — upload a DOT document, get back a graph id.
func (h *Handler) createGraph(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxGraphBytes)
	opts := []dot.Option{dot.WithWeightFunc(graph.SeededWeightFunc(h.seed))}
	if r.URL.Query().Get("directed") == "true" {
		opts = append(opts, dot.Directed())
	}
	g, err := dot.Read(body, opts...)
	if err != nil {
		metrics.GraphLoadErrors.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.GraphsLoaded.Inc()

	id := uuid.New().String()
	h.mu.Lock()
	h.graphs[id] = g
	metrics.GraphsHeld.Set(float64(len(h.graphs)))
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, graphCreatedResponse{
		ID:       id,
		Directed: g.Directed(),
		Nodes:    g.NodeCount(),
		Edges:    g.EdgeCount(),
	})
}

// GET /v1/graphs/{id} — render the stored graph back as DOT.
func (h *Handler) renderGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := h.graph(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "graph not found")
		return
	}
	var buf bytes.Buffer
	if err := dot.Write(&buf, g); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type shortestPathRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"` // optional: early-exit target
}

// POST /v1/graphs/{id}/shortest-path — Dijkstra from a source node.
func (h *Handler) shortestPath(w http.ResponseWriter, r *http.Request) {
	g, ok := h.graph(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "graph not found")
		return
	}
	var req shortestPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if !g.HasNode(req.Source) {
		metrics.ShortestPathQueries.WithLabelValues("bad_source").Inc()
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("source node %q not present", req.Source))
		return
	}

	var dist shortest.Distances
	var pred graph.Predecessors
	if req.Destination != "" {
		dist, pred = shortest.DijkstraTo(g, req.Source, req.Destination)
	} else {
		dist, pred = shortest.Dijkstra(g, req.Source)
	}

	resp := newShortestPathResponse(g, req.Source, dist)
	if req.Destination != "" && dist.Reachable(req.Destination) {
		resp.Path = shortest.ReconstructPath(pred, req.Destination)
		cost := dist[req.Destination]
		resp.PathCost = &cost
	}
	metrics.ShortestPathQueries.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

type traverseRequest struct {
	Algorithm string `json:"algorithm"` // bfs | dfs | dfs-iterative
	Source    string `json:"source"`
}

// POST /v1/graphs/{id}/traverse — spanning tree of a traversal.
func (h *Handler) traverseGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := h.graph(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "graph not found")
		return
	}
	var req traverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if !g.HasNode(req.Source) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("source node %q not present", req.Source))
		return
	}
	pred := traverse.Run(req.Algorithm, g, req.Source)
	if pred == nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown algorithm %q", req.Algorithm))
		return
	}
	metrics.TraversalQueries.WithLabelValues(req.Algorithm).Inc()

	tree := g.BuildSubgraph(pred)
	writeJSON(w, http.StatusOK, newTraverseResponse(req.Algorithm, req.Source, tree))
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) graph(id string) (*graph.Graph, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	g, ok := h.graphs[id]
	return g, ok
}
