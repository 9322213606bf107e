// Package runner is the batch driver: it reads each named graph file,
// runs Dijkstra from the configured source node, and writes the
// resulting shortest-path tree back to disk next to the input.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/samkhatri/graphpath/internal/config"
	"github.com/samkhatri/graphpath/internal/dot"
	"github.com/samkhatri/graphpath/internal/graph"
	"github.com/samkhatri/graphpath/internal/metrics"
	"github.com/samkhatri/graphpath/internal/shortest"
)

// Result is the outcome of processing a single graph file.
type Result struct {
	Name         string
	RunID        string
	Skipped      bool   // source node absent in the input
	Message      string // set when Skipped
	Err          error
	Graph        *graph.Graph
	Distances    shortest.Distances
	Predecessors graph.Predecessors
	OutputPath   string
}

// Runner processes graph files according to a batch configuration.
// Files are handed to a fixed-size worker pool; each worker owns its
// graph exclusively, so the single-caller contract of graph.Graph
// holds throughout.
type Runner struct {
	conf config.BatchConf
}

// New creates a Runner for the given batch configuration.
func New(conf config.BatchConf) *Runner {
	return &Runner{conf: conf}
}

// Run processes every configured graph file and returns one Result per
// name, in configuration order. A missing source node or an unreadable
// file is reported in its Result, never as a crash; the other files
// still run because each file is independent.
func (r *Runner) Run(ctx context.Context) []*Result {
	start := time.Now()
	runID := uuid.New().String()
	workers := r.conf.Workers
	if workers < 1 {
		// Validate guards configured runs, but Run accepts a BatchConf
		// directly; a workerless pool would block the feed forever.
		workers = 1
	}
	slog.Info("batch run starting", "run_id", runID, "graphs", len(r.conf.Graphs), "workers", workers)

	results := runPool(ctx, workers, r.conf.Graphs, func(ctx context.Context, name string) *Result {
		return r.processFile(runID, name)
	})

	// Jobs never fed because ctx was cancelled come back as nil slots;
	// callers get a Result for every configured name regardless.
	for i, res := range results {
		if res == nil {
			results[i] = &Result{
				Name:  r.conf.Graphs[i],
				RunID: runID,
				Err:   fmt.Errorf("graph %s: %w", r.conf.Graphs[i], ctx.Err()),
			}
		}
	}

	metrics.BatchRunDuration.Observe(float64(time.Since(start).Milliseconds()))
	slog.Info("batch run finished", "run_id", runID, "duration_ms", time.Since(start).Milliseconds())
	return results
}

func (r *Runner) processFile(runID, name string) *Result {
	res := &Result{Name: name, RunID: runID}
	path := filepath.Join(r.conf.GraphDir, name+".dot")

	opts := []dot.Option{dot.WithWeightFunc(graph.SeededWeightFunc(r.conf.Seed))}
	if r.conf.Directed {
		opts = append(opts, dot.Directed())
	}
	g, err := dot.ReadFile(path, opts...)
	if err != nil {
		metrics.GraphLoadErrors.Inc()
		metrics.BatchFilesProcessed.WithLabelValues("load_error").Inc()
		res.Err = fmt.Errorf("graph %s: %w", name, err)
		slog.Error("graph load failed", "run_id", runID, "graph", name, "err", err)
		return res
	}
	metrics.GraphsLoaded.Inc()
	res.Graph = g

	if !g.HasNode(r.conf.SourceNode) {
		metrics.BatchFilesProcessed.WithLabelValues("skipped").Inc()
		res.Skipped = true
		res.Message = fmt.Sprintf("graph %s: source node %q not present, skipping", name, r.conf.SourceNode)
		slog.Warn("source node absent", "run_id", runID, "graph", name, "source", r.conf.SourceNode)
		return res
	}

	res.Distances, res.Predecessors = shortest.Dijkstra(g, r.conf.SourceNode)

	tree := g.BuildSubgraph(res.Predecessors)
	out := filepath.Join(r.conf.GraphDir, name+".out.dot")
	if err := dot.WriteFile(out, tree); err != nil {
		metrics.BatchFilesProcessed.WithLabelValues("write_error").Inc()
		res.Err = fmt.Errorf("graph %s: %w", name, err)
		slog.Error("output write failed", "run_id", runID, "graph", name, "err", err)
		return res
	}
	res.OutputPath = out

	metrics.BatchFilesProcessed.WithLabelValues("ok").Inc()
	slog.Info("graph processed", "run_id", runID, "graph", name,
		"nodes", g.NodeCount(), "edges", g.EdgeCount(), "output", out)
	return res
}
