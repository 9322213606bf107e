package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GraphsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphpath_graphs_loaded_total",
		Help: "Total number of graph files parsed successfully.",
	})

	GraphLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphpath_graph_load_errors_total",
		Help: "Total number of graph files that failed to parse.",
	})

	BatchFilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphpath_batch_files_processed_total",
		Help: "Total number of batch files processed, labelled by outcome.",
	}, []string{"status"})

	BatchRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphpath_batch_run_duration_ms",
		Help:    "End-to-end batch run latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	TraversalQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphpath_traversal_queries_total",
		Help: "Total number of traversal queries served, labelled by algorithm.",
	}, []string{"algorithm"})

	ShortestPathQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphpath_shortest_path_queries_total",
		Help: "Total number of shortest-path queries served, labelled by status.",
	}, []string{"status"})

	GraphsHeld = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphpath_graphs_held",
		Help: "Number of graphs currently held by the query API.",
	})
)
