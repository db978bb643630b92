package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FilesScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comptree_files_scanned_total",
		Help: "Total number of component files discovered by the collector.",
	})

	IncludeWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comptree_include_warnings_total",
		Help: "Total number of include directories skipped because they were missing or not directories.",
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comptree_graph_nodes_total",
		Help: "Total number of components defined in the usage graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comptree_graph_edges_total",
		Help: "Total number of usage edges in the usage graph.",
	})

	GraphRoots = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comptree_graph_roots_total",
		Help: "Number of root components rendered in the outline.",
	})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "comptree_stage_seconds",
		Help:    "Time spent in each pipeline stage.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
)

// WriteTextfile dumps the default registry in the text exposition format so
// one-shot runs can be collected by a node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
