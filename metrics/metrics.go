// Package metrics exposes Prometheus instrumentation for the floodmst service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "floodmst"

// Compute outcome labels.
const (
	StatusOK           = "ok"
	StatusInvalid      = "invalid"
	StatusDisconnected = "disconnected"
	StatusError        = "error"
)

// Registry holds all metrics for the service on its own prometheus.Registry,
// so tests and multiple servers in one process do not collide.
type Registry struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Pipeline metrics
	ComputeTotal    *prometheus.CounterVec
	ComputeDuration prometheus.Histogram
	GraphEdges      prometheus.Gauge
	MSTWeight       prometheus.Gauge
	Clusters        prometheus.Gauge
	Components      prometheus.Gauge
	Nodes           prometheus.Gauge
}

// NewRegistry creates a Registry with Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initPipelineMetrics()

	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

func (r *Registry) initPipelineMetrics() {
	r.ComputeTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compute_total",
			Help:      "Total number of clustering computations by outcome",
		},
		[]string{"status"},
	)

	r.ComputeDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Clustering pipeline duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_graph_edges",
		Help:      "Edge count of the last computed grid graph",
	})
	r.MSTWeight = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_mst_weight",
		Help:      "Total weight of the last computed minimum spanning tree",
	})
	r.Clusters = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_clusters",
		Help:      "Number of clusters in the last result",
	})
	r.Components = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_components",
		Help:      "Connected components of the last grid graph",
	})
	r.Nodes = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "nodes",
		Help:      "Number of grid nodes served",
	})
}

// ObserveRequest records one HTTP request.
func (r *Registry) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ComputeResult is the subset of a pipeline result the registry records.
type ComputeResult struct {
	Edges       int
	TotalWeight float64
	Clusters    int
	Components  int
}

// ObserveCompute records a finished computation. res is ignored unless
// status is StatusOK.
func (r *Registry) ObserveCompute(status string, elapsed time.Duration, res ComputeResult) {
	r.ComputeTotal.WithLabelValues(status).Inc()
	r.ComputeDuration.Observe(elapsed.Seconds())
	if status != StatusOK {
		return
	}
	r.GraphEdges.Set(float64(res.Edges))
	r.MSTWeight.Set(res.TotalWeight)
	r.Clusters.Set(float64(res.Clusters))
	r.Components.Set(float64(res.Components))
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns the /metrics HTTP handler.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
