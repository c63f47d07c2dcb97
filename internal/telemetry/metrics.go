package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the CLI's Prometheus instrumentation, registered against
// its own registry so that running more than one Metrics in-process
// never collides with the global default registry.
type Metrics struct {
	registry   *prometheus.Registry
	addEdge    *prometheus.CounterVec
	removeEdge *prometheus.CounterVec
	query      *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
}

// NewMetrics registers and returns a fresh set of dynagraph counters.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		addEdge: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dynagraph_add_edge_total",
			Help: "Total add_edge calls by result.",
		}, []string{"result"}),
		removeEdge: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dynagraph_remove_edge_total",
			Help: "Total remove_edge calls by result.",
		}, []string{"result"}),
		query: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dynagraph_query_total",
			Help: "Total query calls by kind.",
		}, []string{"kind"}),
		opDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynagraph_op_duration_seconds",
			Help:    "Per-operation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

func resultLabel(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}

// RecordAddEdge records the outcome of one add_edge call.
func (m *Metrics) RecordAddEdge(ok bool, d time.Duration) {
	m.addEdge.WithLabelValues(resultLabel(ok)).Inc()
	m.opDuration.WithLabelValues("add_edge").Observe(d.Seconds())
}

// RecordRemoveEdge records the outcome of one remove_edge call.
func (m *Metrics) RecordRemoveEdge(ok bool, d time.Duration) {
	m.removeEdge.WithLabelValues(resultLabel(ok)).Inc()
	m.opDuration.WithLabelValues("remove_edge").Observe(d.Seconds())
}

// RecordQuery records one is_connected/is_in_1core/is_in_2core call.
func (m *Metrics) RecordQuery(kind string, d time.Duration) {
	m.query.WithLabelValues(kind).Inc()
	m.opDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing Handler at addr and blocks
// until ctx is cancelled, then shuts the server down.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
