package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Publish metrics
	PublishesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latticedns_publishes_total",
			Help: "Total DNS publish attempts by outcome",
		},
		[]string{"outcome"},
	)

	PublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "latticedns_publish_duration_seconds",
			Help:    "Time taken to publish DNS settings in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Ingest metrics
	CatalogEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "latticedns_catalog_entries",
			Help: "Catalog entries registered in the last ingest round",
		},
	)

	IngestSkipsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "latticedns_ingest_skips_total",
			Help: "Total member names skipped by sanitization",
		},
	)

	// Probe metrics
	ProbeHealthy = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "latticedns_probe_healthy",
			Help: "Whether the last verification probe succeeded (1 = healthy, 0 = unhealthy)",
		},
	)

	ProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "latticedns_probe_duration_seconds",
			Help:    "Verification probe duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Watch loop metrics
	WatchRoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latticedns_watch_rounds_total",
			Help: "Total reconciliation rounds by result",
		},
		[]string{"result"},
	)

	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latticedns_http_requests_total",
			Help: "Total HTTP requests served by route and status",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "latticedns_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(PublishesTotal)
	prometheus.MustRegister(PublishDuration)
	prometheus.MustRegister(CatalogEntries)
	prometheus.MustRegister(IngestSkipsTotal)
	prometheus.MustRegister(ProbeHealthy)
	prometheus.MustRegister(ProbeDuration)
	prometheus.MustRegister(WatchRoundsTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
