/*
Package metrics provides Prometheus metrics and health reporting for
latticedns.

The package defines and registers every latticedns metric with the
Prometheus client library, exposes the scrape handler, and keeps the
component health registry that backs the /healthz and /ready endpoints
of the watch daemon.

# Architecture

All metrics are package-level variables registered in init(), so any
package that imports metrics can record observations without wiring a
registry through constructors. The watch loop is the main producer;
the daemon's HTTP listener is the only consumer:

	┌───────────────┐  Inc/Set/Observe   ┌──────────────────┐
	│ pkg/watch     │───────────────────▶│ package-level    │
	│ (per round)   │                    │ collectors       │
	└───────┬───────┘                    └────────┬─────────┘
	        │ UpdateComponent                     │ Handler()
	        ▼                                     ▼
	┌───────────────┐                    ┌──────────────────┐
	│ HealthChecker │──HealthHandler()──▶│ GET /healthz     │
	│ (component    │──ReadyHandler()───▶│ GET /ready       │
	│  registry)    │                    │ GET /metrics     │
	└───────────────┘                    └──────────────────┘

# Metrics

	latticedns_publishes_total{outcome}       publish attempts by published/skipped/failed
	latticedns_publish_duration_seconds       publish round-trip latency
	latticedns_catalog_entries                entries registered in the last ingest round
	latticedns_ingest_skips_total             member names rejected by sanitization
	latticedns_probe_healthy                  last verification probe result (1/0)
	latticedns_probe_duration_seconds         verification exchange latency
	latticedns_watch_rounds_total{result}     reconciliation rounds by ok/error

# Health Model

Components report their state through UpdateComponent after every
round. Three components are critical: agent (the local node agent is
reachable), central (the control plane answers), and publish (the last
publication succeeded). A critical failure makes GetHealth report
"unhealthy" and /healthz answer 503. Non-critical components such as
the verification probe only degrade the status; /healthz stays 200 so
an orchestrator does not restart a daemon that is still reconciling.

Readiness is stricter: /ready answers 503 until every critical
component has reported healthy at least once, which in practice means
the first full reconciliation round has completed.

# Usage

Recording:

	timer := metrics.NewTimer()
	updated, err := syncer.Publish(ctx, network, domain, server)
	timer.ObserveDuration(metrics.PublishDuration)
	metrics.PublishesTotal.WithLabelValues(outcome).Inc()

Exposition:

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", metrics.HealthHandler())
	r.Get("/ready", metrics.ReadyHandler())

# Integration Points

  - pkg/watch: records every metric and updates component health
  - cmd/latticedns: serves the handlers from the watch daemon listener
  - Prometheus: scrapes GET /metrics

# See Also

  - pkg/watch for the reconciliation loop that produces these numbers
  - pkg/probe for what the probe gauge measures
*/
package metrics
