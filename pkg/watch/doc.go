// Package watch keeps published DNS settings reconciled with reality.
//
// # Architecture
//
// A one-shot sync publishes whatever is true at that moment. The
// watcher repeats the same work on an interval so the published state
// tracks the node as addresses move, members come and go, and central
// objects get recreated:
//
//	          ┌──────────────────────────────────────────────┐
//	 ticker──▶│ reconcile round                              │
//	          │  1. resolve listen address  (node agent)     │
//	          │  2. publish on drift        (central API)    │
//	          │  3. refresh catalog         (member list)    │
//	          │  4. verify                  (DNS probe)      │
//	          └───────────────┬──────────────────────────────┘
//	                          │ counters, gauges, component health
//	                          ▼
//	          ┌──────────────────────────────────────────────┐
//	          │ Server (chi)                                 │
//	          │  GET /metrics /healthz /ready /live          │
//	          │  GET /entries /history                       │
//	          └──────────────────────────────────────────────┘
//
// # Core Components
//
// Watcher: the reconciliation loop. Constructed over an AddressLister
// and a Publisher; ingestion, history recording, and the probe factory
// attach through With* builders. Start launches the loop (first round
// immediately), Stop waits for an in-flight round before returning.
//
// Server: the daemon's HTTP surface. Metrics and health routes are
// always mounted; catalog and history views attach when the daemon
// has them.
//
// # Drift Detection
//
// A round publishes only when the listen address or domain differs
// from the last successful publication. Two cases deliberately do not
// latch:
//
//   - a failed publish, so the next round retries, and
//   - a skipped publish (network missing its configuration object),
//     so the daemon picks the network up as soon as central has it.
//
// Every publish attempt lands in the history store with its outcome;
// rounds that publish nothing record nothing.
//
// # Failure Semantics
//
// Within a round, an unreachable agent, a failed publish, and a failed
// ingest abort the round and count it as an error; the loop itself
// never exits on a round failure. A failed verification probe only
// marks the probe component unhealthy, which degrades /healthz without
// failing the round.
//
// # Usage
//
//	watcher := watch.NewWatcher(watch.Config{
//	    NetworkID: cfg.NetworkID,
//	    Domain:    domain,
//	    Interval:  interval,
//	}, agentClient, syncer, logger).
//	    WithIngestor(ingestor, catalog).
//	    WithRecorder(store)
//
//	server := watch.NewServer(cfg.Listen, logger).
//	    WithCatalogView(catalog).
//	    WithHistory(store, cfg.NetworkID)
//
//	server.Start()
//	watcher.Start(ctx)
//	<-ctx.Done()
//	watcher.Stop()
//	_ = server.Shutdown(context.Background())
//
// # Integration Points
//
//   - pkg/agent: listen address resolution
//   - pkg/central: the Publisher implementation
//   - pkg/ingest: catalog refresh per round
//   - pkg/probe: post-publish verification
//   - pkg/history: outcome records served at GET /history
//   - pkg/metrics: every round's counters and component health
//
// # See Also
//
//   - cmd/latticedns watch for the daemon entrypoint
package watch
