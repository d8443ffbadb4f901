// Package probe verifies that a published nameserver actually answers
// for its domain.
//
// # Architecture
//
// Publication tells the control plane where DNS lives; it says nothing
// about whether anything is listening there. The probe closes that gap
// with a real exchange:
//
//	┌───────────────┐   SOA domain. ?   ┌──────────────────┐
//	│ DNSChecker    │──────────────────▶│ <server>:53      │
//	│ (udp or tcp)  │◀──────────────────│ (the published   │
//	└───────┬───────┘   rcode, answers  │  listen address) │
//	        │                           └──────────────────┘
//	        ▼
//	   Result{Healthy, Message, CheckedAt, Duration}
//
// # Core Components
//
// Checker: the interface all verification checks implement. Check
// runs one verification under a context; Type names the kind.
//
// DNSChecker: asks the target server for the zone root's SOA record.
// An authority always holds an SOA for its zone, so NOERROR means the
// server is up and serving the right domain, while NXDOMAIN or
// REFUSED means something answers there but not for this zone. Both
// UDP and TCP are supported; flip WithNet("tcp") to verify the stream
// listener too.
//
// # Usage
//
//	checker := probe.NewDNSChecker(server, domain).
//	    WithTimeout(3 * time.Second)
//	result := checker.Check(ctx)
//	if !result.Healthy {
//	    logger.Warn().Str("detail", result.Message).Msg("verification failed")
//	}
//
// # Failure Semantics
//
// A probe failure is advisory. Publication has already happened by the
// time a probe runs, and callers report the failure rather than roll
// anything back; the sync command exits nonzero under --verify, the
// watch loop records the round as degraded and tries again next tick.
//
// # Integration Points
//
//   - cmd/latticedns: sync --verify runs one probe after publishing
//   - pkg/watch: probes every reconciliation round
//   - pkg/metrics: probe outcomes feed the verification gauge
//
// # See Also
//
//   - pkg/central for the publication the probe verifies
package probe
