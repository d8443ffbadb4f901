// Package ingest turns a network's member list into DNS catalog
// entries.
//
// # Architecture
//
// The ingestor sits between the central API and whatever record store
// the embedding process maintains. It owns no storage of its own; it
// pulls members, pushes validated names, and reports what happened:
//
//	┌─────────────┐      ┌──────────────────────────────┐
//	│ central API │─────▶│ Ingestor                     │
//	│ (members)   │      │  per member:                 │
//	└─────────────┘      │   parse IP assignments       │
//	                     │   sanitize node ID           │
//	                     │   sanitize display name      │
//	                     └──────────────┬───────────────┘
//	                                    │ Add(fqdn, addrs)
//	                                    ▼
//	                     ┌──────────────────────────────┐
//	                     │ Catalog (caller-provided)    │
//	                     └──────────────────────────────┘
//
// # Core Components
//
// Ingestor: walks the member list for one network and registers
// entries under the effective domain. Constructed over a MemberLister,
// which *central.Client satisfies directly.
//
// Catalog: the single-method sink for validated entries. latticedns
// does not serve DNS itself; the embedding authority implements Add
// against its own zone data.
//
// MemoryCatalog: a thread-safe in-memory Catalog. The watch daemon
// feeds one to expose the would-be zone at GET /entries; Reset before
// a pass drops departed members, Snapshot serves readers a copy.
//
// Report: per-pass counters. Entered is catalog entries written,
// Skipped is display names rejected by sanitization, Unaddressed is
// members that had no parseable IP assignment.
//
// # Naming Rules
//
// Every member with at least one usable address is registered under
// its node ID, which is always a legal DNS label. Members that also
// carry a display name get a second, friendlier entry: the name runs
// through names.Sanitize, so "My Device #1" lands in the catalog as
// My-Device-1.<domain>.
//
// A display name that cannot be repaired into a legal label is not an
// error. The entry is skipped, a warning names the member, and the
// pass continues. Batch ingestion treats bad names as data quality
// noise, not failures; a single member must never take down
// resolution for the rest of the network.
//
// Whitespace-only names are treated as absent rather than invalid and
// do not count as skips.
//
// # Failure Modes
//
// Two classes of error do abort a pass: the member list being
// unavailable (nothing to ingest) and the catalog rejecting a write
// (the record store is broken, retrying the next member would only
// repeat the failure). Both propagate to the caller wrapped with
// context.
//
// # Usage
//
//	client := central.NewClient(cfg.CentralURL, tok, logger)
//	ingestor := ingest.NewIngestor(client, logger)
//	report, err := ingestor.Run(ctx, networkID, domain, catalog)
//	if err != nil {
//	    return err
//	}
//	logger.Info().Int("entered", report.Entered).Msg("catalog refreshed")
//
// # Integration Points
//
//   - pkg/central: provides the MemberLister implementation
//   - pkg/names: sanitization and FQDN construction
//   - pkg/watch: runs ingestion on every reconciliation tick
//
// # See Also
//
//   - pkg/names for the sanitization rules applied to display names
//   - pkg/central for member list retrieval
package ingest
