/*
Package history keeps a local audit log of DNS publish attempts.

Every run of the publish cycle, one-shot or from the watch loop, appends
a record: which network, which domain and server, and whether the write
happened (published), was deliberately skipped (network without a
configuration object), or failed. The log answers "what did latticedns
last push to central, and when" without access to central itself.

# Storage Layout

One bbolt database, one bucket:

	bucket "publishes"
	  key:   <UnixNano, zero-padded to 20 digits>/<record UUID>
	  value: JSON-encoded types.PublishRecord

The zero-padded timestamp prefix makes keys lexicographically
time-ordered, so List walks the cursor backwards for newest-first
results without loading the whole bucket.

# Usage

Opening and recording:

	store, err := history.Open(cfg.HistoryDB, log.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := history.NewRecord(networkID, domain, server, types.OutcomePublished, "")
	if err := store.Record(rec); err != nil {
		return err
	}

Reading recent attempts:

	records, err := store.List("", 20)          // all networks, newest 20
	records, err = store.List(networkID, 0)     // one network, everything

Recording a skip or failure:

	history.NewRecord(networkID, domain, server, types.OutcomeSkipped,
		"network has no configuration object")
	history.NewRecord(networkID, domain, server, types.OutcomeFailed,
		err.Error())

# Design Patterns

Append-Only:
  - Records are never updated or deleted by the daemon
  - The file is small (one row per publish attempt); operators can
    remove it wholesale to reset the log

Composite Keys:
  - Timestamp prefix for ordering, UUID suffix for uniqueness
  - Two records in the same nanosecond still get distinct keys

Outcome In-Band:
  - Skips and failures are recorded alongside successes, making the
    no-configuration limitation of the publish path observable

# Integration Points

  - pkg/types: PublishRecord and PublishOutcome
  - pkg/names: Domain.Relative() for the stored form
  - cmd/latticedns: sync records each attempt; history lists them
  - pkg/watch: records every round's outcome

# Failure Semantics

Open fails when the database cannot be created or another process holds
the file lock (5s timeout). Record and List fail only on I/O or
corruption; an empty store lists an empty slice, not an error. History
failures never abort a publish: callers log them and continue, since the
audit trail is an observer of the cycle, not a participant.

# See Also

  - pkg/central for the publish cycle that feeds this log
  - cmd/latticedns history for the operator view
*/
package history
