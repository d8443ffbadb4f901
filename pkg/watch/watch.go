package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/agent"
	"github.com/latticelabs/latticedns/pkg/history"
	"github.com/latticelabs/latticedns/pkg/ingest"
	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/metrics"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/probe"
	"github.com/latticelabs/latticedns/pkg/types"
)

// DefaultInterval is the time between reconciliation rounds.
const DefaultInterval = 60 * time.Second

// AddressLister yields the node's listen addresses on a network.
// *agent.Client satisfies it.
type AddressLister interface {
	ListenAddresses(ctx context.Context, id types.NetworkID) ([]string, error)
}

// Publisher pushes DNS settings to the control plane.
// *central.Synchronizer satisfies it.
type Publisher interface {
	Publish(ctx context.Context, id types.NetworkID, domain names.Domain, server string) (bool, error)
}

// MemberIngestor refreshes a catalog from the member list.
// *ingest.Ingestor satisfies it.
type MemberIngestor interface {
	Run(ctx context.Context, id types.NetworkID, domain names.Domain, catalog ingest.Catalog) (ingest.Report, error)
}

// Recorder persists publish outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(rec types.PublishRecord) error
}

// CheckerFactory builds the verification probe for a published server.
type CheckerFactory func(server string, domain names.Domain) probe.Checker

func defaultCheckerFactory(server string, domain names.Domain) probe.Checker {
	return probe.NewDNSChecker(server, domain).WithTimeout(3 * time.Second)
}

// Config carries the watcher's target network and cadence.
type Config struct {
	NetworkID types.NetworkID
	Domain    names.Domain
	Interval  time.Duration
}

// Watcher keeps the published DNS settings matched to the node's
// actual listen address and the catalog matched to the member list.
type Watcher struct {
	cfg        Config
	agent      AddressLister
	publisher  Publisher
	ingestor   MemberIngestor
	catalog    ingest.Catalog
	recorder   Recorder
	newChecker CheckerFactory
	logger     zerolog.Logger

	mu         sync.Mutex
	lastServer string
	lastDomain names.Domain

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a watcher over an address source and a publisher.
func NewWatcher(cfg Config, addresses AddressLister, publisher Publisher, logger zerolog.Logger) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Watcher{
		cfg:        cfg,
		agent:      addresses,
		publisher:  publisher,
		newChecker: defaultCheckerFactory,
		logger:     log.Component(logger, "watch"),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// WithIngestor adds member ingestion into catalog to every round.
func (w *Watcher) WithIngestor(ingestor MemberIngestor, catalog ingest.Catalog) *Watcher {
	w.ingestor = ingestor
	w.catalog = catalog
	return w
}

// WithRecorder persists every publish outcome.
func (w *Watcher) WithRecorder(recorder Recorder) *Watcher {
	w.recorder = recorder
	return w
}

// WithCheckerFactory overrides how verification probes are built.
func (w *Watcher) WithCheckerFactory(factory CheckerFactory) *Watcher {
	w.newChecker = factory
	return w
}

// Start begins the reconciliation loop. The first round runs
// immediately so a fresh daemon publishes without waiting out the
// interval.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop ends the loop and waits for an in-flight round to finish.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	if err := w.reconcile(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Round failed")
	}

	for {
		select {
		case <-ticker.C:
			if err := w.reconcile(ctx); err != nil {
				w.logger.Error().Err(err).Msg("Round failed")
			}
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		}
	}
}

// reconcile performs one round: resolve the listen address, publish on
// drift, refresh the catalog, verify.
func (w *Watcher) reconcile(ctx context.Context) error {
	timer := metrics.NewTimer()
	result := "ok"
	defer func() {
		metrics.WatchRoundsTotal.WithLabelValues(result).Inc()
		w.logger.Debug().Str("result", result).Dur("took", timer.Duration()).Msg("Round finished")
	}()

	w.mu.Lock()
	defer w.mu.Unlock()

	server, err := w.listenAddress(ctx)
	if err != nil {
		result = "error"
		metrics.UpdateComponent("agent", false, err.Error())
		return err
	}
	metrics.UpdateComponent("agent", true, "")

	if err := w.publishIfChanged(ctx, server); err != nil {
		result = "error"
		return err
	}

	if w.ingestor != nil && w.catalog != nil {
		if err := w.refreshCatalog(ctx); err != nil {
			result = "error"
			metrics.UpdateComponent("central", false, err.Error())
			return err
		}
		metrics.UpdateComponent("central", true, "")
	}

	w.verify(ctx, server)
	return nil
}

// listenAddress picks the first parseable assigned address.
func (w *Watcher) listenAddress(ctx context.Context) (string, error) {
	cidrs, err := w.agent.ListenAddresses(ctx, w.cfg.NetworkID)
	if err != nil {
		return "", fmt.Errorf("resolve listen addresses: %w", err)
	}

	for _, cidr := range cidrs {
		addr, err := agent.ParseAddress(cidr)
		if err != nil {
			w.logger.Warn().Str("address", cidr).Msg("Unparseable listen address skipped")
			continue
		}
		return addr.String(), nil
	}
	return "", fmt.Errorf("no parseable listen address for network %s", w.cfg.NetworkID)
}

// publishIfChanged publishes when the server or domain differs from
// the last successful publication. A skipped publication leaves the
// last published state unset so the next round tries again.
func (w *Watcher) publishIfChanged(ctx context.Context, server string) error {
	if server == w.lastServer && w.cfg.Domain == w.lastDomain {
		return nil
	}

	timer := metrics.NewTimer()
	updated, err := w.publisher.Publish(ctx, w.cfg.NetworkID, w.cfg.Domain, server)
	timer.ObserveDuration(metrics.PublishDuration)

	outcome := types.OutcomePublished
	detail := ""
	switch {
	case err != nil:
		outcome = types.OutcomeFailed
		detail = err.Error()
	case !updated:
		outcome = types.OutcomeSkipped
		detail = "network has no configuration object"
	}
	metrics.PublishesTotal.WithLabelValues(string(outcome)).Inc()
	w.record(outcome, server, detail)

	if err != nil {
		metrics.UpdateComponent("central", false, err.Error())
		metrics.UpdateComponent("publish", false, err.Error())
		return fmt.Errorf("publish DNS: %w", err)
	}
	metrics.UpdateComponent("central", true, "")

	if !updated {
		metrics.UpdateComponent("publish", false, detail)
		w.logger.Warn().
			Str("network_id", string(w.cfg.NetworkID)).
			Msg("Publish skipped, retrying next round")
		return nil
	}

	metrics.UpdateComponent("publish", true, "")
	w.lastServer = server
	w.lastDomain = w.cfg.Domain
	w.logger.Info().
		Str("network_id", string(w.cfg.NetworkID)).
		Str("server", server).
		Str("domain", string(w.cfg.Domain)).
		Msg("DNS settings published")
	return nil
}

func (w *Watcher) record(outcome types.PublishOutcome, server, detail string) {
	if w.recorder == nil {
		return
	}

	rec := history.NewRecord(w.cfg.NetworkID, w.cfg.Domain, server, outcome, detail)
	if err := w.recorder.Record(rec); err != nil {
		w.logger.Warn().Err(err).Msg("Publish record not persisted")
	}
}

func (w *Watcher) refreshCatalog(ctx context.Context) error {
	// A resettable catalog is cleared first so departed members drop
	// out of the view.
	if resettable, ok := w.catalog.(interface{ Reset() }); ok {
		resettable.Reset()
	}

	report, err := w.ingestor.Run(ctx, w.cfg.NetworkID, w.cfg.Domain, w.catalog)
	if err != nil {
		return fmt.Errorf("ingest members: %w", err)
	}

	metrics.CatalogEntries.Set(float64(report.Entered))
	if report.Skipped > 0 {
		metrics.IngestSkipsTotal.Add(float64(report.Skipped))
	}
	return nil
}

// verify probes the published server. Failures are advisory: they mark
// the round degraded but never fail it.
func (w *Watcher) verify(ctx context.Context, server string) {
	checker := w.newChecker(server, w.cfg.Domain)
	result := checker.Check(ctx)

	metrics.ProbeDuration.Observe(result.Duration.Seconds())
	if result.Healthy {
		metrics.ProbeHealthy.Set(1)
	} else {
		metrics.ProbeHealthy.Set(0)
		w.logger.Warn().Str("detail", result.Message).Msg("Verification probe failed")
	}
	metrics.UpdateComponent("probe", result.Healthy, result.Message)
}
