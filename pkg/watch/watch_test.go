package watch

import (
	"context"
	"errors"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/latticedns/pkg/ingest"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/probe"
	"github.com/latticelabs/latticedns/pkg/types"
)

type fakeAgent struct {
	mu    sync.Mutex
	addrs []string
	err   error
	calls int
}

func (f *fakeAgent) ListenAddresses(_ context.Context, _ types.NetworkID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.addrs, f.err
}

func (f *fakeAgent) setAddrs(addrs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addrs = addrs
}

func (f *fakeAgent) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type publishCall struct {
	server string
	domain names.Domain
}

type fakePublisher struct {
	mu      sync.Mutex
	updated bool
	err     error
	calls   []publishCall
}

func (f *fakePublisher) Publish(_ context.Context, _ types.NetworkID, domain names.Domain, server string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, publishCall{server: server, domain: domain})
	return f.updated, f.err
}

func (f *fakePublisher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type stubIngestor struct {
	report ingest.Report
	err    error
}

func (s *stubIngestor) Run(_ context.Context, _ types.NetworkID, _ names.Domain, _ ingest.Catalog) (ingest.Report, error) {
	return s.report, s.err
}

type fakeRecorder struct {
	mu   sync.Mutex
	recs []types.PublishRecord
}

func (f *fakeRecorder) Record(rec types.PublishRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

type stubChecker struct {
	healthy bool
}

func (s stubChecker) Check(_ context.Context) probe.Result {
	return probe.Result{Healthy: s.healthy, Message: "stub", CheckedAt: time.Now()}
}

func (s stubChecker) Type() probe.CheckType {
	return probe.CheckTypeDNS
}

func newTestWatcher(addresses AddressLister, publisher Publisher) *Watcher {
	cfg := Config{
		NetworkID: "8056c2e21c000001",
		Domain:    names.DefaultDomain,
		Interval:  10 * time.Millisecond,
	}
	return NewWatcher(cfg, addresses, publisher, zerolog.Nop()).
		WithCheckerFactory(func(string, names.Domain) probe.Checker {
			return stubChecker{healthy: true}
		})
}

func TestReconcilePublishesFirstRound(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	recorder := &fakeRecorder{}
	watcher := newTestWatcher(agent, publisher).WithRecorder(recorder)

	err := watcher.reconcile(context.Background())
	require.NoError(t, err)

	require.Len(t, publisher.calls, 1)
	assert.Equal(t, "10.147.17.10", publisher.calls[0].server)
	assert.Equal(t, names.DefaultDomain, publisher.calls[0].domain)

	require.Len(t, recorder.recs, 1)
	assert.Equal(t, types.OutcomePublished, recorder.recs[0].Outcome)
	assert.Equal(t, "10.147.17.10", recorder.recs[0].Server)
}

func TestReconcileNoRepublishWithoutDrift(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	require.NoError(t, watcher.reconcile(context.Background()))
	require.NoError(t, watcher.reconcile(context.Background()))

	assert.Equal(t, 1, publisher.callCount())
}

func TestReconcileRepublishesOnAddressChange(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	require.NoError(t, watcher.reconcile(context.Background()))

	agent.setAddrs([]string{"10.147.17.99/24"})
	require.NoError(t, watcher.reconcile(context.Background()))

	require.Len(t, publisher.calls, 2)
	assert.Equal(t, "10.147.17.99", publisher.calls[1].server)
}

func TestReconcileRetriesSkippedPublish(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: false}
	recorder := &fakeRecorder{}
	watcher := newTestWatcher(agent, publisher).WithRecorder(recorder)

	require.NoError(t, watcher.reconcile(context.Background()))
	require.NoError(t, watcher.reconcile(context.Background()))

	// A skipped publish never latches, so every round tries again.
	assert.Equal(t, 2, publisher.callCount())
	require.Len(t, recorder.recs, 2)
	assert.Equal(t, types.OutcomeSkipped, recorder.recs[0].Outcome)
	assert.NotEmpty(t, recorder.recs[0].Detail)
}

func TestReconcileSkipsUnparseableAddresses(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"garbage", "10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	require.NoError(t, watcher.reconcile(context.Background()))

	require.Len(t, publisher.calls, 1)
	assert.Equal(t, "10.147.17.10", publisher.calls[0].server)
}

func TestReconcileAgentFailure(t *testing.T) {
	agent := &fakeAgent{err: errors.New("agent unreachable")}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	err := watcher.reconcile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve listen addresses")
	assert.Equal(t, 0, publisher.callCount())
}

func TestReconcileNoParseableAddress(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"garbage", "also-garbage"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	err := watcher.reconcile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parseable listen address")
}

func TestReconcilePublishFailure(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{err: errors.New("central says 403")}
	recorder := &fakeRecorder{}
	watcher := newTestWatcher(agent, publisher).WithRecorder(recorder)

	err := watcher.reconcile(context.Background())
	require.Error(t, err)

	require.Len(t, recorder.recs, 1)
	assert.Equal(t, types.OutcomeFailed, recorder.recs[0].Outcome)
	assert.Contains(t, recorder.recs[0].Detail, "central says 403")
}

func TestReconcileRefreshesCatalog(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	catalog := ingest.NewMemoryCatalog()
	require.NoError(t, catalog.Add("stale.domain.", []netip.Addr{netip.MustParseAddr("10.147.17.66")}))

	ingestor := &stubIngestor{report: ingest.Report{Entered: 3, Skipped: 1}}
	watcher := newTestWatcher(agent, publisher).WithIngestor(ingestor, catalog)

	require.NoError(t, watcher.reconcile(context.Background()))

	// The catalog was reset before ingestion, dropping the stale entry.
	assert.Equal(t, 0, catalog.Len())
}

func TestReconcileIngestFailure(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	ingestor := &stubIngestor{err: errors.New("member list unavailable")}
	watcher := newTestWatcher(agent, publisher).
		WithIngestor(ingestor, ingest.NewMemoryCatalog())

	err := watcher.reconcile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest members")
}

func TestReconcileProbeFailureIsNotFatal(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher).
		WithCheckerFactory(func(string, names.Domain) probe.Checker {
			return stubChecker{healthy: false}
		})

	err := watcher.reconcile(context.Background())
	require.NoError(t, err)
}

func TestStartStop(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	watcher.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	watcher.Stop()

	rounds := agent.callCount()
	assert.GreaterOrEqual(t, rounds, 2, "expected several rounds before Stop")

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, rounds, agent.callCount(), "no rounds should run after Stop")
}

func TestStopOnContextCancel(t *testing.T) {
	agent := &fakeAgent{addrs: []string{"10.147.17.10/24"}}
	publisher := &fakePublisher{updated: true}
	watcher := newTestWatcher(agent, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	watcher.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()

	// The loop exits on its own; doneCh closing proves it.
	select {
	case <-watcher.doneCh:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
