package ingest

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalogAddAndSnapshot(t *testing.T) {
	catalog := NewMemoryCatalog()
	addrs := []netip.Addr{netip.MustParseAddr("10.147.17.10")}

	require.NoError(t, catalog.Add("laptop.domain.", addrs))

	snapshot := catalog.Snapshot()
	assert.Equal(t, addrs, snapshot["laptop.domain."])
	assert.Equal(t, 1, catalog.Len())
}

func TestMemoryCatalogAddReplaces(t *testing.T) {
	catalog := NewMemoryCatalog()

	require.NoError(t, catalog.Add("laptop.domain.", []netip.Addr{netip.MustParseAddr("10.147.17.10")}))
	require.NoError(t, catalog.Add("laptop.domain.", []netip.Addr{netip.MustParseAddr("10.147.17.99")}))

	snapshot := catalog.Snapshot()
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("10.147.17.99")}, snapshot["laptop.domain."])
	assert.Equal(t, 1, catalog.Len())
}

func TestMemoryCatalogReset(t *testing.T) {
	catalog := NewMemoryCatalog()
	require.NoError(t, catalog.Add("laptop.domain.", []netip.Addr{netip.MustParseAddr("10.147.17.10")}))

	catalog.Reset()

	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.Snapshot())
}

func TestMemoryCatalogSnapshotIsACopy(t *testing.T) {
	catalog := NewMemoryCatalog()
	require.NoError(t, catalog.Add("laptop.domain.", []netip.Addr{netip.MustParseAddr("10.147.17.10")}))

	snapshot := catalog.Snapshot()
	snapshot["intruder.domain."] = []netip.Addr{netip.MustParseAddr("10.147.17.66")}
	snapshot["laptop.domain."][0] = netip.MustParseAddr("10.147.17.66")

	fresh := catalog.Snapshot()
	assert.Equal(t, 1, catalog.Len())
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("10.147.17.10")}, fresh["laptop.domain."])
}
