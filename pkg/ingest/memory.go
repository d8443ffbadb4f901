package ingest

import (
	"net/netip"
	"sync"

	"github.com/latticelabs/latticedns/pkg/names"
)

// MemoryCatalog is a Catalog that keeps the latest entries in memory.
// The watch daemon uses it to expose what an authority would serve;
// embedding processes with real zone data bring their own Catalog.
type MemoryCatalog struct {
	mu      sync.RWMutex
	entries map[names.Fqdn][]netip.Addr
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{entries: make(map[names.Fqdn][]netip.Addr)}
}

// Add registers or replaces the addresses for a name.
func (c *MemoryCatalog) Add(fqdn names.Fqdn, addrs []netip.Addr) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fqdn] = append([]netip.Addr(nil), addrs...)
	return nil
}

// Reset clears all entries. The watcher resets before re-ingesting so
// departed members disappear from the view.
func (c *MemoryCatalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[names.Fqdn][]netip.Addr)
}

// Snapshot returns a copy of the current entries.
func (c *MemoryCatalog) Snapshot() map[names.Fqdn][]netip.Addr {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[names.Fqdn][]netip.Addr, len(c.entries))
	for fqdn, addrs := range c.entries {
		out[fqdn] = append([]netip.Addr(nil), addrs...)
	}
	return out
}

// Len returns the number of registered names.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
