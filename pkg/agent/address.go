package agent

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseAddress reduces a CIDR-notation assignment to its address part.
// The agent reports assignments like "10.147.20.14/24"; the DNS server
// field wants the bare address.
func ParseAddress(cidr string) (netip.Addr, error) {
	host, _, _ := strings.Cut(cidr, "/")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse assigned address %q: %w", cidr, err)
	}
	return addr, nil
}
