package resolvconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/latticelabs/latticedns/pkg/names"
)

const managedHeader = "# managed by latticedns"

// Generate writes a resolv.conf pointing at the published nameservers.
// This configures hosts on the network to resolve member names without
// qualifying them.
//
// Format:
//
//	nameserver <addr>       # one line per server
//	search <domain>         # allow "laptop" instead of "laptop.domain"
//	options ndots:1 timeout:2 attempts:2
//
// The file is written atomically: content goes to a temp file in the
// target directory first and is renamed into place, so a reader never
// observes a half-written config.
func Generate(path string, domain names.Domain, servers []string) error {
	if len(servers) == 0 {
		return fmt.Errorf("no nameservers to write")
	}

	var b strings.Builder
	b.WriteString(managedHeader + "\n")
	b.WriteString("# Generated automatically - do not edit manually\n\n")
	for _, server := range servers {
		fmt.Fprintf(&b, "nameserver %s\n", server)
	}
	fmt.Fprintf(&b, "search %s\n", domain.Relative())
	b.WriteString("options ndots:1 timeout:2 attempts:2\n")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".resolvconf-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
