package names

import (
	"fmt"
	"strings"
)

// Hostname is a validated DNS name in relative form. It is non-empty,
// never a lone dot, never ends in a dot, and contains only letters,
// digits, underscores, hyphens, and interior label separators.
type Hostname string

// Domain is a root suffix held in absolute form (trailing dot).
type Domain string

// Fqdn is a Hostname joined with a Domain, absolute form.
type Fqdn string

// ValidationError reports a name that could not be turned into a legal
// DNS name. Input is the original, unmodified text for diagnostics.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Input, e.Reason)
}

// FQDN appends the domain to the hostname, producing an absolute name.
// Both inputs are assumed well-formed; there is no failure path.
func (h Hostname) FQDN(d Domain) Fqdn {
	return Fqdn(string(h) + "." + string(d))
}

func (h Hostname) String() string {
	return string(h)
}

func (d Domain) String() string {
	return string(d)
}

// Relative returns the domain without its trailing dot, the form used
// for the published dns.domain field on the wire.
func (d Domain) Relative() string {
	return strings.TrimSuffix(string(d), ".")
}

func (f Fqdn) String() string {
	return string(f)
}
