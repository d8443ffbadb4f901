package names

import (
	"github.com/miekg/dns"
)

// DefaultDomain is the root domain used when no override is supplied.
const DefaultDomain = Domain("domain.")

// DomainOrDefault resolves the effective root domain. A nil override
// selects DefaultDomain. A supplied override must be non-empty and is
// converted to absolute form by appending a trailing dot; an override
// that already carries one produces an empty label and is rejected.
func DomainOrDefault(override *string) (Domain, error) {
	if override == nil {
		return DefaultDomain, nil
	}
	if *override == "" {
		return "", &ValidationError{Input: *override, Reason: "domain must not be empty if provided"}
	}
	return parseDomain(*override + ".")
}

func parseDomain(s string) (Domain, error) {
	if _, ok := dns.IsDomainName(s); !ok {
		return "", &ValidationError{Input: s, Reason: "not a legal domain name"}
	}
	return Domain(dns.Fqdn(s)), nil
}
