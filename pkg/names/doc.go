/*
Package names turns arbitrary member labels into legal DNS names.

This package implements the hostname canonicalization pipeline: an ordered
pair of rewrite rules that collapse whitespace and strip disallowed runes,
followed by validation, root domain resolution with a built-in default, and
FQDN construction. It is the only place in latticedns where untrusted text
becomes a DNS name; every other package consumes its Hostname, Domain, and
Fqdn types instead of raw strings.

# Architecture

One-way pipeline from raw label to catalog-ready FQDN:

	┌──────────────────────────────────────────────────────────┐
	│                   NAME PIPELINE                           │
	│                                                            │
	│   "My Device #1"         (raw, untrusted label)           │
	│        │                                                   │
	│        ▼  trim                                             │
	│   "My Device #1"                                           │
	│        │                                                   │
	│        ▼  rule 1: whitespace runs → "-"                    │
	│        ▼  rule 2: drop runes outside [letters digits _-.]  │
	│   "My-Device-1"                                            │
	│        │                                                   │
	│        ▼  validate (lone dot / trailing dot / empty /      │
	│        │            DNS length limits)                     │
	│   Hostname("My-Device-1")                                  │
	│        │                                                   │
	│        ▼  FQDN(Domain("domain."))                          │
	│   Fqdn("My-Device-1.domain.")                              │
	└──────────────────────────────────────────────────────────┘

Rule order is load-bearing. Whitespace is rewritten to a visible separator
before the catch-all rule runs; running the rules the other way around (or
merging the character classes) would silently delete spaces instead of
turning them into hyphens. The scan is a single pass, but a dropped rune
terminates the current whitespace run so the output matches what the two
rules produce when applied sequentially: "a ! b" becomes "a--b", not "a-b".

# Core Components

Sanitize:
  - Trim, rewrite, validate
  - Returns Hostname or *ValidationError
  - Idempotent on valid output

DomainOrDefault:
  - nil override → DefaultDomain ("domain.")
  - non-empty override → absolute form (trailing dot appended)
  - empty override → *ValidationError
  - an override already in absolute form gains a second dot and is
    rejected as an empty label

Hostname.FQDN:
  - Pure concatenation of validated parts
  - No failure path

Name forms:
  - Hostname: relative, no trailing dot
  - Domain: absolute, trailing dot, Relative() strips it for the wire
  - Fqdn: absolute

# Usage

Sanitizing a member label:

	hostname, err := names.Sanitize("My Device #1")
	if err != nil {
		var verr *names.ValidationError
		if errors.As(err, &verr) {
			// verr.Input is the original text, verr.Reason says why
		}
	}
	// hostname == "My-Device-1"

Resolving the root domain:

	// built-in default
	domain, _ := names.DomainOrDefault(nil) // "domain."

	// user-supplied
	tld := "lattice.example"
	domain, err := names.DomainOrDefault(&tld) // "lattice.example."

Building an FQDN:

	fqdn := hostname.FQDN(domain) // "My-Device-1.lattice.example."

Wire form for the published dns.domain field:

	domain.Relative() // "lattice.example"

# Validation Rules

After rewriting, a candidate is rejected when:

  - it equals "." (a lone separator has no labels)
  - it ends with "." (catalog names are stored relative; the domain
    supplies the absolute form)
  - it is empty (inputs made only of disallowed runes reduce to nothing)
  - it violates DNS limits (label > 63 octets, name > 255 octets)

Rejections carry the original input, not the rewritten text, so operators
can find the offending member in central.

# Integration Points

This package integrates with:

  - pkg/ingest: Sanitize + FQDN per member label
  - pkg/central: Domain.Relative() for the published dns field
  - pkg/probe: the domain as the question name for verification queries
  - cmd/latticedns: DomainOrDefault during startup resolution

# Design Patterns

Parse, Don't Validate:
  - Hostname/Domain/Fqdn are distinct types
  - Functions downstream accept the parsed types only
  - A raw string cannot flow past this package unchecked

Single-Pass Rewrite:
  - One scan implements both ordered rules
  - Whitespace-run state resets on dropped runes to preserve
    sequential-rule semantics

Typed Errors:
  - *ValidationError for every rejection
  - errors.As distinguishes data-quality failures from transport or
    I/O failures at the ingestion boundary

# Performance Characteristics

  - Sanitize: one allocation (strings.Builder), O(len(label))
  - FQDN: one concatenation
  - No regular expressions, no lookup tables
  - Unicode-aware classification via the unicode package

# Troubleshooting

Name rejected as empty:
  - Symptom: "name is empty after rewriting"
  - Cause: every rune in the label was disallowed (for example "!!!")
  - Solution: rename the member in central

Name rejected for trailing dot:
  - Symptom: "'.' and names ending in '.' are disallowed"
  - Cause: the label ends with a separator after rewriting
  - Solution: catalog names are relative; drop the trailing dot

Domain override rejected:
  - Symptom: "not a legal domain name" on startup
  - Cause: the override was supplied already in absolute form
  - Solution: pass the domain without its trailing dot

# See Also

  - pkg/ingest for the skip-on-invalid ingestion policy
  - pkg/central for where the relative domain form is written
  - RFC 1035 §2.3.4 for DNS size limits
*/
package names
