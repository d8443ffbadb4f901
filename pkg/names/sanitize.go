package names

import (
	"strings"
	"unicode"

	"github.com/miekg/dns"
)

// Sanitize turns an arbitrary label into a Hostname or fails with a
// *ValidationError. Two rewrite rules run in order over one scan:
//
//  1. every maximal run of whitespace becomes a single "-"
//  2. any other rune that is not a letter, digit, "_", "-", or "."
//     is dropped
//
// The order matters: whitespace always becomes a visible separator, it
// is never silently deleted by rule 2. A dropped rune ends a whitespace
// run, so "a ! b" rewrites to "a--b" just as the two rules would
// produce when applied one after the other.
//
// Sanitize is idempotent: feeding a valid Hostname back through yields
// the same Hostname.
func Sanitize(label string) (Hostname, error) {
	trimmed := strings.TrimSpace(label)

	var b strings.Builder
	b.Grow(len(trimmed))

	inSpace := false
	for _, r := range trimmed {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
		case keepRune(r):
			b.WriteRune(r)
			inSpace = false
		default:
			inSpace = false
		}
	}

	s := b.String()

	if s == "." || strings.HasSuffix(s, ".") {
		return "", &ValidationError{Input: label, Reason: "'.' and names ending in '.' are disallowed"}
	}
	if s == "" {
		return "", &ValidationError{Input: label, Reason: "name is empty after rewriting"}
	}
	if _, ok := dns.IsDomainName(s); !ok {
		return "", &ValidationError{Input: label, Reason: "rewritten name is not a legal DNS name"}
	}

	return Hostname(s), nil
}

func keepRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
