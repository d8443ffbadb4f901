package token

import (
	"fmt"
	"os"
	"strings"
)

// Token is an opaque bearer credential for the central API. It has no
// structure beyond "string"; emptiness is judged by callers.
type Token string

// EnvCentralToken is the environment variable consulted when no token
// file is supplied.
const EnvCentralToken = "LATTICE_CENTRAL_TOKEN"

func (t Token) String() string {
	return string(t)
}

// Resolve returns the central API credential with strict precedence: an
// explicit file path always wins, then the LATTICE_CENTRAL_TOKEN
// environment variable, then absence. The two sources are never merged.
//
// A file's contents are trimmed and returned even when the result is
// empty; whether an empty token is usable is the caller's decision. The
// environment value is only used when present and non-empty. ok reports
// whether any source produced a token.
func Resolve(path string) (tok Token, ok bool, err error) {
	return ResolveFrom(path, os.LookupEnv)
}

// ResolveFrom is Resolve with an injected environment lookup, so tests
// never mutate the process environment.
func ResolveFrom(path string, lookup func(string) (string, bool)) (Token, bool, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("read token file %s: %w", path, err)
		}
		return Token(strings.TrimSpace(string(data))), true, nil
	}

	if value, found := lookup(EnvCentralToken); found && value != "" {
		return Token(value), true, nil
	}

	return "", false, nil
}
