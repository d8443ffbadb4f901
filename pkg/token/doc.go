/*
Package token resolves API credentials for latticedns.

Two credentials exist: the central API token (publishes DNS settings) and
the node agent authtoken (reads assigned addresses from the local node).
This package owns the precedence rules for the first and the platform
defaults for the second. It performs no validation beyond trimming; a
token is opaque and its usability is the caller's concern.

# Resolution Order

Central token, strict and short-circuiting:

	1. explicit file path      (contents trimmed; empty is still present)
	2. LATTICE_CENTRAL_TOKEN   (only when set and non-empty)
	3. absence                 (ok == false; not an error)

The sources are never merged: a present-but-empty token file shadows a
populated environment variable.

Agent authtoken path:

	1. explicit override
	2. platform default:
	     linux    /var/lib/latticed/authtoken.secret
	     darwin   /Library/Application Support/Lattice/authtoken.secret
	     windows  C:\ProgramData\Lattice\authtoken.secret
	3. ErrUnsupportedPlatform (typed, recoverable)

# Usage

Resolving the central token at startup:

	tok, ok, err := token.Resolve(cfg.TokenFile)
	if err != nil {
		return fmt.Errorf("resolve central token: %w", err)
	}
	if !ok {
		return central.ErrNoToken
	}

Locating the agent authtoken:

	path, err := token.AgentTokenPath(cfg.AuthTokenFile)
	if errors.Is(err, token.ErrUnsupportedPlatform) {
		// ask the operator for an explicit path
	}

Deterministic tests without environment mutation:

	tok, ok, _ := token.ResolveFrom("", func(string) (string, bool) {
		return "test-token", true
	})

# Design Patterns

Absence Is Not Failure:
  - Resolve returns (Token, ok, error), not an error for "no token"
  - Whether a missing token is fatal depends on the caller: publishing
    requires one, purely local commands do not

Injected Lookup:
  - ResolveFrom takes the environment as a function
  - Resolve binds os.LookupEnv
  - Tests never call os.Setenv

Typed Platform Error:
  - ErrUnsupportedPlatform is a sentinel matched with errors.Is
  - The embedding command decides whether to abort, never this package

# Integration Points

  - pkg/central: consumes the resolved Token for Bearer auth
  - pkg/agent: reads the authtoken file at the resolved path
  - pkg/config: carries TokenFile/AuthTokenFile from flags and YAML
  - cmd/latticedns: resolves once at startup, passes values down

# See Also

  - pkg/central for ErrNoToken handling
  - pkg/agent for how the authtoken authenticates agent calls
*/
package token
