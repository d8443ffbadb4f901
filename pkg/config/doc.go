/*
Package config assembles the resolved runtime configuration.

latticedns reads settings from three layers: an optional YAML file,
LATTICE_* environment variables, and command-line flags. This package
owns the first two; the CLI layers flags on top of the loaded result.
Core packages (names, central, agent, history) never consult the
environment or the filesystem for settings; they receive values from
this struct, which keeps their unit tests free of process-global state.

# Precedence

	flags  >  environment  >  YAML file  >  built-in defaults

Environment keys mirror the YAML fields:

	LATTICE_NETWORK         network
	LATTICE_DOMAIN          domain
	LATTICE_TOKEN_FILE      token_file
	LATTICE_AUTHTOKEN_FILE  authtoken_file
	LATTICE_CENTRAL_URL     central_url
	LATTICE_AGENT_URL       agent_url
	LATTICE_HISTORY_DB      history_db
	LATTICE_LOG_LEVEL       log_level

LATTICE_CENTRAL_TOKEN is deliberately absent: credential precedence is
owned by pkg/token, which layers the token file above the environment.

# Usage

A full configuration file:

	network: 8a56c2e21c000001
	domain: lattice.example
	token_file: /etc/latticedns/central.token
	authtoken_file: /var/lib/latticed/authtoken.secret
	central_url: https://api.lattice.net/api/v1
	agent_url: http://127.0.0.1:9873
	history_db: /var/lib/latticedns/history.db
	resolvconf: /etc/resolv.conf.d/lattice.conf
	listen: :9053
	log_level: info
	json_logs: true

Loading at startup:

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	// CLI then overwrites fields whose flags were set

Deterministic tests:

	cfg, err := config.LoadFrom(path, func(key string) (string, bool) {
		return "", false
	})

# Validation

Formats are validated at load time with struct tags: the network ID must
be 16 hexadecimal characters, URLs must parse, the log level must be one
of debug/info/warn/error. Presence is validated by the commands instead;
the history command runs happily without a network ID while sync and
watch refuse to.

# Integration Points

  - cmd/latticedns: Load + flag overrides in the root command
  - pkg/token: receives TokenFile and AuthTokenFile values
  - pkg/central, pkg/agent: receive base URLs (empty selects their
    built-in defaults)
  - pkg/history: receives the database path
  - pkg/watch: receives Interval and Listen

# See Also

  - pkg/token for credential precedence
  - cmd/latticedns for the flag layer
*/
package config
