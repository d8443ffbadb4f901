/*
Package agent queries the local Lattice node agent for network state.

The node agent (latticed) runs on every member device and exposes a
local HTTP API authenticated by a filesystem credential, the authtoken.
latticedns uses exactly one slice of that API: the addresses assigned to
this node on a given network, which become the DNS server's listen and
publish addresses.

# Architecture

	┌───────────────── LISTEN ADDRESS RESOLUTION ─────────────────┐
	│                                                               │
	│  authtoken.secret ──► read per request (rotation-safe)        │
	│        │                                                      │
	│        ▼                                                      │
	│  GET http://127.0.0.1:9873/network/{id}                       │
	│      X-Lattice-Auth: <token>                                  │
	│        │                                                      │
	│        ▼                                                      │
	│  NodeNetwork{assignedAddresses: ["10.147.20.14/24", ...]}     │
	│        │                                                      │
	│        ├── empty ──► ErrNoListenAddresses                     │
	│        ▼                                                      │
	│  raw CIDR strings returned to the caller                      │
	│        │                                                      │
	│        ▼  ParseAddress (caller's step)                        │
	│  10.147.20.14                                                 │
	└───────────────────────────────────────────────────────────────┘

# Core Components

Client:
  - Network(ctx, id): the node's view of a joined network
  - ListenAddresses(ctx, id): assigned addresses, raw CIDR form
  - Reads the authtoken file on every request
  - Non-2xx responses become *APIError

ParseAddress:
  - Splits "addr/prefix" on the first slash and parses the address
  - Returned separately because the resolver's contract is to hand
    back exactly what the agent assigned; reduction is the caller's
    explicit step

Errors:
  - ErrNoListenAddresses: the node holds no address on the network,
    a precondition failure for serving or publishing DNS
  - *APIError: agent reachable but refused or failed the request
  - authtoken read failures wrap the underlying os error

# Usage

Resolving listen addresses:

	path, err := token.AgentTokenPath(cfg.AuthTokenFile)
	if err != nil {
		return err
	}
	client := agent.NewClient(cfg.AgentURL, path, log.Logger)

	cidrs, err := client.ListenAddresses(ctx, cfg.NetworkID)
	if err != nil {
		return fmt.Errorf("resolve listen addresses: %w", err)
	}

	addr, err := agent.ParseAddress(cidrs[0])
	if err != nil {
		return err
	}
	server := addr.String()

Distinguishing failure modes:

	if errors.Is(err, agent.ErrNoListenAddresses) {
		// joined but unassigned; authorize the member in central
	}
	if errors.Is(err, os.ErrNotExist) {
		// authtoken file missing; is latticed installed?
	}

# Design Patterns

Per-Request Credential Read:
  - The authtoken file is tiny and local; reading it per request
    picks up rotations without restarting the daemon

Raw Return, Explicit Reduction:
  - ListenAddresses never strips the CIDR suffix
  - Callers choose which assignment to publish and reduce it with
    ParseAddress, keeping the contract visible at the call site

# Integration Points

  - pkg/token: AgentTokenPath supplies the default credential location
  - pkg/types: NodeNetwork wire type
  - pkg/watch: re-resolves addresses every round to detect drift
  - cmd/latticedns: picks the first assignment as the publish address

# Troubleshooting

ErrNoListenAddresses:
  - Symptom: "no listen addresses available on this network"
  - Cause: member not authorized, or address assignment pending
  - Check: member authorization and IP assignment in central

401 from the agent:
  - Cause: authtoken file does not match the running agent
  - Check: path passed via --authtoken against the agent's data dir

Connection refused:
  - Cause: latticed not running, or a non-default agent port
  - Check: agent service status; pass --agent-url for custom setups

# See Also

  - pkg/central for the publish half of the pipeline
  - pkg/token for credential path resolution
*/
package agent
