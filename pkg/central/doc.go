/*
Package central talks to the Lattice central API and publishes DNS
settings into network configurations.

The package has two layers: Client, a thin REST client for the network
endpoints (fetch, update, member list), and Synchronizer, which owns the
read-modify-write cycle that places the local DNS server's address into a
network's dns configuration field.

# Architecture

	┌────────────────────── PUBLISH CYCLE ──────────────────────┐
	│                                                             │
	│  Synchronizer.Publish(network, domain, server)              │
	│        │                                                    │
	│        ▼                                                    │
	│  1. GET /network/{id}           (fresh fetch, never cached) │
	│        │                                                    │
	│        ├── config == nil ──► warn log, no write, done       │
	│        ▼                                                    │
	│  2. clone config                                            │
	│     config.dns = {domain: relative, servers: [server]}      │
	│        │                                                    │
	│        ▼                                                    │
	│  3. PUT /network/{id}           (whole resource written)    │
	│                                                             │
	│  Steps 1 and 3 are not atomic. A concurrent writer's        │
	│  changes made between them are overwritten, except for      │
	│  fields this cycle does not touch.                          │
	└─────────────────────────────────────────────────────────────┘

# Core Components

Client:
  - Network(ctx, id): fetch one network resource
  - UpdateNetwork(ctx, network): write a whole resource back
  - Members(ctx, id): list members for ingestion
  - Bearer authentication, 30s request timeout, versioned User-Agent
  - Non-2xx responses become *APIError with status and body

Synchronizer:
  - Publish(ctx, networkID, domain, server) (updated, error)
  - Domain written in relative form (trailing dot stripped)
  - Exactly one server per publish
  - updated == false with nil error means the network had no
    configuration object and was deliberately left untouched

Errors:
  - ErrNoToken: no credential resolved; checked by callers before a
    client is built
  - *APIError: transport-level failure, includes not-found and
    authentication rejections

# Usage

Building a client:

	tok, ok, err := token.Resolve(cfg.TokenFile)
	if err != nil {
		return err
	}
	if !ok {
		return central.ErrNoToken
	}
	client := central.NewClient(cfg.CentralURL, tok, log.Logger).
		WithUserAgent("latticedns/" + version)

Publishing DNS settings:

	sync := central.NewSynchronizer(client)
	updated, err := sync.Publish(ctx, cfg.NetworkID, domain, server)
	if err != nil {
		return fmt.Errorf("publish dns: %w", err)
	}
	if !updated {
		// network has never been configured; nothing was written
	}

Listing members for ingestion:

	members, err := client.Members(ctx, cfg.NetworkID)
	if err != nil {
		return err
	}

Inspecting transport failures:

	var apiErr *central.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// token lacks write access to this network
	}

# Design Patterns

Fresh Fetch Per Publish:
  - No resource state is cached across calls
  - Every publish is an independent read-modify-write pair
  - Keeps the window for concurrent-writer interference as small as
    the API allows, without claiming atomicity

Whole-Resource Write:
  - The update endpoint replaces the resource, so the fetched object
    is mutated minimally (one field) and written back complete
  - types.NetworkConfig declares every served field for this reason

Deliberate No-Op:
  - A nil config means the network was never configured in central
  - Writing a config object from scratch could clobber server-side
    defaults, so the publish is skipped and logged at warn
  - Callers record the skip in the publish history

# Integration Points

  - pkg/token: credential for Bearer auth
  - pkg/names: Domain.Relative() for the wire form
  - pkg/types: Network, NetworkConfig, DNS, Member
  - pkg/ingest: consumes Members through the MemberLister interface
  - pkg/watch: re-publishes through Synchronizer on drift
  - cmd/latticedns: one-shot publish in the sync command

# Error Handling

  - Unreachable API, TLS failures: wrapped net/http errors
  - Non-2xx: *APIError carrying status code and response body
  - JSON decode failures: wrapped with the operation name
  - All methods respect ctx cancellation and the 30s client timeout

# Troubleshooting

Publish reports updated == false:
  - Cause: the network resource has no configuration object
  - Check: open the network in the central console; saving it once
    creates the configuration
  - The skip is logged at warn with the network ID

403 on update:
  - Cause: token is read-only for this network
  - Solution: issue a token with network write scope

DNS settings revert after publish:
  - Cause: another controller is writing the same network
  - The read-modify-write cycle has no compare-and-swap; the last
    writer wins

# See Also

  - pkg/agent for where the published server address comes from
  - pkg/history for the audit trail of publish attempts
*/
package central
