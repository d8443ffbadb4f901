/*
Package types defines the core data structures used throughout latticedns.

This package contains the wire-level types shared by the central API client,
the node agent client, the ingestion pipeline, and the publish audit log.
These are plain JSON-tagged structs; all behavior lives in the packages that
consume them.

# Architecture

The types package is the foundation of the data model. It defines:

  - Central resources (networks, their configuration, members)
  - Agent resources (joined networks with assigned addresses)
  - DNS publication payloads (domain + server list)
  - Audit records for publish attempts

All types are designed to be:
  - Serializable (JSON, matching the central and agent wire formats)
  - Round-trippable (the synchronizer writes back whole resources,
    so every served field must survive decode/encode)
  - Self-documenting (clear field names and comments)

# Core Types

Central Resources:
  - Network: The network resource; Config is a pointer so "no
    configuration object" is representable as nil
  - NetworkConfig: Mutable configuration sub-object (routes, pools,
    assign modes, dns)
  - DNS: The published domain (relative form) and server addresses
  - Member: A device joined to the network, with its display name and
    IP assignments

Agent Resources:
  - NodeNetwork: Local node's view of a joined network
  - NodeNetworkStatus: OK, REQUESTING_CONFIGURATION, ACCESS_DENIED,
    NOT_FOUND

Audit:
  - PublishRecord: One publish attempt with outcome and detail
  - PublishOutcome: published, skipped, failed

# Usage

Decoding a central network:

	var network types.Network
	if err := json.NewDecoder(resp.Body).Decode(&network); err != nil {
		return fmt.Errorf("decode network: %w", err)
	}
	if network.Config == nil {
		// resource has no configuration object
	}

Replacing the DNS field before an update:

	cfg := *network.Config
	cfg.DNS = &types.DNS{
		Domain:  "lattice.example",
		Servers: []string{"10.147.20.1"},
	}
	network.Config = &cfg

Reading assigned addresses from the agent:

	var nn types.NodeNetwork
	json.Unmarshal(body, &nn)
	for _, cidr := range nn.AssignedAddresses {
		// "10.147.20.14/24"
	}

Recording a publish attempt:

	rec := types.PublishRecord{
		ID:        uuid.NewString(),
		NetworkID: "8a56c2e21c000001",
		Domain:    "lattice.example",
		Server:    "10.147.20.1",
		Outcome:   types.OutcomePublished,
		Timestamp: time.Now().UTC(),
	}

# Design Patterns

Pointer Sub-Objects:
  - Network.Config, NetworkConfig.DNS, Member.Config are pointers
  - nil distinguishes "absent on the wire" from "present but zero"
  - The synchronizer's no-config no-op depends on this distinction

Typed String Constants:
  - NodeNetworkStatus and PublishOutcome are typed strings
  - Prevents mixing unrelated state vocabularies
  - Values match the wire format exactly

Whole-Resource Round-Trip:
  - NetworkConfig declares every field central serves
  - An update is decode, mutate one field, encode
  - Omitted fields would be silently dropped on write

# Integration Points

This package is imported by:

  - pkg/central: Network, NetworkConfig, DNS, Member
  - pkg/agent: NodeNetwork, NodeNetworkStatus
  - pkg/ingest: Member, MemberConfig
  - pkg/history: PublishRecord, PublishOutcome
  - pkg/watch: PublishRecord for round reporting
  - cmd/latticedns: display of records and networks

# Thread Safety

Types in this package are plain data. They are safe for concurrent reads;
callers own synchronization for concurrent mutation. The core packages
never share these values across goroutines.

# See Also

  - pkg/central for the resources' fetch/update lifecycle
  - pkg/agent for the agent-side view
  - pkg/history for audit persistence
*/
package types
