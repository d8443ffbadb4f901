package central

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/types"
)

// Synchronizer publishes a network's DNS settings through a
// read-modify-write cycle against the central API. The network resource
// is fetched fresh on every call and written back whole; nothing is
// cached between calls.
type Synchronizer struct {
	client *Client
	logger zerolog.Logger
}

// NewSynchronizer creates a Synchronizer over an existing client. It
// logs under the client's component; the messages name the operation.
func NewSynchronizer(client *Client) *Synchronizer {
	return &Synchronizer{
		client: client,
		logger: client.logger,
	}
}

// Publish sets the network's DNS configuration to the given domain
// (written in relative form) and single server address, leaving every
// other configuration field as fetched. The fetch and the update are
// not atomic: a concurrent writer's changes to the fields this method
// does touch are overwritten.
//
// A network with no configuration object at all is left untouched and
// updated reports false; such networks are never bootstrapped with DNS
// settings by this path.
func (s *Synchronizer) Publish(ctx context.Context, networkID types.NetworkID, domain names.Domain, server string) (updated bool, err error) {
	network, err := s.client.Network(ctx, networkID)
	if err != nil {
		return false, fmt.Errorf("fetch network %s: %w", networkID, err)
	}

	if network.Config == nil {
		s.logger.Warn().
			Str("network_id", string(networkID)).
			Msg("Network has no configuration object, DNS not published")
		return false, nil
	}

	cfg := *network.Config
	cfg.DNS = &types.DNS{
		Domain:  domain.Relative(),
		Servers: []string{server},
	}
	network.Config = &cfg

	if err := s.client.UpdateNetwork(ctx, network); err != nil {
		return false, fmt.Errorf("update network %s: %w", networkID, err)
	}

	s.logger.Info().
		Str("network_id", string(networkID)).
		Str("domain", domain.Relative()).
		Str("server", server).
		Msg("DNS published")
	return true, nil
}
