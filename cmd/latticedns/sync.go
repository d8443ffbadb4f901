package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticelabs/latticedns/pkg/central"
	"github.com/latticelabs/latticedns/pkg/config"
	"github.com/latticelabs/latticedns/pkg/history"
	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/probe"
	"github.com/latticelabs/latticedns/pkg/resolvconf"
	"github.com/latticelabs/latticedns/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Publish this node's DNS settings once and exit",
	Long: `Sync resolves the node's listen address on the network, resolves the
domain, and writes both into the network configuration via the central
API. The publish replaces only the dns block; every other configuration
field is carried over unchanged.

A network that has no configuration object yet is skipped without
error; the skip is recorded in the publish history.

Examples:
  # Publish with the default domain
  latticedns sync --network 8056c2e21c000001

  # Publish a custom domain and verify the server answers
  latticedns sync --network 8056c2e21c000001 --domain lattice.internal --verify`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("network", "", "Network ID to publish DNS for")
	syncCmd.Flags().String("domain", "", "DNS domain to publish (default \"domain\")")
	syncCmd.Flags().String("token-file", "", "File holding the central API token")
	syncCmd.Flags().String("authtoken-file", "", "Node agent authtoken file")
	syncCmd.Flags().String("central-url", "", "Central API base URL")
	syncCmd.Flags().String("agent-url", "", "Node agent base URL")
	syncCmd.Flags().String("history-db", "", "Publish history database path")
	syncCmd.Flags().Bool("verify", false, "Probe the published server afterwards")
	syncCmd.Flags().String("resolvconf-out", "", "Write a resolv.conf pointing at the published server")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	networkID, err := requireNetwork(cfg)
	if err != nil {
		return err
	}
	domain, err := names.DomainOrDefault(domainOverride(cmd, cfg))
	if err != nil {
		return err
	}

	agentClient, centralClient, err := buildClients(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	addrs, err := agentClient.ListenAddresses(ctx, networkID)
	if err != nil {
		return fmt.Errorf("resolve listen addresses: %w", err)
	}
	server, err := firstAddress(addrs)
	if err != nil {
		return err
	}

	syncer := central.NewSynchronizer(centralClient)
	updated, err := syncer.Publish(ctx, networkID, domain, server)

	outcome := types.OutcomePublished
	detail := ""
	switch {
	case err != nil:
		outcome = types.OutcomeFailed
		detail = err.Error()
	case !updated:
		outcome = types.OutcomeSkipped
		detail = "network has no configuration object"
	}
	recordOutcome(cfg, networkID, domain, server, outcome, detail)

	if err != nil {
		return fmt.Errorf("publish DNS: %w", err)
	}

	if updated {
		fmt.Printf("✓ DNS published: network %s, domain %s, server %s\n", networkID, domain, server)
	} else {
		fmt.Printf("Network %s has no configuration object; nothing published\n", networkID)
	}

	if cfg.Verify {
		checker := probe.NewDNSChecker(server, domain).WithTimeout(5 * time.Second)
		result := checker.Check(ctx)
		if !result.Healthy {
			return fmt.Errorf("verification failed: %s", result.Message)
		}
		fmt.Printf("✓ Verified: %s\n", result.Message)
	}

	if cfg.ResolvConf != "" {
		if err := resolvconf.Generate(cfg.ResolvConf, domain, []string{server}); err != nil {
			return fmt.Errorf("write resolver config: %w", err)
		}
		fmt.Printf("✓ Wrote %s\n", cfg.ResolvConf)
	}

	return nil
}

// recordOutcome appends the publish outcome to the history store.
// History is best-effort for one-shots: a record failure never fails
// the sync itself.
func recordOutcome(cfg *config.Config, networkID types.NetworkID, domain names.Domain, server string, outcome types.PublishOutcome, detail string) {
	store, err := history.Open(cfg.HistoryDB, log.Logger)
	if err != nil {
		log.Logger.Warn().Err(err).Msg("History store unavailable")
		return
	}
	defer store.Close()

	if err := store.Record(history.NewRecord(networkID, domain, server, outcome, detail)); err != nil {
		log.Logger.Warn().Err(err).Msg("Publish record not persisted")
	}
}
