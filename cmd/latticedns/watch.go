package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticelabs/latticedns/pkg/central"
	"github.com/latticelabs/latticedns/pkg/config"
	"github.com/latticelabs/latticedns/pkg/history"
	"github.com/latticelabs/latticedns/pkg/ingest"
	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/metrics"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously reconcile DNS settings with the node's state",
	Long: `Watch runs the sync logic on an interval: it republishes when the
node's listen address drifts, refreshes the member name catalog, and
verifies the published server answers. An HTTP listener serves
Prometheus metrics, health, the current catalog, and recent publish
history while the loop runs.

Examples:
  # Reconcile every minute (the default)
  latticedns watch --network 8056c2e21c000001

  # Tighter loop with a custom metrics port
  latticedns watch --network 8056c2e21c000001 --interval 15s --listen :9100`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("network", "", "Network ID to publish DNS for")
	watchCmd.Flags().String("domain", "", "DNS domain to publish (default \"domain\")")
	watchCmd.Flags().String("token-file", "", "File holding the central API token")
	watchCmd.Flags().String("authtoken-file", "", "Node agent authtoken file")
	watchCmd.Flags().String("central-url", "", "Central API base URL")
	watchCmd.Flags().String("agent-url", "", "Node agent base URL")
	watchCmd.Flags().String("history-db", "", "Publish history database path")
	watchCmd.Flags().Duration("interval", config.DefaultInterval, "Time between reconciliation rounds")
	watchCmd.Flags().String("listen", config.DefaultListenAddr, "HTTP listen address for metrics and health")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	interval, _ := cmd.Flags().GetDuration("interval")
	metrics.SetVersion(Version)

	store, err := history.Open(cfg.HistoryDB, log.Logger)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	catalog := ingest.NewMemoryCatalog()
	syncer := central.NewSynchronizer(centralClient)
	ingestor := ingest.NewIngestor(centralClient, log.Logger)

	watcher := watch.NewWatcher(watch.Config{
		NetworkID: networkID,
		Domain:    domain,
		Interval:  interval,
	}, agentClient, syncer, log.Logger).
		WithIngestor(ingestor, catalog).
		WithRecorder(store)

	server := watch.NewServer(cfg.Listen, log.Logger).
		WithCatalogView(catalog).
		WithHistory(store, networkID)

	server.Start()
	fmt.Printf("✓ HTTP listener on %s\n", cfg.Listen)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watcher.Start(ctx)
	fmt.Printf("✓ Watching network %s every %s\n", networkID, interval)
	fmt.Println("Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	fmt.Println("\nShutting down...")

	watcher.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP listener: %w", err)
	}

	fmt.Println("✓ Shutdown complete")
	return nil
}
