package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticelabs/latticedns/pkg/history"
	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent DNS publish records",
	Long: `History lists publish attempts recorded by sync and watch, newest
first. Without --network it shows records for every network in the
database.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("network", "", "Filter records to one network")
	historyCmd.Flags().String("history-db", "", "Publish history database path")
	historyCmd.Flags().Int("limit", 20, "Maximum records to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	networkID := types.NetworkID(cfg.NetworkID)

	store, err := history.Open(cfg.HistoryDB, log.Logger)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	records, err := store.List(networkID, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No publish records.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tNETWORK\tDOMAIN\tSERVER\tOUTCOME\tDETAIL")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Timestamp.Format(time.RFC3339),
			rec.NetworkID, rec.Domain, rec.Server, rec.Outcome, rec.Detail)
	}
	return w.Flush()
}
