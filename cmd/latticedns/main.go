package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticelabs/latticedns/pkg/agent"
	"github.com/latticelabs/latticedns/pkg/central"
	"github.com/latticelabs/latticedns/pkg/config"
	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/token"
	"github.com/latticelabs/latticedns/pkg/types"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "latticedns",
	Short: "latticedns - publish Lattice network DNS settings",
	Long: `latticedns keeps a Lattice network's DNS settings pointed at this node.

It resolves the node's listen address from the local agent, rewrites
member display names into legal DNS labels, and publishes domain and
nameserver into the network configuration via the central API, either
once (sync) or continuously (watch).`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"latticedns version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit JSON logs instead of console output")
}

// resolveConfig layers command-line flags over the loaded configuration
// and initializes logging. Flags win over environment variables, which
// win over the config file, which wins over built-in defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("network") {
		cfg.NetworkID, _ = flags.GetString("network")
	}
	if flags.Changed("token-file") {
		cfg.TokenFile, _ = flags.GetString("token-file")
	}
	if flags.Changed("authtoken-file") {
		cfg.AuthTokenFile, _ = flags.GetString("authtoken-file")
	}
	if flags.Changed("central-url") {
		cfg.CentralURL, _ = flags.GetString("central-url")
	}
	if flags.Changed("agent-url") {
		cfg.AgentURL, _ = flags.GetString("agent-url")
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB, _ = flags.GetString("history-db")
	}
	if flags.Changed("resolvconf-out") {
		cfg.ResolvConf, _ = flags.GetString("resolvconf-out")
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}
	if flags.Changed("listen") {
		cfg.Listen, _ = flags.GetString("listen")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs, _ = flags.GetBool("json-logs")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.JSONLogs,
	})
	return cfg, nil
}

// domainOverride maps the --domain flag and config file to the optional
// domain override. A flag that was never set and an empty config value
// mean "use the default"; a flag set to the empty string stays an empty
// override so it fails validation.
func domainOverride(cmd *cobra.Command, cfg *config.Config) *string {
	if cmd.Flags().Changed("domain") {
		value, _ := cmd.Flags().GetString("domain")
		return &value
	}
	if cfg.Domain != "" {
		value := cfg.Domain
		return &value
	}
	return nil
}

func requireNetwork(cfg *config.Config) (types.NetworkID, error) {
	if cfg.NetworkID == "" {
		return "", fmt.Errorf("a network ID is required (--network, LATTICE_NETWORK, or the config file)")
	}
	return types.NetworkID(cfg.NetworkID), nil
}

// buildClients wires the agent and central clients from configuration.
func buildClients(cfg *config.Config) (*agent.Client, *central.Client, error) {
	tok, ok, err := token.Resolve(cfg.TokenFile)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, central.ErrNoToken
	}

	authPath, err := token.AgentTokenPath(cfg.AuthTokenFile)
	if err != nil {
		return nil, nil, err
	}

	ua := "latticedns/" + Version
	agentClient := agent.NewClient(cfg.AgentURL, authPath, log.Logger).WithUserAgent(ua)
	centralClient := central.NewClient(cfg.CentralURL, tok, log.Logger).WithUserAgent(ua)
	return agentClient, centralClient, nil
}

// firstAddress picks the first parseable assigned address.
func firstAddress(cidrs []string) (string, error) {
	for _, cidr := range cidrs {
		addr, err := agent.ParseAddress(cidr)
		if err != nil {
			log.Logger.Warn().Str("address", cidr).Msg("Unparseable listen address skipped")
			continue
		}
		return addr.String(), nil
	}
	return "", fmt.Errorf("no parseable listen address")
}
