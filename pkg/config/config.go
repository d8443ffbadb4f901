package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults for settings that have sensible built-in values. URLs are
// left empty here; the central and agent clients fall back to their own
// defaults when given an empty base URL.
const (
	DefaultHistoryDB  = "/var/lib/latticedns/history.db"
	DefaultListenAddr = ":9053"
	DefaultLogLevel   = "info"
	DefaultInterval   = 60 * time.Second
)

var validate = validator.New()

// Config is the resolved runtime configuration, assembled once at
// startup and passed down by value. Core packages never read the
// environment or the filesystem for settings themselves; everything
// they need arrives through this struct.
type Config struct {
	NetworkID     string `yaml:"network" validate:"omitempty,len=16,hexadecimal"`
	Domain        string `yaml:"domain"`
	TokenFile     string `yaml:"token_file"`
	AuthTokenFile string `yaml:"authtoken_file"`
	CentralURL    string `yaml:"central_url" validate:"omitempty,http_url"`
	AgentURL      string `yaml:"agent_url" validate:"omitempty,http_url"`
	HistoryDB     string `yaml:"history_db"`
	ResolvConf    string `yaml:"resolvconf"`
	Verify        bool   `yaml:"verify"`
	Listen        string `yaml:"listen"`
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	JSONLogs      bool   `yaml:"json_logs"`

	// Interval drives watch mode. Flag-only; not read from YAML.
	Interval time.Duration `yaml:"-"`
}

// Defaults returns a Config carrying only built-in defaults.
func Defaults() *Config {
	return &Config{
		HistoryDB: DefaultHistoryDB,
		Listen:    DefaultListenAddr,
		LogLevel:  DefaultLogLevel,
		Interval:  DefaultInterval,
	}
}

// Load builds the configuration: built-in defaults, then the optional
// YAML file at path, then LATTICE_* environment overrides, validated at
// the end. Flags are layered on top by the CLI afterwards.
func Load(path string) (*Config, error) {
	return LoadFrom(path, os.LookupEnv)
}

// LoadFrom is Load with an injected environment lookup, so tests never
// mutate the process environment.
func LoadFrom(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(lookup)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats. Presence requirements (a sync needs a
// network ID) are enforced by the commands that have them.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	c.NetworkID = envOr(lookup, "LATTICE_NETWORK", c.NetworkID)
	c.Domain = envOr(lookup, "LATTICE_DOMAIN", c.Domain)
	c.TokenFile = envOr(lookup, "LATTICE_TOKEN_FILE", c.TokenFile)
	c.AuthTokenFile = envOr(lookup, "LATTICE_AUTHTOKEN_FILE", c.AuthTokenFile)
	c.CentralURL = envOr(lookup, "LATTICE_CENTRAL_URL", c.CentralURL)
	c.AgentURL = envOr(lookup, "LATTICE_AGENT_URL", c.AgentURL)
	c.HistoryDB = envOr(lookup, "LATTICE_HISTORY_DB", c.HistoryDB)
	c.LogLevel = envOr(lookup, "LATTICE_LOG_LEVEL", c.LogLevel)
}

func envOr(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}
