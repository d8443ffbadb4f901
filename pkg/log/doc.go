/*
Package log provides structured logging for latticedns using zerolog.

The log package wraps the zerolog library with a process-wide root
logger, level configuration, and a helper for deriving per-component
child loggers. All logs include timestamps and go to stderr by default,
keeping stdout free for command output.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Root Logger                      │          │
	│  │  - Package-level zerolog instance           │          │
	│  │  - Console to stderr before Init            │          │
	│  │  - Rebuilt once by log.Init()               │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stderr, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - Component(parent, "central")             │          │
	│  │  - Injected into constructors               │          │
	│  │  - Consistent "component" field key         │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "central",                  │          │
	│  │    "time": "2026-03-02T10:30:00Z",         │          │
	│  │    "message": "dns published"               │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF dns published component=central │         │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Root Logger:
  - Package-level zerolog.Logger instance
  - Usable before Init (console to stderr), rebuilt by Init
  - Passed into component constructors by the CLI
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (defaults to stderr)

Component Derivation:
  - Component(parent, name) returns a child with the component field
  - Constructors call it on their injected parent logger
  - Keeps the field key identical across packages

# Usage

Initializing the Logger:

	import "github.com/latticelabs/latticedns/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

	// Console output (development)
	log.Init(log.Config{
		Level: log.DebugLevel,
	})

	// Custom output (file)
	file, _ := os.OpenFile("/var/log/latticedns.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     file,
	})

Structured Logging:

	log.Logger.Info().
		Str("network_id", "8a56c2e21c000001").
		Int("members", 12).
		Msg("Members ingested")

	log.Logger.Error().
		Err(err).
		Str("server", "10.147.20.1").
		Msg("DNS publish failed")

Component Loggers:

	// Inside a constructor taking a parent zerolog.Logger
	func NewClient(baseURL string, tok token.Token, logger zerolog.Logger) *Client {
		return &Client{
			logger: log.Component(logger, "central"),
		}
	}

	// The CLI hands the root logger down
	client := central.NewClient(cfg.CentralURL, tok, log.Logger)

# Integration Points

This package integrates with:

  - pkg/central: component "central" on network fetches and publishes
  - pkg/agent: component "agent" on node agent queries
  - pkg/ingest: component "ingest" on per-member skips and summaries
  - pkg/watch: components "watch" and "http" on rounds and endpoints
  - pkg/history: component "history" on audit store writes
  - cmd/latticedns: calls Init from resolved CLI configuration

# Log Output Examples

JSON Format (Production):

	{"level":"info","component":"agent","time":"2026-03-02T10:30:00Z","message":"Assigned addresses fetched"}
	{"level":"info","component":"watch","network_id":"8a56c2e21c000001","time":"2026-03-02T10:30:01Z","message":"DNS settings published"}
	{"level":"warn","component":"ingest","member_id":"member-ab12cd34","error":"hostname is empty","time":"2026-03-02T10:30:02Z","message":"Member name not entered into catalog"}

Console Format (Development):

	10:30:00 INF Assigned addresses fetched component=agent
	10:30:01 INF DNS settings published component=watch network_id=8a56c2e21c000001
	10:30:02 WRN Member name not entered into catalog component=ingest member_id=member-ab12cd34 error="hostname is empty"

# Design Patterns

Injected Logger Pattern:
  - Constructors accept a parent zerolog.Logger
  - Tests pass a silent or buffered logger
  - The CLI passes log.Logger after Init

Structured Logging Pattern:
  - Use typed fields (.Str, .Int, .Err)
  - Enables log aggregation and querying
  - Parseable by log analysis tools

Error Logging Pattern:
  - Always use .Err(err) for error objects
  - Consistent error format across the codebase

# Security

Log Content:
  - Never log token values; log their source (file/env) instead
  - Redact authtoken contents in agent error paths

Log Injection:
  - Member names are untrusted input; log via .Str() fields only

# Best Practices

Do:
  - Use Info level for production
  - Use structured fields for queryable data
  - Derive component loggers with Component
  - Log errors with .Err()
  - Include context (network ID, member ID)

Don't:
  - Log sensitive data (tokens, authtoken file contents)
  - Use Debug level in production
  - Log in tight loops
  - Concatenate values into messages (use .Str, .Int)

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - 12-Factor App Logs: https://12factor.net/logs
*/
package log
