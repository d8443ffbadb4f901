package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide root logger. The CLI resolves its
// configuration, calls Init once, and hands Logger to component
// constructors, which derive children via Component. Before Init runs
// it logs to stderr in console form, so early failures stay visible.
var Logger = zerolog.New(console(os.Stderr)).With().Timestamp().Logger()

// Level names accepted by Init. They match the values the config layer
// validates, so a Level can be built from a config string directly.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Config holds logging configuration
type Config struct {
	Level      Level
	JSONOutput bool
	Output     io.Writer
}

// Init sets the global level and rebuilds Logger. Logs go to stderr by
// default so command output on stdout stays machine-consumable; an
// unknown or empty level falls back to info rather than failing startup.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(string(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if !cfg.JSONOutput {
		output = console(output)
	}
	Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Component derives a child logger carrying the component name, keeping
// the field key consistent across packages.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}

func console(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}
