package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how loggers are constructed.
type Config struct {
	Level  string    // minimum level emitted: debug, info, warn or error
	Pretty bool      // human-readable console output instead of JSON
	Output io.Writer // defaults to os.Stderr; stdout carries response bodies
}

// DefaultConfig returns the configuration a quiet run uses. Only
// errors surface unless debug tracing is switched on.
func DefaultConfig() Config {
	return Config{
		Level:  "error",
		Pretty: true,
	}
}

// New creates a logger from the given configuration.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
		}
	}
	return zerolog.New(output).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

// NewWithComponent creates a logger tagged with a component name.
func NewWithComponent(cfg Config, component string) zerolog.Logger {
	return New(cfg).With().Str("component", component).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	// Unknown names fall back to the quiet default.
	return zerolog.ErrorLevel
}
