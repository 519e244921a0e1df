// Package logging builds the slog loggers used by the example programs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phanxgames/press/internal/config"
)

// Options select a logger's level, handler format and destination. Level and
// Format accept the spellings the config file does. A nil Output writes to
// stderr.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// FromConfig returns Options for the logging section of a config file.
func FromConfig(c config.LoggingConfig) Options {
	return Options{Level: c.Level, Format: c.Format}
}

// New returns a logger for opts.
func New(opts Options) (*slog.Logger, error) {
	name, err := config.NormalizeLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	format, err := config.NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: level, ReplaceAttr: utcTime}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(out, ho)), nil
	}
	return slog.New(slog.NewTextHandler(out, ho)), nil
}

// utcTime renders record times as UTC RFC 3339.
func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339))
	}
	return a
}
