// Package config loads the TOML configuration shared by the example programs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/press"
)

// FileName is the conventional configuration file name.
const FileName = "press.toml"

// ErrInvalidLogLevel is returned for unknown logging levels.
var ErrInvalidLogLevel = errors.New("config: invalid log level")

// Config is the root configuration document.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Relay   RelayConfig   `toml:"relay"`
	Press   PressConfig   `toml:"press"`
}

// WindowConfig sizes the example window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// PointerEvents selects unified pointer events; false exercises the
	// legacy mouse and touch path.
	PointerEvents bool `toml:"pointer_events"`
	// Script is an optional path to an input script run on start.
	Script string `toml:"script"`
}

// LoggingConfig selects the slog level and handler format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// RelayConfig configures the websocket relay.
type RelayConfig struct {
	Addr string `toml:"addr"`
	Path string `toml:"path"`
}

// PressConfig holds the default tracker parameters.
type PressConfig struct {
	PreventFocusOnPress       bool    `toml:"prevent_focus_on_press"`
	ShouldCancelOnPointerExit bool    `toml:"cancel_on_pointer_exit"`
	AllowTextSelectionOnPress bool    `toml:"allow_text_selection"`
	FeedbackScale             float64 `toml:"feedback_scale"`
	FeedbackSeconds           float64 `toml:"feedback_seconds"`
}

// Parameters converts the configured defaults to tracker parameters.
func (p PressConfig) Parameters() press.Parameters {
	return press.Parameters{
		PreventFocusOnPress:       p.PreventFocusOnPress,
		ShouldCancelOnPointerExit: p.ShouldCancelOnPointerExit,
		AllowTextSelectionOnPress: p.AllowTextSelectionOnPress,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:         640,
			Height:        480,
			Title:         "press",
			PointerEvents: true,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Relay:   RelayConfig{Addr: "127.0.0.1:8088", Path: "/press"},
		Press: PressConfig{
			FeedbackScale:   0.92,
			FeedbackSeconds: 0.12,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg to path, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges and canonicalizes the logging settings.
func (c *Config) Validate() error {
	level, err := NormalizeLogLevel(c.Logging.Level)
	if err != nil {
		return err
	}
	c.Logging.Level = level

	format, err := NormalizeFormat(c.Logging.Format)
	if err != nil {
		return err
	}
	c.Logging.Format = format

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("config: window.width and window.height must be positive")
	}
	if c.Press.FeedbackScale <= 0 || c.Press.FeedbackScale > 1 {
		return fmt.Errorf("config: press.feedback_scale must be in (0, 1], got %v", c.Press.FeedbackScale)
	}
	if c.Press.FeedbackSeconds < 0 {
		return errors.New("config: press.feedback_seconds must not be negative")
	}
	if c.Relay.Path != "" && !strings.HasPrefix(c.Relay.Path, "/") {
		return fmt.Errorf("config: relay.path %q must start with /", c.Relay.Path)
	}
	return nil
}

// NormalizeLogLevel validates and lowercases known logging levels.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidLogLevel, level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return "json", nil
	case "console", "text":
		return "text", nil
	default:
		return "", fmt.Errorf("config: unsupported log format %q", format)
	}
}
