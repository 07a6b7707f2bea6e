// Package config provides configuration loading and management for permtrace.
//
// Configuration is stored as TOML and overlaid with environment variables.
// Every setting has a default, so a missing file is not an error.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Duration] is a time.Duration that reads and writes as "1.5s"
//
// Configuration priority (highest to lowest):
//  1. Environment variables (PERMTRACE_ prefix)
//  2. Config file at PERMTRACE_CONFIG, the --config flag, or [Path]
//  3. [DefaultConfig] defaults
//
// Example file:
//
//	[playback]
//	interval = "1.5s"
//
//	[display]
//	count_mode = "factorial"
//	color = true
//
//	[limits]
//	max_input_len = 10
package config

import (
	"fmt"
	"time"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/playback"
)

const (
	// DefaultInterval is the autoplay delay between steps.
	DefaultInterval = 1500 * time.Millisecond

	// DefaultMaxInputLen bounds input length. Ten characters already allow
	// 3,628,800 permutations, far beyond what one trace records.
	DefaultMaxInputLen = 10

	// MinInterval is the fastest autoplay accepted.
	MinInterval = 50 * time.Millisecond
)

// Config represents the root configuration structure.
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Display  DisplayConfig  `toml:"display"`
	Limits   LimitsConfig   `toml:"limits"`
}

// PlaybackConfig controls the interactive player.
type PlaybackConfig struct {
	// Interval is the delay between steps while autoplaying.
	Interval Duration `toml:"interval"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	// CountMode selects how "total permutations" is computed:
	// "factorial" shows n!, "distinct" shows the exact distinct count.
	CountMode playback.CountMode `toml:"count_mode"`

	// Color enables ANSI styling. When false output is plain text.
	Color bool `toml:"color"`
}

// LimitsConfig bounds what the shell accepts.
type LimitsConfig struct {
	// MaxInputLen is the maximum input length in characters. Zero disables
	// the check.
	MaxInputLen int `toml:"max_input_len"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{Interval: Duration(DefaultInterval)},
		Display: DisplayConfig{
			CountMode: playback.CountFactorial,
			Color:     true,
		},
		Limits: LimitsConfig{MaxInputLen: DefaultMaxInputLen},
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if d := time.Duration(c.Playback.Interval); d < MinInterval {
		return errors.New(errors.ErrCodeInvalidConfig, "playback.interval %s is below the minimum %s", d, MinInterval)
	}
	if err := playback.ValidateCountMode(c.Display.CountMode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "display.count_mode")
	}
	if c.Limits.MaxInputLen < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limits.max_input_len must not be negative")
	}
	return nil
}

// Duration is a time.Duration encoded as a Go duration string.
type Duration time.Duration

// UnmarshalText parses strings such as "1.5s" or "800ms".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the duration in Go notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}
