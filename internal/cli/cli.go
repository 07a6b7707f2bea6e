// Package cli implements the permtrace command-line interface.
//
// The commands trace the next-lexicographic-permutation algorithm on an
// input string and present the trace in several ways:
//   - trace: print every recorded step with highlighted characters
//   - list: print only the generated permutations
//   - play: step through the trace in an interactive terminal player
//   - graph: render the chain of permutations with Graphviz
//   - config: manage the TOML configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permtrace/pkg/config"
	"github.com/matzehuels/permtrace/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "permtrace"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config *config.Config

	configPath string
	noColor    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// colorEnabled reports whether output may be styled.
func (c *CLI) colorEnabled() bool {
	return c.Config.Display.Color && !c.noColor
}

// theme returns the output theme for the current settings.
func (c *CLI) theme() theme {
	return newTheme(c.colorEnabled())
}

// =============================================================================
// Runner
// =============================================================================

// maxInputLen converts the configured limit to the runner's convention,
// where a negative limit disables the check.
func (c *CLI) maxInputLen() int {
	if n := c.Config.Limits.MaxInputLen; n > 0 {
		return n
	}
	return -1
}

// trace runs the generator on input.
func (c *CLI) trace(ctx context.Context, input string) (*pipeline.Run, error) {
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	return runner.Trace(ctx, pipeline.Options{
		Input:       input,
		MaxInputLen: c.maxInputLen(),
	})
}
