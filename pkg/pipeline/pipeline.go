// Package pipeline runs the permutation trace generator for CLI entry points.
//
// The generator in package perm is a pure function. This package wraps it
// with everything a caller needs around a run: input validation, a run ID,
// timing, structured logging and observability hooks, plus rendering of the
// finished trace to DOT or SVG.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	run, err := runner.Trace(ctx, pipeline.Options{Input: "abc"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(run.Result.Permutations)
//
//	svg, err := runner.Render(ctx, run, pipeline.RenderOptions{Format: pipeline.FormatSVG})
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/perm"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultMaxInputLen is the input length limit applied when Options leaves
// MaxInputLen at zero. Set it negative to disable the limit.
const DefaultMaxInputLen = 10

// Format constants for rendered output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures a trace run.
type Options struct {
	// Input is the string to permute. Leading and trailing whitespace is
	// trimmed before tracing.
	Input string

	// MaxInputLen rejects longer inputs. Zero means DefaultMaxInputLen,
	// negative means no limit.
	MaxInputLen int
}

// RenderOptions configures rendering of a finished run.
type RenderOptions struct {
	Format   string
	Vertical bool
	Indices  bool
}

// Run is a finished trace.
type Run struct {
	// ID identifies the run in logs and hooks.
	ID string

	// Input is the trimmed input that was traced.
	Input string

	// Result is the generator output.
	Result perm.Result

	// Summary describes the input.
	Summary perm.Summary

	// Duration is the time spent inside the generator.
	Duration time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a render format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// ParseKinds converts a comma-separated list of step kinds into a set.
// An empty string yields a nil set, meaning "all kinds".
func ParseKinds(s string) (map[perm.Kind]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	set := make(map[perm.Kind]bool)
	for _, part := range strings.Split(s, ",") {
		k, err := perm.ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidKind, err, "kinds")
		}
		set[k] = true
	}
	return set, nil
}

// Normalize trims the input and applies defaults.
func (o *Options) Normalize() {
	o.Input = strings.TrimSpace(o.Input)
	if o.MaxInputLen == 0 {
		o.MaxInputLen = DefaultMaxInputLen
	}
}

// Validate normalizes the options and checks the input.
func (o *Options) Validate() error {
	o.Normalize()
	if err := errors.ValidateInput(o.Input, o.MaxInputLen); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
