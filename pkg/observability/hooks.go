// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about trace generation and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are fired by the pipeline runner, never by the generator in
// package perm, which stays free of side effects.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTraceHooks(&myTraceHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Trace().OnTraceStart(ctx, runID, input)
//	// ... generate ...
//	observability.Trace().OnTraceComplete(ctx, runID, stats)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Trace Hooks
// =============================================================================

// TraceStats summarizes a finished generator run.
type TraceStats struct {
	Input        string
	Steps        int
	Permutations int
	Status       string
	Duration     time.Duration
}

// TraceHooks receives events from trace generation.
type TraceHooks interface {
	// OnTraceStart records that generation of input began.
	OnTraceStart(ctx context.Context, runID, input string)

	// OnTraceComplete records a finished run.
	OnTraceComplete(ctx context.Context, runID string, stats TraceStats)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from trace rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, runID, format string)
	OnRenderComplete(ctx context.Context, runID, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTraceHooks is a no-op implementation of TraceHooks.
type NoopTraceHooks struct{}

func (NoopTraceHooks) OnTraceStart(context.Context, string, string)         {}
func (NoopTraceHooks) OnTraceComplete(context.Context, string, TraceStats) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	traceHooks  TraceHooks  = NoopTraceHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetTraceHooks registers custom trace hooks.
// This should be called once at application startup before any traces run.
func SetTraceHooks(h TraceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		traceHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Trace returns the registered trace hooks.
func Trace() TraceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return traceHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	traceHooks = NoopTraceHooks{}
	renderHooks = NoopRenderHooks{}
}
