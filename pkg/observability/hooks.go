// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about generation runs and layout writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerateHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Generate().OnGenerateStart(ctx, runID, upperBound)
//	// ... enumerate and write ...
//	observability.Generate().OnGenerateComplete(ctx, runID, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generate Hooks
// =============================================================================

// GenerateHooks receives events from a layout generation run.
type GenerateHooks interface {
	// OnGenerateStart records the start of a run and its candidate count
	// before overlap filtering.
	OnGenerateStart(ctx context.Context, runID string, upperBound int)

	// OnLayoutWritten records one accepted layout. index is 1-based.
	OnLayoutWritten(ctx context.Context, runID string, index int, path string)

	// OnGenerateComplete records the end of a run.
	OnGenerateComplete(ctx context.Context, runID string, count int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerateStart(context.Context, string, int)                          {}
func (NoopGenerateHooks) OnLayoutWritten(context.Context, string, int, string)                  {}
func (NoopGenerateHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers custom generate hooks.
// This should be called once at application startup before any run starts.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// Generate returns the registered generate hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
}
