// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about projection runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of any particular metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetProjectionHooks(&myProjectionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Projection().OnRunStart(ctx, jobID, label)
//	// ... run phases ...
//	observability.Projection().OnRunComplete(ctx, jobID, cancelled, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Projection Hooks
// =============================================================================

// ProjectionHooks receives events from multimode projection jobs.
type ProjectionHooks interface {
	// OnRunStart records the start of a job. label identifies the projected
	// category pair.
	OnRunStart(ctx context.Context, jobID, label string)

	// OnPhaseComplete records the completion of one phase of a job.
	OnPhaseComplete(ctx context.Context, jobID, phase string, duration time.Duration)

	// OnLookupError records a recovered neighbor or edge lookup failure
	// while building a bi-adjacency matrix.
	OnLookupError(ctx context.Context, jobID, node string, err error)

	// OnRunComplete records the end of a job, whether it finished or stopped early.
	OnRunComplete(ctx context.Context, jobID string, cancelled bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopProjectionHooks is a no-op implementation of ProjectionHooks.
type NoopProjectionHooks struct{}

func (NoopProjectionHooks) OnRunStart(context.Context, string, string)                     {}
func (NoopProjectionHooks) OnPhaseComplete(context.Context, string, string, time.Duration) {}
func (NoopProjectionHooks) OnLookupError(context.Context, string, string, error)           {}
func (NoopProjectionHooks) OnRunComplete(context.Context, string, bool, time.Duration)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	projectionHooks ProjectionHooks = NoopProjectionHooks{}
	hooksMu         sync.RWMutex
)

// SetProjectionHooks registers custom projection hooks.
// This should be called once at application startup before any job runs.
func SetProjectionHooks(h ProjectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		projectionHooks = h
	}
}

// Projection returns the registered projection hooks.
func Projection() ProjectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return projectionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	projectionHooks = NoopProjectionHooks{}
}
