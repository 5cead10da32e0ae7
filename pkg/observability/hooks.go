// Package observability provides hooks for timing and tracing deptree runs.
//
// Libraries emit events through the registered hooks; the CLI registers a
// logging implementation at startup and everything else gets no-ops. No
// metrics backend is linked in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myHooks{})
//	    // ... run application
//	}
//
// Callers emit events around each phase:
//
//	observability.Run().OnLoadStart(ctx, path)
//	g, err := io.ImportJSON(path)
//	observability.Run().OnLoadComplete(ctx, path, g.NodeCount(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RunHooks receives events from a single load/resolve/render run.
type RunHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, nodeCount int, duration time.Duration, err error)

	// Resolve events
	OnResolveComplete(ctx context.Context, reachable, conflicts int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, mode string)
	OnRenderComplete(ctx context.Context, mode string, bytes int, duration time.Duration, err error)
}

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnLoadStart(context.Context, string)                                 {}
func (NoopRunHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)   {}
func (NoopRunHooks) OnResolveComplete(context.Context, int, int, time.Duration)          {}
func (NoopRunHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRunHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	runHooks RunHooks = NoopRunHooks{}
	hooksMu  sync.RWMutex
)

// SetRunHooks registers custom run hooks. A nil argument is ignored.
// This should be called once at application startup.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Reset restores the no-op defaults. Useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
}
