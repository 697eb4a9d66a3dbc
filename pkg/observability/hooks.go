// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; nothing is recorded
// unless main (or a test) installs its own implementation. The CLI installs
// a logging implementation when --verbose is set.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSceneHooks(&mySceneHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scenes().OnSceneStart(ctx, "future-scaling")
//	// ... build and render ...
//	observability.Scenes().OnSceneComplete(ctx, "future-scaling", file, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scene Hooks
// =============================================================================

// SceneHooks receives events for each diagram scene a run generates.
type SceneHooks interface {
	// OnRunStart is called once before the first scene with the run ID.
	OnRunStart(ctx context.Context, runID string, scenes int)

	// OnSceneStart is called before a scene is built.
	OnSceneStart(ctx context.Context, key string)

	// OnSceneComplete is called after a scene finished, successfully or not.
	OnSceneComplete(ctx context.Context, key, file string, duration time.Duration, err error)

	// OnRunComplete is called once after the last scene.
	OnRunComplete(ctx context.Context, runID string, succeeded, total int, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the Graphviz rendering delegate.
type RenderHooks interface {
	// OnRenderStart records the start of a render in the given format.
	OnRenderStart(ctx context.Context, format string, dotSize int)

	// OnRenderComplete records the end of a render and the encoded size.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnRunStart(context.Context, string, int)                               {}
func (NoopSceneHooks) OnSceneStart(context.Context, string)                                  {}
func (NoopSceneHooks) OnSceneComplete(context.Context, string, string, time.Duration, error) {}
func (NoopSceneHooks) OnRunComplete(context.Context, string, int, int, time.Duration)        {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sceneHooks  SceneHooks  = NoopSceneHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetSceneHooks registers custom scene hooks.
// This should be called once at application startup before any run.
func SetSceneHooks(h SceneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sceneHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any run.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Scenes returns the registered scene hooks.
func Scenes() SceneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sceneHooks
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
	sceneHooks = NoopSceneHooks{}
	renderHooks = NoopRenderHooks{}
}
