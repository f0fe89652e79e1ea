// Package observability lets an embedding program watch a BOM run without
// the pipeline depending on any metrics or tracing backend.
//
// Register hooks once at startup:
//
//	observability.SetPipelineHooks(&myHooks{})
//
// The pipeline reports each stage:
//
//	observability.Pipeline().OnScanStart(ctx, root)
//	// ... scan and parse ...
//	observability.Pipeline().OnScanComplete(ctx, root, poms, skipped, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from a BOM run.
type PipelineHooks interface {
	// OnScanStart fires before the repository walk.
	OnScanStart(ctx context.Context, root string)

	// OnScanComplete fires after every POM has been parsed and reduced.
	// poms counts files read; skipped counts files dropped by packaging or
	// path layout.
	OnScanComplete(ctx context.Context, root string, poms, skipped int, duration time.Duration, err error)

	// OnEmitComplete fires after the BOM is written (path is empty on dry runs).
	OnEmitComplete(ctx context.Context, path string, dependencies int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnScanStart(context.Context, string) {}
func (NoopPipelineHooks) OnScanComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnEmitComplete(context.Context, string, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
