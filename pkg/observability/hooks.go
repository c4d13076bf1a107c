// Package observability lets a deployment watch wordstorm without the
// libraries importing a metrics or tracing backend.
//
// The pipeline, the caches and the HTTP server report events to whatever
// hooks are installed; by default those are no-ops. A deployment installs
// its own once, before serving:
//
//	observability.SetPipelineHooks(prometheusHooks{})
//
// and the pipeline reports each stage:
//
//	observability.Pipeline().OnLayoutStart(ctx, len(words))
//	observability.Pipeline().OnLayoutComplete(ctx, placed, fallbacks, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks observes the count, layout and render stages.
type PipelineHooks interface {
	OnCountStart(ctx context.Context, texts int)
	OnCountComplete(ctx context.Context, words int, duration time.Duration, err error)

	// OnLayoutComplete reports how many words went through spiral placement
	// and how many needed the fallback position.
	OnLayoutStart(ctx context.Context, words int)
	OnLayoutComplete(ctx context.Context, placed, fallbacks int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes layout and artifact cache traffic. keyType is
// cache.KeyTypeLayout or cache.KeyTypeArtifact.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes served requests. route is the chi pattern, such as
// "/v1/clouds/{id}", not the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, route string, err error)
}

// Embed a Noop type to implement only the events you care about.
type (
	NoopPipelineHooks struct{}
	NoopCacheHooks    struct{}
	NoopHTTPHooks     struct{}
)

func (NoopPipelineHooks) OnCountStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnCountComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// slot holds one installed hook set.
type slot[T any] struct {
	mu  sync.RWMutex
	def T
	cur T
	set bool
}

func (s *slot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return s.def
	}
	return s.cur
}

func (s *slot[T]) put(h T, ok bool) {
	if !ok {
		return
	}
	s.mu.Lock()
	s.cur, s.set = h, true
	s.mu.Unlock()
}

func (s *slot[T]) reset() {
	s.mu.Lock()
	var zero T
	s.cur, s.set = zero, false
	s.mu.Unlock()
}

var (
	pipelineSlot = slot[PipelineHooks]{def: NoopPipelineHooks{}}
	cacheSlot    = slot[CacheHooks]{def: NoopCacheHooks{}}
	httpSlot     = slot[HTTPHooks]{def: NoopHTTPHooks{}}
)

// SetPipelineHooks installs h. A nil h leaves the current hooks in place.
func SetPipelineHooks(h PipelineHooks) { pipelineSlot.put(h, h != nil) }

// SetCacheHooks installs h. A nil h leaves the current hooks in place.
func SetCacheHooks(h CacheHooks) { cacheSlot.put(h, h != nil) }

// SetHTTPHooks installs h. A nil h leaves the current hooks in place.
func SetHTTPHooks(h HTTPHooks) { httpSlot.put(h, h != nil) }

func Pipeline() PipelineHooks { return pipelineSlot.get() }
func Cache() CacheHooks       { return cacheSlot.get() }
func HTTP() HTTPHooks         { return httpSlot.get() }

// Reset reinstalls the no-op hooks.
func Reset() {
	pipelineSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
