package observability

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

// recorder captures the stage events a layout run reports.
type recorder struct {
	NoopPipelineHooks
	events []string
	placed int
	missed int
}

func (r *recorder) OnLayoutStart(_ context.Context, words int) {
	r.events = append(r.events, "layout-start")
}

func (r *recorder) OnLayoutComplete(_ context.Context, placed, fallbacks int, _ time.Duration, err error) {
	r.events = append(r.events, "layout-done")
	r.placed, r.missed = placed, fallbacks
}

type hitCounter struct {
	NoopCacheHooks
	hits map[string]int
}

func (h *hitCounter) OnCacheHit(_ context.Context, kind string) {
	if h.hits == nil {
		h.hits = map[string]int{}
	}
	h.hits[kind]++
}

type errorLog struct {
	NoopHTTPHooks
	paths []string
}

func (e *errorLog) OnError(_ context.Context, _, path string, _ error) {
	e.paths = append(e.paths, path)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	Pipeline().OnLayoutComplete(ctx, 10, 1, time.Millisecond, nil)
	Cache().OnCacheSet(ctx, "artifact", 512)
	HTTP().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestInstalledHooksReceiveEvents(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	rec := &recorder{}
	hits := &hitCounter{}
	errs := &errorLog{}
	SetPipelineHooks(rec)
	SetCacheHooks(hits)
	SetHTTPHooks(errs)

	Pipeline().OnLayoutStart(ctx, 42)
	Pipeline().OnLayoutComplete(ctx, 40, 2, time.Second, nil)
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheHit(ctx, "artifact")
	HTTP().OnError(ctx, "POST", "/v1/render/{format}", errors.New("bad format"))

	if want := []string{"layout-start", "layout-done"}; !slices.Equal(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if rec.placed != 40 || rec.missed != 2 {
		t.Errorf("placed/fallbacks = %d/%d, want 40/2", rec.placed, rec.missed)
	}
	if hits.hits["layout"] != 2 || hits.hits["artifact"] != 1 {
		t.Errorf("hits = %v", hits.hits)
	}
	if len(errs.paths) != 1 || errs.paths[0] != "/v1/render/{format}" {
		t.Errorf("error paths = %v", errs.paths)
	}
}

func TestResetRestoresNoop(t *testing.T) {
	SetPipelineHooks(&recorder{})
	SetCacheHooks(&hitCounter{})
	SetHTTPHooks(&errorLog{})
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() after Reset = %T", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() after Reset = %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() after Reset = %T", HTTP())
	}
}

func TestNilKeepsCurrentHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recorder{}
	hits := &hitCounter{}
	errs := &errorLog{}
	SetPipelineHooks(rec)
	SetCacheHooks(hits)
	SetHTTPHooks(errs)

	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Pipeline() != PipelineHooks(rec) {
		t.Error("SetPipelineHooks(nil) replaced the installed hooks")
	}
	if Cache() != CacheHooks(hits) {
		t.Error("SetCacheHooks(nil) replaced the installed hooks")
	}
	if HTTP() != HTTPHooks(errs) {
		t.Error("SetHTTPHooks(nil) replaced the installed hooks")
	}
}
