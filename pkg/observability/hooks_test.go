package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRunHooks{}
	h.OnLoadStart(ctx, "deps.json")
	h.OnLoadComplete(ctx, "deps.json", 12, time.Millisecond, nil)
	h.OnResolveComplete(ctx, 10, 1, time.Millisecond)
	h.OnRenderStart(ctx, "tree")
	h.OnRenderComplete(ctx, "tree", 512, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Run() should return NoopRunHooks by default")
	}

	custom := &recordingHooks{}
	SetRunHooks(custom)
	if Run() != custom {
		t.Error("SetRunHooks should set custom hooks")
	}

	Reset()
	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Reset() should restore NoopRunHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingHooks{}
	SetRunHooks(custom)
	SetRunHooks(nil)
	if Run() != custom {
		t.Error("SetRunHooks(nil) should keep existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingHooks{}
	SetRunHooks(rec)

	ctx := context.Background()
	Run().OnLoadStart(ctx, "deps.json")
	Run().OnRenderComplete(ctx, "pruned", 64, time.Millisecond, nil)

	want := []string{"load:deps.json", "render:pruned"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

type recordingHooks struct {
	NoopRunHooks
	events []string
}

func (r *recordingHooks) OnLoadStart(_ context.Context, path string) {
	r.events = append(r.events, "load:"+path)
}

func (r *recordingHooks) OnRenderComplete(_ context.Context, mode string, _ int, _ time.Duration, _ error) {
	r.events = append(r.events, "render:"+mode)
}
