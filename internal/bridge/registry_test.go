package bridge

import (
	"context"
	"testing"

	"modelbridge/internal/native"
	"modelbridge/pkg/values"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	h := func(ctx context.Context, call Call) ([]values.Value, error) { return nil, nil }
	if err := r.Register("load", h); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register("load", h); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := r.Register("", h); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if err := r.Register("x", nil); err == nil {
		t.Fatal("expected nil handler to fail")
	}
}

func TestEntryPointsTableIsComplete(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterAll(EntryPoints(nil, nil)); err != nil {
		t.Fatalf("register all: %v", err)
	}
	want := []string{
		EntryExecute, EntryForward, EntryGenerate,
		EntryLoad, EntryLoadMethod, EntryStop,
	}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d entry points, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry point %d: %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchUnregisteredName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Dispatch(context.Background(), "nope", Call{}); err == nil {
		t.Fatal("expected dispatch of unregistered name to fail")
	}
}

func TestNilBridgesFailFast(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterAll(EntryPoints(nil, nil)); err != nil {
		t.Fatalf("register all: %v", err)
	}
	for _, name := range []string{EntryForward, EntryExecute, EntryLoadMethod, EntryLoad, EntryGenerate, EntryStop} {
		_, err := r.Dispatch(context.Background(), name, Call{})
		if err == nil || !native.IsRuntimeUnavailable(err) {
			t.Fatalf("%s: expected runtime unavailable, got %v", name, err)
		}
	}
}

func TestDispatchGenerateThroughRegistry(t *testing.T) {
	fr := &fakeRunner{
		tokens: []string{"hi", "there"},
		stats:  native.Stats{NumGeneratedTokens: 2, PromptEvalEndMs: 0, InferenceEndMs: 100},
	}
	gb := newTestGenerationBridge(t, fr)
	r := NewRegistry()
	if err := r.RegisterAll(EntryPoints(nil, gb)); err != nil {
		t.Fatalf("register all: %v", err)
	}

	l := &recordingListener{}
	out, err := r.Dispatch(context.Background(), EntryGenerate, Call{Prompt: "p", Listener: l})
	if err != nil {
		t.Fatalf("dispatch generate: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected a single status value, got %d", len(out))
	}
	code, err := out[0].ToInt()
	if err != nil || code != int64(native.StatusOk) {
		t.Fatalf("expected ok status, got %d (err=%v)", code, err)
	}
	results, stats := l.snapshot()
	if len(results) != 2 || len(stats) != 1 {
		t.Fatalf("listener saw %d results, %d stats", len(results), len(stats))
	}
}

func TestDispatchGenerateStopsOnContextCancel(t *testing.T) {
	fr := &fakeRunner{
		tokens: []string{"a", "b", "c", "d"},
		gate:   make(chan struct{}),
		stop:   make(chan struct{}),
	}
	gb := newTestGenerationBridge(t, fr)
	r := NewRegistry()
	if err := r.RegisterAll(EntryPoints(nil, gb)); err != nil {
		t.Fatalf("register all: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &recordingListener{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = r.Dispatch(ctx, EntryGenerate, Call{Prompt: "p", Listener: l})
	}()

	// Let one token through, then cancel; the stop request unblocks the
	// gated runner.
	fr.gate <- struct{}{}
	cancel()
	<-done

	results, _ := l.snapshot()
	if len(results) > 2 {
		t.Fatalf("generation kept running after cancel: %v", results)
	}
}

func TestDispatchExecuteThroughRegistry(t *testing.T) {
	fm := newFakeModule()
	fm.methods["double"] = func(inputs []native.Value) ([]native.Value, native.Status) {
		return []native.Value{native.IntValue(inputs[0].Int() * 2)}, native.StatusOk
	}
	mb := newTestModuleBridge(t, fm)
	r := NewRegistry()
	if err := r.RegisterAll(EntryPoints(mb, nil)); err != nil {
		t.Fatalf("register all: %v", err)
	}

	out, err := r.Dispatch(context.Background(), EntryExecute, Call{
		Method: "double",
		Args:   []values.Value{values.FromInt(21)},
	})
	if err != nil {
		t.Fatalf("dispatch execute: %v", err)
	}
	got, err := out[0].ToInt()
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %d (err=%v)", got, err)
	}
}
