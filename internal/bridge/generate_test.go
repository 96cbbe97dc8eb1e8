package bridge

import (
	"math"
	"testing"
	"time"

	"modelbridge/internal/native"
)

func newTestGenerationBridge(t *testing.T, fr *fakeRunner) *GenerationBridge {
	t.Helper()
	g, err := NewGenerationBridgeWith(&fakeFactory{runner: fr}, native.Config{
		ModelPath:     "model.bin",
		TokenizerPath: "tokenizer.bin",
		Temperature:   0.8,
	}, DefaultSeqLen)
	if err != nil {
		t.Fatalf("NewGenerationBridgeWith: %v", err)
	}
	return g
}

func TestGenerateDeliversTokensInOrderThenStats(t *testing.T) {
	fr := &fakeRunner{
		tokens: []string{"a", "b", "c", "d"},
		stats: native.Stats{
			NumGeneratedTokens: 4,
			PromptEvalEndMs:    1000,
			InferenceEndMs:     1400,
		},
	}
	g := newTestGenerationBridge(t, fr)
	l := &recordingListener{}

	if st := g.Generate("prompt", l); st != int32(native.StatusOk) {
		t.Fatalf("generate status 0x%x", st)
	}
	results, stats := l.snapshot()
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if results[i] != want {
			t.Fatalf("result %d: %q, want %q", i, results[i], want)
		}
	}
	if len(stats) != 1 {
		t.Fatalf("expected exactly 1 stats callback, got %d", len(stats))
	}
	// 4 tokens over 400ms -> 10 tok/s.
	if math.Abs(stats[0]-10.0) > 1e-9 {
		t.Fatalf("tokens/s = %v, want 10.0", stats[0])
	}
}

func TestGenerateTokensPerSecondScaling(t *testing.T) {
	// 50 tokens over 2500ms -> 20 tok/s.
	fr := &fakeRunner{
		stats: native.Stats{
			NumGeneratedTokens: 50,
			PromptEvalEndMs:    10_000,
			InferenceEndMs:     12_500,
		},
	}
	g := newTestGenerationBridge(t, fr)
	l := &recordingListener{}

	g.Generate("prompt", l)
	_, stats := l.snapshot()
	if len(stats) != 1 {
		t.Fatalf("expected 1 stats callback, got %d", len(stats))
	}
	if math.Abs(stats[0]-20.0) > 1e-9 {
		t.Fatalf("tokens/s = %v, want 20.0", stats[0])
	}
}

func TestGenerateZeroElapsedReportsZero(t *testing.T) {
	fr := &fakeRunner{
		tokens: []string{"x"},
		stats: native.Stats{
			NumGeneratedTokens: 1,
			PromptEvalEndMs:    500,
			InferenceEndMs:     500,
		},
	}
	g := newTestGenerationBridge(t, fr)
	l := &recordingListener{}

	g.Generate("prompt", l)
	_, stats := l.snapshot()
	if len(stats) != 1 {
		t.Fatalf("expected 1 stats callback, got %d", len(stats))
	}
	if stats[0] != 0 {
		t.Fatalf("zero eval window must report 0 tok/s, got %v", stats[0])
	}
	if math.IsNaN(stats[0]) || math.IsInf(stats[0], 0) {
		t.Fatalf("rate must be finite, got %v", stats[0])
	}
}

func TestStopTerminatesInflightGenerate(t *testing.T) {
	fr := &fakeRunner{
		tokens: []string{"t0", "t1", "t2", "t3", "t4", "t5"},
		gate:   make(chan struct{}),
		ack:    make(chan struct{}),
		stop:   make(chan struct{}),
	}
	g := newTestGenerationBridge(t, fr)
	l := &recordingListener{}

	done := make(chan int32, 1)
	go func() { done <- g.Generate("prompt", l) }()

	// Let two tokens through, waiting for each delivery, then stop while
	// the run is blocked on the gate.
	fr.gate <- struct{}{}
	<-fr.ack
	fr.gate <- struct{}{}
	<-fr.ack
	g.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("generate did not return after stop")
	}

	results, stats := l.snapshot()
	if len(results) != 2 {
		t.Fatalf("expected 2 delivered tokens, got %d (%v)", len(results), results)
	}
	// The delivered prefix must be intact and in order.
	if results[0] != "t0" || results[1] != "t1" {
		t.Fatalf("delivered sequence corrupted: %v", results)
	}
	if len(stats) > 1 {
		t.Fatalf("stats delivered more than once: %v", stats)
	}
}

func TestLoadReturnsRawStatus(t *testing.T) {
	fr := &fakeRunner{loadStatus: native.StatusAccessFailed}
	g := newTestGenerationBridge(t, fr)
	if code := g.Load(); code != int32(native.StatusAccessFailed) {
		t.Fatalf("expected access-failed code, got 0x%x", code)
	}
	// No error translation happens on the load path; the code is the
	// whole contract.
	fr.loadStatus = native.StatusOk
	if code := g.Load(); code != int32(native.StatusOk) {
		t.Fatalf("expected ok code, got 0x%x", code)
	}
}

func TestSeqLenBoundsGeneration(t *testing.T) {
	fr := &fakeRunner{tokens: []string{"a", "b", "c", "d", "e"}}
	g, err := NewGenerationBridgeWith(&fakeFactory{runner: fr}, native.Config{ModelPath: "m"}, 3)
	if err != nil {
		t.Fatalf("NewGenerationBridgeWith: %v", err)
	}
	l := &recordingListener{}
	g.Generate("prompt", l)
	results, _ := l.snapshot()
	if len(results) != 3 {
		t.Fatalf("expected seq len to cap at 3 tokens, got %d", len(results))
	}
}
