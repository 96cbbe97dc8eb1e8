package bridge

import (
	"modelbridge/internal/native"
)

// DefaultSeqLen bounds a generation run when the caller does not configure
// one.
const DefaultSeqLen = 128

// Listener receives streaming generation callbacks. Both methods are invoked
// synchronously on the goroutine driving Generate, mid-call; they must not
// block indefinitely or they stall that goroutine.
type Listener interface {
	// OnResult delivers one partial text result, in emission order.
	OnResult(text string)
	// OnStats delivers the run's tokens-per-second rate, at most once,
	// after the last OnResult.
	OnStats(tokensPerSecond float64)
}

// GenerationBridge exposes a runtime text-generation runner to the host. It
// holds exclusive ownership of the runner handle. Generate runs synchronously
// on the calling goroutine; Stop is the only method safe to call
// concurrently.
type GenerationBridge struct {
	runner native.Runner
	seqLen int
}

// NewGenerationBridge constructs the owned runner from model and tokenizer
// paths and a sampling temperature, using the default factory for this build.
func NewGenerationBridge(modelPath, tokenizerPath string, temperature float32) (*GenerationBridge, error) {
	return NewGenerationBridgeWith(native.DefaultFactory(), native.Config{
		ModelPath:     modelPath,
		TokenizerPath: tokenizerPath,
		Temperature:   temperature,
		Threads:       native.DefaultThreads(),
	}, DefaultSeqLen)
}

// NewGenerationBridgeWith constructs a GenerationBridge with an explicit
// factory, config and sequence length. Tests use this to inject fake runners.
func NewGenerationBridgeWith(f native.Factory, cfg native.Config, seqLen int) (*GenerationBridge, error) {
	r, err := f.NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	if seqLen <= 0 {
		seqLen = DefaultSeqLen
	}
	return &GenerationBridge{runner: r, seqLen: seqLen}, nil
}

// Load performs the runtime's model loading step and returns the raw status
// code for the caller to inspect.
func (g *GenerationBridge) Load() int32 {
	return int32(g.runner.Load())
}

// Generate streams tokens for prompt into the listener and returns the raw
// status code. The listener reference is held only for the duration of this
// call.
func (g *GenerationBridge) Generate(prompt string, l Listener) int32 {
	relay := &callbackRelay{listener: l}
	generateInflight.Inc()
	defer generateInflight.Dec()
	return int32(g.runner.Generate(prompt, g.seqLen, relay.onToken, relay.onStats))
}

// Stop requests early termination of an in-flight Generate. Cancellation is
// cooperative, between tokens; already-delivered results are unaffected.
func (g *GenerationBridge) Stop() { g.runner.Stop() }

// callbackRelay forwards runtime generation events to a host listener for
// exactly one Generate call.
type callbackRelay struct {
	listener Listener
}

func (r *callbackRelay) onToken(text string) {
	tokensGeneratedTotal.Inc()
	r.listener.OnResult(text)
}

func (r *callbackRelay) onStats(s native.Stats) {
	elapsed := s.InferenceEndMs - s.PromptEvalEndMs
	if elapsed <= 0 {
		// A non-positive eval window would make the rate infinite or
		// NaN; report zero instead and leave a trace.
		warnf("generation stats: non-positive eval window (%d ms), reporting 0 tok/s", elapsed)
		r.listener.OnStats(0)
		return
	}
	tps := float64(s.NumGeneratedTokens) / float64(elapsed) * float64(native.ScalingFactorUnitsPerSecond)
	r.listener.OnStats(tps)
}
