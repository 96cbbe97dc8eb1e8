//go:build llama

package native

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	llama "github.com/go-skynet/go-llama.cpp"
)

type llamaFactory struct{}

// DefaultFactory returns the llama.cpp-backed runtime factory.
func DefaultFactory() Factory { return llamaFactory{} }

func (llamaFactory) NewModule(cfg Config) (Module, error) {
	// The llama backend exposes text generation only; graph-method
	// execution needs a different runtime backing.
	return nil, ErrRuntimeUnavailable("method execution is not supported by the llama backend")
}

func (llamaFactory) NewRunner(cfg Config) (Runner, error) {
	if strings.TrimSpace(cfg.ModelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = DefaultThreads()
	}
	ctxSize := cfg.ContextSize
	if ctxSize <= 0 {
		ctxSize = 2048
	}
	return &llamaRunner{
		modelPath:   cfg.ModelPath,
		temperature: cfg.Temperature,
		threads:     threads,
		ctxSize:     ctxSize,
	}, nil
}

// llamaRunner owns the loaded model. Load is separated from construction so
// the caller can inspect the load status code, matching the bridge contract.
type llamaRunner struct {
	modelPath   string
	temperature float32
	threads     int
	ctxSize     int

	model   *llama.LLama
	stopped atomic.Bool
}

func (r *llamaRunner) Load() Status {
	if r.model != nil {
		return StatusOk
	}
	m, err := llama.New(r.modelPath, llama.SetContext(r.ctxSize))
	if err != nil {
		return StatusAccessFailed
	}
	r.model = m
	return StatusOk
}

func (r *llamaRunner) Generate(prompt string, seqLen int, onToken func(string), onStats func(Stats)) Status {
	if r.model == nil {
		if st := r.Load(); !st.Ok() {
			return st
		}
	}
	r.stopped.Store(false)

	var generated int64
	startMs := time.Now().UnixMilli()
	promptEvalEndMs := startMs
	r.model.SetTokenCallback(func(tok string) bool {
		if r.stopped.Load() {
			return false
		}
		if generated == 0 {
			promptEvalEndMs = time.Now().UnixMilli()
		}
		generated++
		onToken(tok)
		return true
	})

	po := []llama.PredictOption{
		llama.SetTokens(maxInt(1, seqLen)),
		llama.SetThreads(maxInt(1, r.threads)),
		llama.SetTemperature(r.temperature),
	}
	_, err := r.model.Predict(prompt, po...)
	endMs := time.Now().UnixMilli()
	if err != nil && !r.stopped.Load() {
		return StatusInternal
	}
	onStats(Stats{
		NumGeneratedTokens: generated,
		ModelLoadEndMs:     startMs,
		PromptEvalEndMs:    promptEvalEndMs,
		InferenceStartMs:   promptEvalEndMs,
		InferenceEndMs:     endMs,
	})
	return StatusOk
}

func (r *llamaRunner) Stop() { r.stopped.Store(true) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
