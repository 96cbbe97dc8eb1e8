package bridge

import (
	"sync"
	"sync/atomic"

	"modelbridge/internal/native"
)

// fakeModule is an in-memory native.Module with programmable methods.
type fakeModule struct {
	methods map[string]func(inputs []native.Value) ([]native.Value, native.Status)
	loaded  []string

	lastMethod string
	lastInputs []native.Value
}

func newFakeModule() *fakeModule {
	return &fakeModule{methods: make(map[string]func([]native.Value) ([]native.Value, native.Status))}
}

func (m *fakeModule) LoadMethod(name string) native.Status {
	if _, ok := m.methods[name]; !ok {
		return native.StatusNotFound
	}
	m.loaded = append(m.loaded, name)
	return native.StatusOk
}

func (m *fakeModule) Execute(name string, inputs []native.Value) ([]native.Value, native.Status) {
	m.lastMethod = name
	m.lastInputs = inputs
	fn, ok := m.methods[name]
	if !ok {
		return nil, native.StatusNotFound
	}
	return fn(inputs)
}

// fakeRunner is an in-memory native.Runner that emits a fixed token sequence
// and a fixed stats report. An optional gate channel paces token emission so
// tests can interleave Stop with an in-flight Generate; such tests must also
// set the stop channel so Stop unblocks a gated run. When ack is set, the
// runner sends on it after delivering each token, so a test can wait until a
// token has actually reached the listener before its next move.
type fakeRunner struct {
	tokens []string
	stats  native.Stats

	loadStatus native.Status
	gate       chan struct{}
	ack        chan struct{}
	stop       chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool
	loadCalls  int32

	mu      sync.Mutex
	emitted []string
}

func (r *fakeRunner) Load() native.Status {
	atomic.AddInt32(&r.loadCalls, 1)
	return r.loadStatus
}

func (r *fakeRunner) Generate(prompt string, seqLen int, onToken func(string), onStats func(native.Stats)) native.Status {
	n := len(r.tokens)
	if seqLen < n {
		n = seqLen
	}
	generated := int64(0)
	for i := 0; i < n; i++ {
		if r.gate != nil {
			select {
			case <-r.gate:
			case <-r.stop:
			}
		}
		if r.stopped.Load() {
			break
		}
		tok := r.tokens[i]
		r.mu.Lock()
		r.emitted = append(r.emitted, tok)
		r.mu.Unlock()
		onToken(tok)
		generated++
		if r.ack != nil {
			r.ack <- struct{}{}
		}
	}
	stats := r.stats
	if stats.NumGeneratedTokens == 0 {
		stats.NumGeneratedTokens = generated
	}
	onStats(stats)
	return native.StatusOk
}

func (r *fakeRunner) Stop() {
	r.stopped.Store(true)
	if r.stop != nil {
		r.stopOnce.Do(func() { close(r.stop) })
	}
}

// fakeFactory hands out prebuilt fakes.
type fakeFactory struct {
	module *fakeModule
	runner *fakeRunner

	moduleErr error
	runnerErr error
}

func (f *fakeFactory) NewModule(cfg native.Config) (native.Module, error) {
	if f.moduleErr != nil {
		return nil, f.moduleErr
	}
	return f.module, nil
}

func (f *fakeFactory) NewRunner(cfg native.Config) (native.Runner, error) {
	if f.runnerErr != nil {
		return nil, f.runnerErr
	}
	return f.runner, nil
}

// recordingListener captures listener callbacks for assertions.
type recordingListener struct {
	mu      sync.Mutex
	results []string
	stats   []float64
}

func (l *recordingListener) OnResult(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, text)
}

func (l *recordingListener) OnStats(tps float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats = append(l.stats, tps)
}

func (l *recordingListener) snapshot() ([]string, []float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.results...), append([]float64(nil), l.stats...)
}
