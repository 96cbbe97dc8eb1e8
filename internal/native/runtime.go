package native

// Module is a loaded inference program exposing named methods. The bridge
// does not pre-validate method names; an unknown name is reported by the
// runtime as a non-Ok status.
//
// A Module provides no internal synchronization. Concurrent calls on the same
// instance are undefined and must be serialized by the caller.
type Module interface {
	// LoadMethod triggers the (possibly expensive) load of a named method
	// and returns the runtime status code.
	LoadMethod(name string) Status
	// Execute runs a named method over the decoded inputs. Input tensors
	// may alias caller memory; implementations must not retain them past
	// the call. On a non-Ok status the returned values are nil.
	Execute(name string, inputs []Value) ([]Value, Status)
}

// Runner drives streaming text generation over a loaded model. Generate runs
// synchronously on the calling goroutine and invokes the callbacks from that
// same goroutine, mid-call. Stop is the only method safe to call from another
// goroutine; it requests cooperative termination between tokens.
type Runner interface {
	// Load performs the runtime's model loading step.
	Load() Status
	// Generate produces up to seqLen tokens for prompt. onToken is invoked
	// once per generated token in emission order; onStats is invoked at
	// most once, after the last token.
	Generate(prompt string, seqLen int, onToken func(string), onStats func(Stats)) Status
	// Stop requests early termination of an in-flight Generate.
	Stop()
}

// ScalingFactorUnitsPerSecond converts a per-millisecond rate into a
// per-second rate in generation statistics.
const ScalingFactorUnitsPerSecond = 1000

// Stats carries the timing report of one generation run. All timestamps are
// wall-clock milliseconds taken by the runtime.
type Stats struct {
	NumPromptTokens    int64
	NumGeneratedTokens int64
	ModelLoadEndMs     int64
	PromptEvalEndMs    int64
	InferenceStartMs   int64
	InferenceEndMs     int64
}

// Config carries the construction parameters for runtime handles. The bridge
// reads these once, at construction.
type Config struct {
	ModelPath     string
	TokenizerPath string
	Temperature   float32
	// ExtraFiles maps logical names to auxiliary artifact paths the
	// runtime may need alongside the model (vocabularies, adapters).
	ExtraFiles map[string]string
	// Threads is the size of the runtime's compute pool. Zero lets the
	// factory pick a default that reserves one core for the caller.
	Threads int
	// ContextSize is the token window handed to the backend, when it
	// supports one.
	ContextSize int
}

// Factory constructs runtime handles. The default factory is backed by
// llama.cpp when built with the 'llama' tag and fails fast otherwise; tests
// inject their own.
type Factory interface {
	NewModule(cfg Config) (Module, error)
	NewRunner(cfg Config) (Runner, error)
}
