//go:build !llama

package native

// This file provides a no-CGO stub factory compiled when the 'llama' build
// tag is NOT set, keeping default builds and CI CGO-free. The real backing
// lives in factory_llama.go (tagged 'llama'). The stub refuses to construct
// handles instead of mocking behavior.

type stubFactory struct{}

// DefaultFactory returns the runtime factory for this build.
func DefaultFactory() Factory { return stubFactory{} }

func (stubFactory) NewModule(cfg Config) (Module, error) {
	return nil, ErrRuntimeUnavailable("runtime support not built (missing 'llama' build tag)")
}

func (stubFactory) NewRunner(cfg Config) (Runner, error) {
	return nil, ErrRuntimeUnavailable("runtime support not built (missing 'llama' build tag)")
}
