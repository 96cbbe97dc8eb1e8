package bridge

import (
	"fmt"
	"time"

	"modelbridge/internal/native"
	"modelbridge/pkg/values"
)

// ModuleBridge exposes a runtime module to the host: it decodes host tagged
// values, dispatches a named method, and encodes the results back. It holds
// exclusive ownership of the underlying module handle and provides no
// internal synchronization; concurrent calls must be serialized by the
// caller.
type ModuleBridge struct {
	mod native.Module
}

// NewModuleBridge constructs the owned runtime module from a model path using
// the default factory for this build.
func NewModuleBridge(modelPath string) (*ModuleBridge, error) {
	return NewModuleBridgeWith(native.DefaultFactory(), native.Config{
		ModelPath: modelPath,
		Threads:   native.DefaultThreads(),
	})
}

// NewModuleBridgeWithFiles constructs the owned runtime module from a model
// path plus auxiliary artifacts keyed by logical name.
func NewModuleBridgeWithFiles(modelPath string, extraFiles map[string]string) (*ModuleBridge, error) {
	return NewModuleBridgeWith(native.DefaultFactory(), native.Config{
		ModelPath:  modelPath,
		ExtraFiles: extraFiles,
		Threads:    native.DefaultThreads(),
	})
}

// NewModuleBridgeWith constructs a ModuleBridge with an explicit factory and
// config. Tests use this to inject fake runtimes.
func NewModuleBridgeWith(f native.Factory, cfg native.Config) (*ModuleBridge, error) {
	mod, err := f.NewModule(cfg)
	if err != nil {
		return nil, err
	}
	return &ModuleBridge{mod: mod}, nil
}

// Forward runs the module's "forward" method.
func (b *ModuleBridge) Forward(inputs []values.Value) ([]values.Value, error) {
	return b.Execute("forward", inputs)
}

// Execute decodes inputs in order, dispatches the named method, and encodes
// the outputs in the order the runtime produced them. On a non-Ok status it
// returns zero outputs and an error carrying the method name and the numeric
// status. Decoded tensor inputs alias host buffers; the values slice keeps
// them reachable for the duration of the call.
func (b *ModuleBridge) Execute(method string, inputs []values.Value) ([]values.Value, error) {
	ins := make([]native.Value, 0, len(inputs))
	for i, in := range inputs {
		nv, err := DecodeValue(in)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		ins = append(ins, nv)
	}

	start := time.Now()
	outs, st := b.mod.Execute(method, ins)
	invocationDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	invocationsTotal.WithLabelValues(method, statusLabel(int32(st))).Inc()

	if !st.Ok() {
		return nil, callError{method: method, status: st}
	}
	res := make([]values.Value, 0, len(outs))
	for _, out := range outs {
		ev, err := EncodeValue(out)
		if err != nil {
			return nil, err
		}
		res = append(res, ev)
	}
	debugf("executed %s: %d inputs, %d outputs", method, len(ins), len(res))
	return res, nil
}

// LoadMethod triggers the runtime's method loading step and returns the raw
// status code. Checking the code is the caller's responsibility; no error is
// raised here.
func (b *ModuleBridge) LoadMethod(method string) int32 {
	return int32(b.mod.LoadMethod(method))
}
