package bridge

import (
	"context"
	"fmt"
	"sort"

	"modelbridge/internal/native"
	"modelbridge/pkg/values"
)

// Fixed entry-point names under which the bridge operations are registered.
// Hosts invoke them by name; the set must match the host-side declarations.
const (
	EntryForward    = "forward"
	EntryExecute    = "execute"
	EntryLoadMethod = "loadMethod"
	EntryLoad       = "load"
	EntryGenerate   = "generate"
	EntryStop       = "stop"
)

// Call carries the arguments of one entry-point invocation. Only the fields
// an entry point declares are read: Args for forward/execute, Method for
// execute/loadMethod, Prompt and Listener for generate.
type Call struct {
	Method   string
	Args     []values.Value
	Prompt   string
	Listener Listener
}

// Handler executes one entry point. Status-code-returning operations wrap
// the code in a single int value, matching the host-side signatures.
type Handler func(ctx context.Context, call Call) ([]values.Value, error)

// EntryPoint pairs a fixed name with its handler.
type EntryPoint struct {
	Name    string
	Handler Handler
}

// Registry is the table of invokable entry points. It is built once by an
// explicit startup routine and read-only afterwards; no ambient global state
// is involved.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register installs one entry point. Duplicate names and nil handlers are
// rejected.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("entry point name is empty")
	}
	if h == nil {
		return fmt.Errorf("entry point %s: nil handler", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("entry point %s already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// RegisterAll installs a full entry-point table.
func (r *Registry) RegisterAll(eps []EntryPoint) error {
	for _, ep := range eps {
		if err := r.Register(ep.Name, ep.Handler); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Dispatch invokes the named entry point, failing when it is not registered.
func (r *Registry) Dispatch(ctx context.Context, name string, call Call) ([]values.Value, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("entry point %s is not registered", name)
	}
	return h(ctx, call)
}

// Names returns the registered entry-point names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EntryPoints builds the fixed table for the given bridges. Either bridge may
// be nil when its runtime backing is absent from the process; its entry
// points then fail fast instead of being left unregistered, so hosts get a
// clear error rather than a missing-name one.
func EntryPoints(mb *ModuleBridge, gb *GenerationBridge) []EntryPoint {
	return []EntryPoint{
		{Name: EntryForward, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if mb == nil {
				return nil, native.ErrRuntimeUnavailable("module runtime not constructed")
			}
			return mb.Forward(call.Args)
		}},
		{Name: EntryExecute, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if mb == nil {
				return nil, native.ErrRuntimeUnavailable("module runtime not constructed")
			}
			return mb.Execute(call.Method, call.Args)
		}},
		{Name: EntryLoadMethod, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if mb == nil {
				return nil, native.ErrRuntimeUnavailable("module runtime not constructed")
			}
			return []values.Value{values.FromInt(int64(mb.LoadMethod(call.Method)))}, nil
		}},
		{Name: EntryLoad, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if gb == nil {
				return nil, native.ErrRuntimeUnavailable("generation runtime not constructed")
			}
			return []values.Value{values.FromInt(int64(gb.Load()))}, nil
		}},
		{Name: EntryGenerate, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if gb == nil {
				return nil, native.ErrRuntimeUnavailable("generation runtime not constructed")
			}
			// Stop the run when the caller's context is canceled, so
			// client disconnects translate into cooperative
			// termination.
			done := make(chan struct{})
			if ctx != nil {
				go func() {
					select {
					case <-ctx.Done():
						gb.Stop()
					case <-done:
					}
				}()
			}
			st := gb.Generate(call.Prompt, call.Listener)
			close(done)
			return []values.Value{values.FromInt(int64(st))}, nil
		}},
		{Name: EntryStop, Handler: func(ctx context.Context, call Call) ([]values.Value, error) {
			if gb == nil {
				return nil, native.ErrRuntimeUnavailable("generation runtime not constructed")
			}
			gb.Stop()
			return nil, nil
		}},
	}
}
