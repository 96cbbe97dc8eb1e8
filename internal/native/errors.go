package native

import (
	"runtime"
)

// runtimeUnavailableError signals that the native runtime backing is missing
// from this build (or cannot serve the requested handle), so callers can
// surface it as 503 rather than 500.
type runtimeUnavailableError struct{ msg string }

func (e runtimeUnavailableError) Error() string { return e.msg }

// ErrRuntimeUnavailable constructs a runtimeUnavailableError.
func ErrRuntimeUnavailable(msg string) error { return runtimeUnavailableError{msg: msg} }

// IsRuntimeUnavailable reports whether err indicates a missing runtime
// backing.
func IsRuntimeUnavailable(err error) bool {
	_, ok := err.(runtimeUnavailableError)
	return ok
}

// DefaultThreads returns the compute-pool size used when Config.Threads is
// zero: all cores but one, reserving one for the calling goroutine.
func DefaultThreads() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}
