package native

import "fmt"

// Status is the numeric result code returned by runtime calls. Zero means
// success. The values mirror the runtime's fixed error-code ABI and are
// returned to hosts as plain integers where the contract says so; the bridge
// does not translate them into errors on those paths.
type Status int32

const (
	StatusOk              Status = 0x00
	StatusInternal        Status = 0x01
	StatusInvalidState    Status = 0x02
	StatusNotSupported    Status = 0x10
	StatusInvalidArgument Status = 0x12
	StatusInvalidType     Status = 0x13
	StatusNotFound        Status = 0x20
	StatusMemoryAllocFail Status = 0x21
	StatusAccessFailed    Status = 0x22
)

// Ok reports whether the status is success.
func (s Status) Ok() bool { return s == StatusOk }

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusInternal:
		return "internal"
	case StatusInvalidState:
		return "invalid state"
	case StatusNotSupported:
		return "not supported"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusInvalidType:
		return "invalid type"
	case StatusNotFound:
		return "not found"
	case StatusMemoryAllocFail:
		return "memory allocation failed"
	case StatusAccessFailed:
		return "access failed"
	default:
		return fmt.Sprintf("status(0x%x)", int32(s))
	}
}
