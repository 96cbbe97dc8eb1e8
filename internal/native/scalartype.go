package native

import "fmt"

// ScalarType identifies the element type of a runtime tensor.
type ScalarType uint8

const (
	ScalarByte   ScalarType = iota // unsigned 8-bit
	ScalarChar                     // signed 8-bit
	ScalarInt                      // signed 32-bit
	ScalarLong                     // signed 64-bit
	ScalarFloat                    // IEEE 754 32-bit
	ScalarDouble                   // IEEE 754 64-bit
)

// ElementSize returns the size in bytes of one element, or 0 for an
// unrecognized scalar type.
func (s ScalarType) ElementSize() int {
	switch s {
	case ScalarByte, ScalarChar:
		return 1
	case ScalarInt, ScalarFloat:
		return 4
	case ScalarLong, ScalarDouble:
		return 8
	default:
		return 0
	}
}

func (s ScalarType) String() string {
	switch s {
	case ScalarByte:
		return "byte"
	case ScalarChar:
		return "char"
	case ScalarInt:
		return "int"
	case ScalarLong:
		return "long"
	case ScalarFloat:
		return "float"
	case ScalarDouble:
		return "double"
	default:
		return fmt.Sprintf("scalar(%d)", uint8(s))
	}
}
