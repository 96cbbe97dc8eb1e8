package native

import "fmt"

// Tag discriminates the payload of a runtime Value.
type Tag uint8

const (
	TagNone Tag = iota
	TagTensor
	TagString
	TagDouble
	TagInt
	TagBool
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagTensor:
		return "tensor"
	case TagString:
		return "string"
	case TagDouble:
		return "double"
	case TagInt:
		return "int"
	case TagBool:
		return "bool"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// Value is the runtime's tagged union. A zero Value carries TagNone. Callers
// must check Tag before reading a payload; accessors return the zero payload
// when the tag does not match.
type Value struct {
	tag     Tag
	tensor  *Tensor
	str     string
	double  float64
	integer int64
	boolean bool
}

// TensorValue wraps a tensor in a Value.
func TensorValue(t *Tensor) Value { return Value{tag: TagTensor, tensor: t} }

// StringValue wraps a string in a Value.
func StringValue(s string) Value { return Value{tag: TagString, str: s} }

// DoubleValue wraps a float64 in a Value.
func DoubleValue(v float64) Value { return Value{tag: TagDouble, double: v} }

// IntValue wraps an int64 in a Value.
func IntValue(v int64) Value { return Value{tag: TagInt, integer: v} }

// BoolValue wraps a bool in a Value.
func BoolValue(v bool) Value { return Value{tag: TagBool, boolean: v} }

// Tag returns the discriminator.
func (v Value) Tag() Tag { return v.tag }

func (v Value) Tensor() *Tensor { return v.tensor }
func (v Value) Str() string     { return v.str }
func (v Value) Double() float64 { return v.double }
func (v Value) Int() int64      { return v.integer }
func (v Value) Bool() bool      { return v.boolean }
