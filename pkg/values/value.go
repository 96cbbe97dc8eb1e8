package values

import "fmt"

// Type codes identifying which payload a Value carries. The codes are part of
// the bridge contract and must not be renumbered.
const (
	TypeCodeTensor int32 = 1
	TypeCodeString int32 = 2
	TypeCodeDouble int32 = 3
	TypeCodeInt    int32 = 4
	TypeCodeBool   int32 = 5
)

// Value is the host-facing tagged value exchanged with the runtime bridge.
// Exactly one payload is meaningful, selected by the type code. Construct
// values with the From* helpers; reading a payload through the wrong accessor
// returns an error rather than a zero value.
type Value struct {
	typeCode int32
	tensor   *Tensor
	str      string
	double   float64
	integer  int64
	boolean  bool
}

// FromTensor wraps a tensor payload.
func FromTensor(t *Tensor) Value { return Value{typeCode: TypeCodeTensor, tensor: t} }

// FromString wraps a string payload.
func FromString(s string) Value { return Value{typeCode: TypeCodeString, str: s} }

// FromDouble wraps a float64 payload.
func FromDouble(v float64) Value { return Value{typeCode: TypeCodeDouble, double: v} }

// FromInt wraps an int64 payload.
func FromInt(v int64) Value { return Value{typeCode: TypeCodeInt, integer: v} }

// FromBool wraps a bool payload.
func FromBool(v bool) Value { return Value{typeCode: TypeCodeBool, boolean: v} }

// FromTypeCode builds a Value with an arbitrary type code and no payload.
// It exists so callers (and tests) can represent values received from hosts
// that speak a newer revision of the contract.
func FromTypeCode(code int32) Value { return Value{typeCode: code} }

// TypeCode returns the discriminator of this value.
func (v Value) TypeCode() int32 { return v.typeCode }

func (v Value) IsTensor() bool { return v.typeCode == TypeCodeTensor }
func (v Value) IsString() bool { return v.typeCode == TypeCodeString }
func (v Value) IsDouble() bool { return v.typeCode == TypeCodeDouble }
func (v Value) IsInt() bool    { return v.typeCode == TypeCodeInt }
func (v Value) IsBool() bool   { return v.typeCode == TypeCodeBool }

// ToTensor returns the tensor payload.
func (v Value) ToTensor() (*Tensor, error) {
	if v.typeCode != TypeCodeTensor {
		return nil, wrongKindError{want: TypeCodeTensor, got: v.typeCode}
	}
	return v.tensor, nil
}

// ToStr returns the string payload.
func (v Value) ToStr() (string, error) {
	if v.typeCode != TypeCodeString {
		return "", wrongKindError{want: TypeCodeString, got: v.typeCode}
	}
	return v.str, nil
}

// ToDouble returns the float64 payload.
func (v Value) ToDouble() (float64, error) {
	if v.typeCode != TypeCodeDouble {
		return 0, wrongKindError{want: TypeCodeDouble, got: v.typeCode}
	}
	return v.double, nil
}

// ToInt returns the int64 payload.
func (v Value) ToInt() (int64, error) {
	if v.typeCode != TypeCodeInt {
		return 0, wrongKindError{want: TypeCodeInt, got: v.typeCode}
	}
	return v.integer, nil
}

// ToBool returns the bool payload.
func (v Value) ToBool() (bool, error) {
	if v.typeCode != TypeCodeBool {
		return false, wrongKindError{want: TypeCodeBool, got: v.typeCode}
	}
	return v.boolean, nil
}

// wrongKindError signals a payload accessor used against the wrong type code.
type wrongKindError struct{ want, got int32 }

func (e wrongKindError) Error() string {
	return fmt.Sprintf("value holds type code %d, not %d", e.got, e.want)
}

// IsWrongKind reports whether err came from a mismatched payload accessor.
func IsWrongKind(err error) bool {
	_, ok := err.(wrongKindError)
	return ok
}
