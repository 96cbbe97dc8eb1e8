package bridge

import (
	"fmt"

	"modelbridge/internal/native"
	"modelbridge/pkg/values"
)

// The scalar-type mapping is fixed, process-wide and total over the types the
// codec supports. A lookup miss is an error, never a default.
var scalarTypeToDType = map[native.ScalarType]int32{
	native.ScalarByte:   1,
	native.ScalarChar:   2,
	native.ScalarInt:    3,
	native.ScalarFloat:  4,
	native.ScalarLong:   5,
	native.ScalarDouble: 6,
}

var dtypeToScalarType = map[int32]native.ScalarType{
	1: native.ScalarByte,
	2: native.ScalarChar,
	3: native.ScalarInt,
	4: native.ScalarFloat,
	5: native.ScalarLong,
	6: native.ScalarDouble,
}

// EncodeValue converts a runtime value into a host tagged value.
//
// Tensor payloads are not copied: the host tensor borrows the runtime buffer
// and stays valid only until the next runtime call. String payloads are
// copied, since the runtime string's lifetime is not guaranteed to outlive
// the call.
func EncodeValue(v native.Value) (values.Value, error) {
	switch v.Tag() {
	case native.TagTensor:
		return encodeTensor(v.Tensor())
	case native.TagString:
		return values.FromString(v.Str()), nil
	case native.TagDouble:
		return values.FromDouble(v.Double()), nil
	case native.TagInt:
		return values.FromInt(v.Int()), nil
	case native.TagBool:
		return values.FromBool(v.Bool()), nil
	default:
		return values.Value{}, unsupportedTagError{tag: v.Tag()}
	}
}

func encodeTensor(t *native.Tensor) (values.Value, error) {
	dtype, ok := scalarTypeToDType[t.ScalarType()]
	if !ok {
		return values.Value{}, unsupportedScalarTypeError{scalarType: t.ScalarType()}
	}
	shape := append([]int64(nil), t.Shape()...)
	// Borrowed view: elemCount x elemSize bytes over the runtime buffer.
	data := t.Data()[:t.NumBytes()]
	return values.FromTensor(&values.Tensor{DType: dtype, Shape: shape, Data: data}), nil
}

// DecodeValue converts a host tagged value into a runtime value.
//
// Tensor payloads produce a runtime view aliasing the host buffer directly;
// the caller must not mutate or release the buffer until the runtime call
// returns. An unrecognized type code is an error: silently dropping the value
// would shift the argument positions of everything after it.
func DecodeValue(v values.Value) (native.Value, error) {
	switch v.TypeCode() {
	case values.TypeCodeTensor:
		t, err := v.ToTensor()
		if err != nil {
			return native.Value{}, err
		}
		return decodeTensor(t)
	case values.TypeCodeString:
		s, err := v.ToStr()
		if err != nil {
			return native.Value{}, err
		}
		return native.StringValue(s), nil
	case values.TypeCodeDouble:
		d, err := v.ToDouble()
		if err != nil {
			return native.Value{}, err
		}
		return native.DoubleValue(d), nil
	case values.TypeCodeInt:
		i, err := v.ToInt()
		if err != nil {
			return native.Value{}, err
		}
		return native.IntValue(i), nil
	case values.TypeCodeBool:
		b, err := v.ToBool()
		if err != nil {
			return native.Value{}, err
		}
		return native.BoolValue(b), nil
	default:
		return native.Value{}, unknownKindError{code: v.TypeCode()}
	}
}

func decodeTensor(t *values.Tensor) (native.Value, error) {
	if t == nil {
		return native.Value{}, fmt.Errorf("nil tensor payload")
	}
	scalarType, ok := dtypeToScalarType[t.DType]
	if !ok {
		return native.Value{}, unknownDTypeError{code: t.DType}
	}
	for _, d := range t.Shape {
		if d < 0 {
			return native.Value{}, invalidShapeError{dim: d}
		}
	}
	elements := t.NumElements()
	capacity := int64(len(t.Data)) / int64(scalarType.ElementSize())
	if elements != capacity {
		return native.Value{}, shapeMismatchError{elements: elements, capacity: capacity}
	}
	shape := append([]int64(nil), t.Shape...)
	// The runtime tensor aliases t.Data; no copy for performance.
	return native.TensorValue(native.NewTensor(scalarType, shape, t.Data)), nil
}
