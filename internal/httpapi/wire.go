package httpapi

import (
	"fmt"
	"net/http"

	"modelbridge/pkg/types"
	"modelbridge/pkg/values"
)

// missingPayloadError reports a tagged value whose declared type code has no
// matching payload field. A malformed request body is the caller's fault.
type missingPayloadError struct {
	code int32
	kind string
}

func (e missingPayloadError) Error() string {
	return fmt.Sprintf("type %d value has no %s payload", e.code, e.kind)
}

func (e missingPayloadError) StatusCode() int { return http.StatusBadRequest }

// toValue converts the JSON form of a tagged value into a bridge value. An
// unrecognized type code is carried through unchanged; the codec rejects it
// with its own diagnostics.
func toValue(tv types.TaggedValue) (values.Value, error) {
	switch tv.Type {
	case values.TypeCodeTensor:
		if tv.Tensor == nil {
			return values.Value{}, missingPayloadError{code: tv.Type, kind: "tensor"}
		}
		return values.FromTensor(&values.Tensor{
			DType: tv.Tensor.DType,
			Shape: tv.Tensor.Shape,
			Data:  tv.Tensor.Data,
		}), nil
	case values.TypeCodeString:
		if tv.Str == nil {
			return values.Value{}, missingPayloadError{code: tv.Type, kind: "string"}
		}
		return values.FromString(*tv.Str), nil
	case values.TypeCodeDouble:
		if tv.Double == nil {
			return values.Value{}, missingPayloadError{code: tv.Type, kind: "double"}
		}
		return values.FromDouble(*tv.Double), nil
	case values.TypeCodeInt:
		if tv.Int == nil {
			return values.Value{}, missingPayloadError{code: tv.Type, kind: "int"}
		}
		return values.FromInt(*tv.Int), nil
	case values.TypeCodeBool:
		if tv.Bool == nil {
			return values.Value{}, missingPayloadError{code: tv.Type, kind: "bool"}
		}
		return values.FromBool(*tv.Bool), nil
	default:
		return values.FromTypeCode(tv.Type), nil
	}
}

func toValues(tvs []types.TaggedValue) ([]values.Value, error) {
	out := make([]values.Value, 0, len(tvs))
	for i, tv := range tvs {
		v, err := toValue(tv)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// fromValue converts a bridge value into its JSON form. Tensor data is copied
// onto the wire, ending the borrowed view's involvement.
func fromValue(v values.Value) (types.TaggedValue, error) {
	switch v.TypeCode() {
	case values.TypeCodeTensor:
		t, err := v.ToTensor()
		if err != nil {
			return types.TaggedValue{}, err
		}
		return types.TaggedValue{Type: v.TypeCode(), Tensor: &types.TensorPayload{
			DType: t.DType,
			Shape: append([]int64(nil), t.Shape...),
			Data:  append([]byte(nil), t.Data...),
		}}, nil
	case values.TypeCodeString:
		s, err := v.ToStr()
		if err != nil {
			return types.TaggedValue{}, err
		}
		return types.TaggedValue{Type: v.TypeCode(), Str: &s}, nil
	case values.TypeCodeDouble:
		d, err := v.ToDouble()
		if err != nil {
			return types.TaggedValue{}, err
		}
		return types.TaggedValue{Type: v.TypeCode(), Double: &d}, nil
	case values.TypeCodeInt:
		i, err := v.ToInt()
		if err != nil {
			return types.TaggedValue{}, err
		}
		return types.TaggedValue{Type: v.TypeCode(), Int: &i}, nil
	case values.TypeCodeBool:
		b, err := v.ToBool()
		if err != nil {
			return types.TaggedValue{}, err
		}
		return types.TaggedValue{Type: v.TypeCode(), Bool: &b}, nil
	default:
		return types.TaggedValue{}, fmt.Errorf("unknown tagged-value type code %d", v.TypeCode())
	}
}

func fromValues(vs []values.Value) ([]types.TaggedValue, error) {
	out := make([]types.TaggedValue, 0, len(vs))
	for _, v := range vs {
		tv, err := fromValue(v)
		if err != nil {
			return nil, err
		}
		out = append(out, tv)
	}
	return out, nil
}
