package bridge

import (
	"bytes"
	"strings"
	"testing"

	"modelbridge/internal/native"
	"modelbridge/pkg/values"
)

func TestScalarRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   values.Value
	}{
		{"int", values.FromInt(42)},
		{"double", values.FromDouble(3.5)},
		{"bool", values.FromBool(true)},
		{"string", values.FromString("hello")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nv, err := DecodeValue(tc.in)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			back, err := EncodeValue(nv)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if back.TypeCode() != tc.in.TypeCode() {
				t.Fatalf("type code changed: %d -> %d", tc.in.TypeCode(), back.TypeCode())
			}
		})
	}
}

func TestScalarValuesPreserved(t *testing.T) {
	nv, err := DecodeValue(values.FromInt(-7))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if nv.Tag() != native.TagInt || nv.Int() != -7 {
		t.Fatalf("int payload lost: tag=%v val=%d", nv.Tag(), nv.Int())
	}
	nv, err = DecodeValue(values.FromString("tok"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if nv.Str() != "tok" {
		t.Fatalf("string payload lost: %q", nv.Str())
	}
}

func TestTensorRoundTripAllDTypes(t *testing.T) {
	// One tensor per supported dtype code with a 2x3 shape.
	for code, st := range dtypeToScalarType {
		data := make([]byte, 6*st.ElementSize())
		for i := range data {
			data[i] = byte(i)
		}
		in := values.FromTensor(&values.Tensor{DType: code, Shape: []int64{2, 3}, Data: data})

		nv, err := DecodeValue(in)
		if err != nil {
			t.Fatalf("dtype %d: decode: %v", code, err)
		}
		nt := nv.Tensor()
		if nt.ScalarType() != st {
			t.Fatalf("dtype %d: scalar type %v, want %v", code, nt.ScalarType(), st)
		}
		if &nt.Data()[0] != &data[0] {
			t.Fatalf("dtype %d: decoded tensor copied the buffer, want alias", code)
		}

		back, err := EncodeValue(nv)
		if err != nil {
			t.Fatalf("dtype %d: encode: %v", code, err)
		}
		bt, err := back.ToTensor()
		if err != nil {
			t.Fatalf("dtype %d: ToTensor: %v", code, err)
		}
		if bt.DType != code {
			t.Fatalf("dtype %d: round-trip changed dtype to %d", code, bt.DType)
		}
		if len(bt.Shape) != 2 || bt.Shape[0] != 2 || bt.Shape[1] != 3 {
			t.Fatalf("dtype %d: round-trip changed shape to %v", code, bt.Shape)
		}
		if !bytes.Equal(bt.Data, data) {
			t.Fatalf("dtype %d: round-trip changed data", code)
		}
	}
}

func TestEncodeTensorBorrowsRuntimeBuffer(t *testing.T) {
	data := make([]byte, 4*4)
	nt := native.NewTensor(native.ScalarFloat, []int64{4}, data)
	ev, err := EncodeValue(native.TensorValue(nt))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	ht, err := ev.ToTensor()
	if err != nil {
		t.Fatalf("ToTensor: %v", err)
	}
	if &ht.Data[0] != &data[0] {
		t.Fatalf("encoded tensor copied the runtime buffer, want borrowed view")
	}
	// Mutating the runtime buffer must show through the view.
	data[0] = 0xFF
	if ht.Data[0] != 0xFF {
		t.Fatalf("view does not alias the runtime buffer")
	}
}

func TestDecodeShapeMismatch(t *testing.T) {
	// Shape says 2x3=6 elements, buffer holds 5 float32s.
	in := values.FromTensor(&values.Tensor{
		DType: 4,
		Shape: []int64{2, 3},
		Data:  make([]byte, 5*4),
	})
	_, err := DecodeValue(in)
	if err == nil {
		t.Fatal("expected shape mismatch error")
	}
	if !IsShapeMismatch(err) {
		t.Fatalf("expected shape mismatch, got %v", err)
	}
	// Both counts must be reported.
	if !strings.Contains(err.Error(), "6") || !strings.Contains(err.Error(), "5") {
		t.Fatalf("error does not report both counts: %v", err)
	}
}

func TestDecodeNegativeDimension(t *testing.T) {
	in := values.FromTensor(&values.Tensor{
		DType: 4,
		Shape: []int64{2, -3},
		Data:  make([]byte, 24),
	})
	_, err := DecodeValue(in)
	if err == nil || !IsInvalidShape(err) {
		t.Fatalf("expected invalid shape error, got %v", err)
	}
}

func TestDecodeUnknownDType(t *testing.T) {
	in := values.FromTensor(&values.Tensor{DType: 99, Shape: []int64{1}, Data: make([]byte, 8)})
	_, err := DecodeValue(in)
	if err == nil || !IsUnknownDType(err) {
		t.Fatalf("expected unknown dtype error, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("error does not identify the offending code: %v", err)
	}
}

func TestDecodeUnknownTypeCodeFails(t *testing.T) {
	// An unrecognized type code must fail loudly: silently skipping the
	// value would shift argument positions.
	for _, code := range []int32{0, 6, 9, -1} {
		_, err := DecodeValue(values.FromTypeCode(code))
		if err == nil || !IsUnknownKind(err) {
			t.Fatalf("code %d: expected unknown kind error, got %v", code, err)
		}
	}
}

func TestEncodeUnsupportedScalarType(t *testing.T) {
	nt := native.NewTensor(native.ScalarType(200), []int64{1}, make([]byte, 8))
	_, err := EncodeValue(native.TensorValue(nt))
	if err == nil || !IsUnsupportedScalarType(err) {
		t.Fatalf("expected unsupported scalar type error, got %v", err)
	}
	if !strings.Contains(err.Error(), "200") {
		t.Fatalf("error does not identify the offending type: %v", err)
	}
}

func TestEncodeUnsupportedTag(t *testing.T) {
	_, err := EncodeValue(native.Value{})
	if err == nil || !IsUnsupportedTag(err) {
		t.Fatalf("expected unsupported tag error, got %v", err)
	}
}

func TestScalarTypeMappingIsBijective(t *testing.T) {
	if len(scalarTypeToDType) != len(dtypeToScalarType) {
		t.Fatalf("mapping sizes differ: %d vs %d", len(scalarTypeToDType), len(dtypeToScalarType))
	}
	for st, code := range scalarTypeToDType {
		back, ok := dtypeToScalarType[code]
		if !ok || back != st {
			t.Fatalf("mapping not bijective at %v <-> %d", st, code)
		}
	}
}
