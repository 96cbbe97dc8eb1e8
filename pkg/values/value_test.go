package values

import "testing"

func TestAccessorsMatchConstructors(t *testing.T) {
	tens := &Tensor{DType: 4, Shape: []int64{2}, Data: make([]byte, 8)}
	v := FromTensor(tens)
	if !v.IsTensor() || v.TypeCode() != TypeCodeTensor {
		t.Fatalf("tensor value misclassified: code=%d", v.TypeCode())
	}
	got, err := v.ToTensor()
	if err != nil || got != tens {
		t.Fatalf("ToTensor: %v (err=%v)", got, err)
	}

	if s, err := FromString("x").ToStr(); err != nil || s != "x" {
		t.Fatalf("ToStr: %q (err=%v)", s, err)
	}
	if d, err := FromDouble(1.5).ToDouble(); err != nil || d != 1.5 {
		t.Fatalf("ToDouble: %v (err=%v)", d, err)
	}
	if i, err := FromInt(-3).ToInt(); err != nil || i != -3 {
		t.Fatalf("ToInt: %v (err=%v)", i, err)
	}
	if b, err := FromBool(true).ToBool(); err != nil || !b {
		t.Fatalf("ToBool: %v (err=%v)", b, err)
	}
}

func TestWrongAccessorFails(t *testing.T) {
	v := FromInt(1)
	if _, err := v.ToStr(); err == nil || !IsWrongKind(err) {
		t.Fatalf("expected wrong-kind error, got %v", err)
	}
	if _, err := v.ToTensor(); err == nil || !IsWrongKind(err) {
		t.Fatalf("expected wrong-kind error, got %v", err)
	}
}

func TestTypeCodesAreFixed(t *testing.T) {
	// The codes are a wire contract; renumbering them breaks hosts.
	codes := map[int32]int32{TypeCodeTensor: 1, TypeCodeString: 2, TypeCodeDouble: 3, TypeCodeInt: 4, TypeCodeBool: 5}
	for got, want := range codes {
		if got != want {
			t.Fatalf("type code %d, want %d", got, want)
		}
	}
}

func TestTensorNumElements(t *testing.T) {
	cases := []struct {
		shape []int64
		want  int64
	}{
		{nil, 1},
		{[]int64{}, 1},
		{[]int64{5}, 5},
		{[]int64{2, 3, 4}, 24},
		{[]int64{3, 0}, 0},
		{[]int64{2, -1}, -1},
	}
	for _, tc := range cases {
		tens := &Tensor{Shape: tc.shape}
		if got := tens.NumElements(); got != tc.want {
			t.Fatalf("shape %v: NumElements=%d, want %d", tc.shape, got, tc.want)
		}
	}
}
