package values

// Tensor is the host-side wrapper over a runtime tensor. Data is raw bytes in
// native byte order.
//
// When a Tensor is produced by the bridge from a runtime result, Data is a
// borrowed view over the runtime-owned buffer: it stays valid only until the
// next call into the runtime. Callers that need the bytes longer must copy
// them. When a Tensor is passed into the bridge as an input, the caller must
// not mutate or release Data until the call returns; the runtime aliases the
// buffer directly.
type Tensor struct {
	// DType is the element type code (see the bridge scalar-type mapping).
	DType int32
	// Shape holds the ordered dimension sizes. All sizes must be
	// non-negative.
	Shape []int64
	// Data is the backing byte buffer.
	Data []byte
}

// NumElements returns the product of the shape dimensions. A scalar (empty
// shape) has one element. Returns -1 if any dimension is negative.
func (t *Tensor) NumElements() int64 {
	n := int64(1)
	for _, d := range t.Shape {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}
