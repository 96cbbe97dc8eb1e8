package native

// Tensor is a runtime tensor view: element type, ordered dimension sizes and
// the backing byte buffer.
//
// Ownership follows the direction the tensor crossed the boundary. Tensors
// returned by the runtime are backed by runtime-owned memory that stays valid
// only until the next runtime call. Tensors built by the bridge from host
// inputs alias host-owned memory for the duration of one call; no copy or
// reference counting is performed.
type Tensor struct {
	scalarType ScalarType
	shape      []int64
	data       []byte
}

// NewTensor builds a tensor view over data. The slice is aliased, not copied.
func NewTensor(scalarType ScalarType, shape []int64, data []byte) *Tensor {
	return &Tensor{scalarType: scalarType, shape: shape, data: data}
}

// ScalarType returns the element type.
func (t *Tensor) ScalarType() ScalarType { return t.scalarType }

// Shape returns the dimension sizes. The slice must not be mutated.
func (t *Tensor) Shape() []int64 { return t.shape }

// Data returns the backing bytes. See the ownership notes on Tensor.
func (t *Tensor) Data() []byte { return t.data }

// NumElements returns the product of the shape dimensions.
func (t *Tensor) NumElements() int64 {
	n := int64(1)
	for _, d := range t.shape {
		n *= d
	}
	return n
}

// NumBytes returns NumElements scaled by the element size.
func (t *Tensor) NumBytes() int64 {
	return t.NumElements() * int64(t.scalarType.ElementSize())
}
