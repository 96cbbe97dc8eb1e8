package bridge

import (
	"errors"
	"fmt"

	"modelbridge/internal/native"
)

// unsupportedScalarTypeError signals a runtime tensor whose element type has
// no host-side dtype code.
type unsupportedScalarTypeError struct{ scalarType native.ScalarType }

func (e unsupportedScalarTypeError) Error() string {
	return fmt.Sprintf("tensor scalar type %d is not supported on the host side", uint8(e.scalarType))
}

// IsUnsupportedScalarType reports whether err indicates a scalar type with no
// host mapping.
func IsUnsupportedScalarType(err error) bool {
	var e unsupportedScalarTypeError
	return errors.As(err, &e)
}

// unknownDTypeError signals a host tensor dtype code with no runtime scalar
// type.
type unknownDTypeError struct{ code int32 }

func (e unknownDTypeError) Error() string {
	return fmt.Sprintf("unknown tensor dtype code %d", e.code)
}

// IsUnknownDType reports whether err indicates an unmapped dtype code.
func IsUnknownDType(err error) bool {
	var e unknownDTypeError
	return errors.As(err, &e)
}

// shapeMismatchError signals a tensor whose declared shape disagrees with its
// buffer capacity. Both counts are in elements.
type shapeMismatchError struct{ elements, capacity int64 }

func (e shapeMismatchError) Error() string {
	return fmt.Sprintf("tensor dimensions (element count: %d) inconsistent with buffer capacity (%d)", e.elements, e.capacity)
}

// IsShapeMismatch reports whether err indicates a shape/buffer inconsistency.
func IsShapeMismatch(err error) bool {
	var e shapeMismatchError
	return errors.As(err, &e)
}

// invalidShapeError signals a negative dimension size.
type invalidShapeError struct{ dim int64 }

func (e invalidShapeError) Error() string {
	return fmt.Sprintf("tensor shape contains negative dimension %d", e.dim)
}

// IsInvalidShape reports whether err indicates a negative dimension.
func IsInvalidShape(err error) bool {
	var e invalidShapeError
	return errors.As(err, &e)
}

// unknownKindError signals a host tagged value whose type code is outside the
// recognized enumeration.
type unknownKindError struct{ code int32 }

func (e unknownKindError) Error() string {
	return fmt.Sprintf("unknown tagged-value type code %d", e.code)
}

// IsUnknownKind reports whether err indicates an unrecognized type code.
func IsUnknownKind(err error) bool {
	var e unknownKindError
	return errors.As(err, &e)
}

// unsupportedTagError signals a runtime value whose union tag the codec does
// not handle. With the union being a closed enumeration this is a contract
// violation, not a recoverable condition; the numeric tag is carried for
// diagnostics.
type unsupportedTagError struct{ tag native.Tag }

func (e unsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported runtime value tag %d", uint8(e.tag))
}

// IsUnsupportedTag reports whether err indicates an unhandled union tag.
func IsUnsupportedTag(err error) bool {
	var e unsupportedTagError
	return errors.As(err, &e)
}

// callError signals a runtime method call that returned a non-Ok status.
type callError struct {
	method string
	status native.Status
}

func (e callError) Error() string {
	return fmt.Sprintf("execution of method %s failed with status 0x%x (%s)", e.method, int32(e.status), e.status)
}

// IsCallFailure reports whether err wraps a failed runtime call.
func IsCallFailure(err error) bool {
	var e callError
	return errors.As(err, &e)
}

// CallStatus extracts the runtime status from a call failure.
func CallStatus(err error) (native.Status, bool) {
	var ce callError
	if !errors.As(err, &ce) {
		return native.StatusOk, false
	}
	return ce.status, true
}
