package bind

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUseAfterDispose is reported by any operation on a disposed handle.
	ErrUseAfterDispose = errors.New("bind: use of disposed handle")

	// ErrUnsupportedClone is reported when cloning a handle whose receiver
	// is an inline value copy. Only reference receivers can be re-captured.
	ErrUnsupportedClone = errors.New("bind: clone of value-receiver handle is not supported")

	// ErrAcquisitionLocked is reported when changing a cache's acquisition
	// mode after it has already resolved an entry.
	ErrAcquisitionLocked = errors.New("bind: acquisition mode is locked after first resolution")
)

// MethodNotFoundError indicates no candidate matched (owner, name, params).
type MethodNotFoundError struct {
	Owner  reflect.Type
	Name   string
	Params []reflect.Type
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("bind: no method %s.%s matching %s", typeName(e.Owner), e.Name, paramList(e.Params))
}

// UnsupportedSignatureError indicates a candidate exists under the
// requested name and arity but its signature cannot travel the fast
// dispatch paths.
type UnsupportedSignatureError struct {
	Owner  reflect.Type
	Name   string
	Reason string
}

func (e *UnsupportedSignatureError) Error() string {
	return fmt.Sprintf("bind: unsupported signature for %s.%s: %s", typeName(e.Owner), e.Name, e.Reason)
}

// InvalidReceiverError indicates a nil or wrong-shape receiver for a
// non-static binding.
type InvalidReceiverError struct {
	Type   reflect.Type // nil for untyped nil receivers
	Reason string
}

func (e *InvalidReceiverError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("bind: invalid receiver: %s", e.Reason)
	}
	return fmt.Sprintf("bind: invalid receiver %s: %s", typeName(e.Type), e.Reason)
}

// ReturnPosition is the Position value a SignatureMismatchError carries
// when the return slot, not an argument, failed conformance.
const ReturnPosition = -1

// SignatureMismatchError reports a strict-validation failure: the caller's
// declared type at a position does not match the resolved descriptor.
// Position is the zero-based argument index, or ReturnPosition.
type SignatureMismatchError struct {
	Method   string
	Position int
	Expected reflect.Type // nil when the method returns no value
	Actual   reflect.Type // nil when the caller supplied an untyped nil
	Multi    int          // >1: the method returns Multi values
}

func (e *SignatureMismatchError) Error() string {
	switch {
	case e.Position != ReturnPosition:
		return fmt.Sprintf("bind: %s: argument %d type mismatch: expected %s, got %s",
			e.Method, e.Position, typeName(e.Expected), typeName(e.Actual))
	case e.Multi > 1 && e.Actual == nil:
		return fmt.Sprintf("bind: %s: method has %d return values, caller expects none", e.Method, e.Multi)
	case e.Multi > 1:
		return fmt.Sprintf("bind: %s: method has %d return values, not the single %s the caller expects",
			e.Method, e.Multi, typeName(e.Actual))
	case e.Expected == nil:
		return fmt.Sprintf("bind: %s: method returns no value, caller expects %s", e.Method, typeName(e.Actual))
	case e.Actual == nil:
		return fmt.Sprintf("bind: %s: method returns %s, caller expects none", e.Method, typeName(e.Expected))
	default:
		return fmt.Sprintf("bind: %s: return type mismatch: expected %s, got %s",
			e.Method, typeName(e.Expected), typeName(e.Actual))
	}
}

// ArityError reports an argument count that disagrees with the resolved
// descriptor.
type ArityError struct {
	Method   string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("bind: %s: argument count mismatch: expected %d, got %d", e.Method, e.Expected, e.Actual)
}

// UnsupportedArityError reports a dynamic invocation whose argument count
// exceeds the fixed dispatch family.
type UnsupportedArityError struct {
	Count int
}

func (e *UnsupportedArityError) Error() string {
	return fmt.Sprintf("bind: arity %d exceeds the supported maximum of %d", e.Count, MaxArity)
}
