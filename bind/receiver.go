package bind

import (
	"reflect"
)

type receiverKind int

const (
	receiverNone receiverKind = iota
	receiverInline
	receiverShared
)

func (k receiverKind) String() string {
	switch k {
	case receiverNone:
		return "none"
	case receiverInline:
		return "inline"
	case receiverShared:
		return "shared"
	default:
		return "invalid"
	}
}

// receiverStore owns whatever a handle captured at bind time. The val field
// always holds a pointer: for inline captures it points at the store's
// private copy, for shared captures it is the caller's own pointer. Exactly
// one handle owns a store; clones get a fresh one.
type receiverStore struct {
	kind     receiverKind
	val      reflect.Value
	disposed bool
}

func newNoneStore() *receiverStore {
	return &receiverStore{kind: receiverNone}
}

// captureValue copies v into freshly allocated storage of type t. Later
// mutations of the caller's value do not reach the copy, and mutations
// through the handle do not reach the caller.
func captureValue(t reflect.Type, v reflect.Value) (*receiverStore, error) {
	if !v.IsValid() {
		return nil, &InvalidReceiverError{Type: t, Reason: "nil value"}
	}
	if v.Type() != t {
		return nil, &InvalidReceiverError{Type: v.Type(), Reason: "receiver type does not match owner " + typeName(t)}
	}
	p := reflect.New(t)
	p.Elem().Set(v)
	return &receiverStore{kind: receiverInline, val: p}, nil
}

// captureReference pins the caller's pointer without copying the target.
func captureReference(p reflect.Value) (*receiverStore, error) {
	if !p.IsValid() || p.Kind() != reflect.Pointer {
		return nil, &InvalidReceiverError{Type: typeOf(p), Reason: "receiver must be a pointer"}
	}
	if p.IsNil() {
		return nil, &InvalidReceiverError{Type: p.Type(), Reason: "nil pointer"}
	}
	return &receiverStore{kind: receiverShared, val: p}, nil
}

func typeOf(v reflect.Value) reflect.Type {
	if !v.IsValid() {
		return nil
	}
	return v.Type()
}

// receiverArg returns the pointer value placed in the receiver slot when
// dispatching. Invalid for none stores.
func (s *receiverStore) receiverArg() reflect.Value { return s.val }

// receiver returns the captured receiver for readback: the copy's address
// for inline stores, the pinned pointer for shared ones, nil otherwise.
func (s *receiverStore) receiver() any {
	if s.disposed || s.kind == receiverNone || !s.val.IsValid() {
		return nil
	}
	return s.val.Interface()
}

// dispose releases the store. Safe to call more than once; only the first
// call drops the reference.
func (s *receiverStore) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.val = reflect.Value{}
}
