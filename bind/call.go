package bind

import (
	"reflect"
)

// MaxArity is the highest parameter count the typed call family covers.
// Binds beyond it fail with UnsupportedArityError rather than falling back
// to reflection.
const MaxArity = 15

var errType = reflect.TypeFor[error]()

// Invoke is the dynamic entry point: arguments arrive boxed, results leave
// boxed, and nothing about the call is checked at compile time. Use the
// typed Call family when the signature is known.
func (h *Handle) Invoke(args ...any) ([]any, error) {
	if h.disposed {
		return nil, ErrUseAfterDispose
	}
	if len(args) > MaxArity {
		return nil, &UnsupportedArityError{Count: len(args)}
	}
	if len(args) != len(h.record.params) {
		return nil, &ArityError{Method: h.record.name, Expected: len(h.record.params), Actual: len(args)}
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out, err := h.dispatch(in)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, nil
}

// dispatch is the shared slow path. It fills a fixed frame of receiver
// prefix plus arguments, conforming each argument to the declared parameter
// type, and goes through reflect.Call. One frame shape serves every arity
// and receiver mode; only the typed Call family is per-arity.
func (h *Handle) dispatch(args []reflect.Value) ([]reflect.Value, error) {
	rec := h.record
	ft := rec.fn.Type()
	var frame [MaxArity + 1]reflect.Value
	skip := 0
	if !rec.static {
		frame[0] = h.store.receiverArg()
		skip = 1
	}
	for i, a := range args {
		v, err := conformArg(rec.name, i, ft.In(i+skip), a)
		if err != nil {
			return nil, err
		}
		frame[skip+i] = v
	}
	rec.calls.Add(1)
	return rec.fn.Call(frame[:skip+len(args)]), nil
}

// conformArg admits a value into a parameter slot: exact type, assignable
// type, or a typed zero when an untyped nil meets a nilable parameter.
// No numeric conversions; an int does not pass where an int64 is declared.
func conformArg(method string, pos int, want reflect.Type, got reflect.Value) (reflect.Value, error) {
	if !got.IsValid() {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, &SignatureMismatchError{Method: method, Position: pos, Expected: want}
	}
	if t := got.Type(); t != want && !t.AssignableTo(want) {
		return reflect.Value{}, &SignatureMismatchError{Method: method, Position: pos, Expected: want, Actual: t}
	}
	return got, nil
}

// strictCheck compares the caller's compile-time types against the bound
// signature. ret is nil for the void call shape. The accepted return shapes
// are none, a bare error, a single value, and a value with trailing error;
// anything wider fails.
func (h *Handle) strictCheck(args []reflect.Type, ret reflect.Type) error {
	rec := h.record
	if len(args) != len(rec.params) {
		return &ArityError{Method: rec.name, Expected: len(rec.params), Actual: len(args)}
	}
	for i, at := range args {
		if at != rec.params[i] {
			return &SignatureMismatchError{Method: rec.name, Position: i, Expected: rec.params[i], Actual: at}
		}
	}
	n := len(rec.returns)
	switch {
	case ret == nil:
		if n == 0 || (n == 1 && rec.returns[0] == errType) {
			return nil
		}
		return &SignatureMismatchError{Method: rec.name, Position: ReturnPosition, Expected: rec.returns[0], Multi: n}
	case n == 0:
		return &SignatureMismatchError{Method: rec.name, Position: ReturnPosition, Actual: ret}
	case rec.returns[0] != ret:
		return &SignatureMismatchError{Method: rec.name, Position: ReturnPosition, Expected: rec.returns[0], Actual: ret, Multi: n}
	case n > 2 || (n == 2 && rec.returns[1] != errType):
		return &SignatureMismatchError{Method: rec.name, Position: ReturnPosition, Expected: rec.returns[0], Actual: ret, Multi: n}
	}
	return nil
}

// finishVoid discards slow-path results, propagating a trailing error.
func finishVoid(out []reflect.Value) error {
	if n := len(out); n > 0 && out[n-1].Type() == errType {
		if e := out[n-1].Interface(); e != nil {
			return e.(error)
		}
	}
	return nil
}

// finishAs narrows slow-path results to one typed value. A trailing error
// return is split off first, so (R, error) methods behave like the typed
// fast path.
func finishAs[R any](method string, out []reflect.Value) (R, error) {
	var zero R
	if len(out) == 0 {
		return zero, &SignatureMismatchError{Method: method, Position: ReturnPosition, Actual: reflect.TypeFor[R]()}
	}
	if n := len(out); n > 1 && out[n-1].Type() == errType {
		if e := out[n-1].Interface(); e != nil {
			return zero, e.(error)
		}
		out = out[:n-1]
	}
	r, ok := out[0].Interface().(R)
	if !ok {
		return zero, &SignatureMismatchError{
			Method:   method,
			Position: ReturnPosition,
			Expected: out[0].Type(),
			Actual:   reflect.TypeFor[R](),
			Multi:    len(out),
		}
	}
	return r, nil
}
