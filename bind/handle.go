package bind

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Handle packages one resolved entry point with one captured receiver. The
// shape is fixed at creation: record and receiver kind never change, and
// repeated calls through the typed entry points allocate nothing. Handles
// are not safe for concurrent mutation; share the cache, not the handle.
type Handle struct {
	record   *Record
	store    *receiverStore
	boxed    any
	strict   bool
	disposed bool
}

// Bind resolves name on recv's type through the default cache and returns a
// handle with the receiver captured. A pointer receiver is pinned, so calls
// observe later mutations; a value receiver is copied into handle-owned
// storage and detaches from the caller's variable. With no params the bind
// succeeds only when the name has a single candidate signature.
func Bind(recv any, name string, params ...reflect.Type) (*Handle, error) {
	return Default.Bind(recv, name, params...)
}

// BindStatic resolves a suite function registered under owner through the
// default cache. The handle carries no receiver.
func BindStatic(owner reflect.Type, name string, params ...reflect.Type) (*Handle, error) {
	return Default.BindStatic(owner, name, params...)
}

// Bind resolves and captures against this cache. See the package-level Bind.
func (c *Cache) Bind(recv any, name string, params ...reflect.Type) (*Handle, error) {
	if recv == nil {
		return nil, &InvalidReceiverError{Reason: "nil receiver"}
	}
	rv := reflect.ValueOf(recv)

	var (
		store *receiverStore
		err   error
	)
	if rv.Kind() == reflect.Pointer {
		store, err = captureReference(rv)
	} else {
		store, err = captureValue(rv.Type(), rv)
	}
	if err != nil {
		return nil, err
	}

	owner := normalizeOwner(rv.Type())
	plist, err := c.pickParams(owner, name, params)
	if err != nil {
		store.dispose()
		return nil, err
	}
	rec, err := c.Resolve(owner, name, plist)
	if err != nil {
		store.dispose()
		return nil, err
	}
	if rec.static {
		store.dispose()
		return nil, &InvalidReceiverError{Type: owner, Reason: name + " is a suite function; use BindStatic"}
	}
	return newBoundHandle(rec, store), nil
}

// BindStatic resolves a suite function against this cache.
func (c *Cache) BindStatic(owner reflect.Type, name string, params ...reflect.Type) (*Handle, error) {
	if owner == nil {
		return nil, &InvalidReceiverError{Reason: "nil owner type"}
	}
	owner = normalizeOwner(owner)
	plist, err := c.pickParams(owner, name, params)
	if err != nil {
		return nil, err
	}
	rec, err := c.Resolve(owner, name, plist)
	if err != nil {
		return nil, err
	}
	if !rec.static {
		return nil, &InvalidReceiverError{Type: owner, Reason: name + " is an instance method and needs a receiver"}
	}
	return newBoundHandle(rec, newNoneStore()), nil
}

// pickParams fills in the parameter list for a name-only bind. A single
// candidate is used as-is; several candidates with the same signature
// collapse; anything else needs explicit types.
func (c *Cache) pickParams(owner reflect.Type, name string, supplied []reflect.Type) ([]reflect.Type, error) {
	if len(supplied) > 0 {
		return supplied, nil
	}
	var sigs [][]reflect.Type
	if c.mode == AcquirePrebound {
		sigs = stubSignatures(owner, name)
	} else {
		sigs = candidateSignatures(owner, name, c.suite)
	}
	if len(sigs) == 0 {
		return nil, nil
	}
	for _, s := range sigs[1:] {
		if len(s) != len(sigs[0]) || !typesEqual(s, sigs[0]) {
			return nil, &UnsupportedSignatureError{
				Owner:  owner,
				Name:   name,
				Reason: fmt.Sprintf("%d overloads; parameter types required", len(sigs)),
			}
		}
	}
	return sigs[0], nil
}

func newBoundHandle(rec *Record, store *receiverStore) *Handle {
	h := &Handle{record: rec, store: store}
	switch {
	case rec.static:
		h.boxed = rec.boxed
	case rec.binder != nil:
		h.boxed = rec.binder(store.receiverArg().Interface())
	default:
		h.boxed = store.receiverArg().Method(rec.index).Interface()
	}
	return h
}

// Wrap packages an existing function value as a receiverless handle. The
// function's own signature becomes the handle's signature; it is never
// published in any cache.
func Wrap(fn any) (*Handle, error) {
	if fn == nil {
		return nil, &InvalidReceiverError{Reason: "nil function"}
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, &InvalidReceiverError{Type: v.Type(), Reason: "not a function"}
	}
	if v.IsNil() {
		return nil, &InvalidReceiverError{Type: v.Type(), Reason: "nil function"}
	}
	ft := v.Type()
	name := funcName(v)
	if ft.NumIn() > MaxArity {
		return nil, &UnsupportedArityError{Count: ft.NumIn()}
	}
	if ft.IsVariadic() || hasUnsafe(ft, 0) {
		return nil, &UnsupportedSignatureError{
			Owner:  ft,
			Name:   name,
			Reason: "variadic or unsafe.Pointer parameters cannot be fast-dispatched",
		}
	}
	params := typesIn(ft, 0)
	rec := &Record{
		owner:   ft,
		name:    name,
		static:  true,
		index:   -1,
		fn:      v,
		params:  params,
		returns: typesOut(ft),
		fp:      fingerprint(params),
		boxed:   fn,
	}
	return &Handle{record: rec, store: newNoneStore(), boxed: fn}, nil
}

// Record returns the resolution backing this handle. Valid after dispose;
// records outlive handles.
func (h *Handle) Record() *Record { return h.record }

// Receiver returns the captured receiver: the private copy's address for a
// value capture, the caller's pointer for a reference capture, nil for
// receiverless and disposed handles.
func (h *Handle) Receiver() any {
	if h.disposed {
		return nil
	}
	return h.store.receiver()
}

// Func returns the handle's callable as a plain function value, or nil once
// disposed. Template handles expose the declared signature, with interface
// parameter types rather than the inferred ones.
func (h *Handle) Func() any {
	if h.disposed {
		return nil
	}
	return h.boxed
}

// SetStrict toggles signature validation on the typed call entry points.
// When on, argument and result types must equal the bound signature exactly
// and mismatches report the offending position.
func (h *Handle) SetStrict(on bool) { h.strict = on }

// IsStrict reports whether strict validation is on.
func (h *Handle) IsStrict() bool { return h.strict }

// Disposed reports whether Dispose has run.
func (h *Handle) Disposed() bool { return h.disposed }

// Clone duplicates the handle. Reference captures are re-pinned into a
// fresh store over the same target; receiverless handles copy freely; value
// captures cannot be cloned because the copy's ownership is single.
func (h *Handle) Clone() (*Handle, error) {
	if h.disposed {
		return nil, ErrUseAfterDispose
	}
	switch h.store.kind {
	case receiverInline:
		return nil, ErrUnsupportedClone
	case receiverShared:
		store, err := captureReference(h.store.val)
		if err != nil {
			return nil, err
		}
		return &Handle{record: h.record, store: store, boxed: h.boxed, strict: h.strict}, nil
	default:
		return &Handle{record: h.record, store: newNoneStore(), boxed: h.boxed, strict: h.strict}, nil
	}
}

// Equal reports whether two handles target the same entry point with the
// same receiver identity. Reference captures compare by target address;
// value captures are equal only to themselves. Comparing a disposed handle
// fails.
func (h *Handle) Equal(o *Handle) (bool, error) {
	if h.disposed {
		return false, ErrUseAfterDispose
	}
	if o == nil {
		return false, nil
	}
	if o.disposed {
		return false, ErrUseAfterDispose
	}
	if h.record.fn.Pointer() != o.record.fn.Pointer() || h.record.static != o.record.static {
		return false, nil
	}
	if h.store.kind != o.store.kind {
		return false, nil
	}
	switch h.store.kind {
	case receiverShared:
		return h.store.val.Pointer() == o.store.val.Pointer(), nil
	case receiverInline:
		return h.store == o.store, nil
	default:
		return true, nil
	}
}

// Hash returns a 64-bit identity hash consistent with Equal.
func (h *Handle) Hash() (uint64, error) {
	if h.disposed {
		return 0, ErrUseAfterDispose
	}
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(h.record.fn.Pointer()))
	if h.record.static {
		buf[8] = 1
	}
	var rp uintptr
	if h.store.kind != receiverNone {
		rp = h.store.val.Pointer()
	}
	binary.LittleEndian.PutUint64(buf[9:17], uint64(rp))
	return xxhash.Sum64(buf[:]), nil
}

// Dispose releases the receiver and call target. Idempotent; every other
// operation on a disposed handle fails or returns nil.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.boxed = nil
	h.store.dispose()
}

func (h *Handle) String() string {
	if h.disposed {
		return "<disposed>"
	}
	return fmt.Sprintf("%s.%s/%d (%s)", typeName(h.record.owner), h.record.name, len(h.record.params), h.store.kind)
}

func funcName(v reflect.Value) string {
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		name := rf.Name()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		return strings.TrimSuffix(name, "-fm")
	}
	return "func"
}
