package bind

import (
	"fmt"
	"reflect"
	"sync"
)

// Stub is one ahead-of-time prepared entry point, registered by generated
// code so a cache in AcquirePrebound mode never scans a method set at
// runtime. Func carries the unbound form: for methods the receiver is the
// first parameter, for suite functions there is none. Binder, when set,
// turns a receiver into the receiver-bound call target without reflection,
// keeping prebound handles on the typed fast path.
type Stub struct {
	Owner  reflect.Type
	Name   string
	Func   any
	Binder func(recv any) any
	Static bool
}

type preparedStub struct {
	fn      reflect.Value
	binder  func(recv any) any
	params  []reflect.Type
	returns []reflect.Type
	static  bool
}

type stubTable struct {
	mu      sync.RWMutex
	entries map[reflect.Type]map[string][]*preparedStub
}

var stubs = &stubTable{entries: make(map[reflect.Type]map[string][]*preparedStub)}

// RegisterStub validates and publishes a stub into the process-wide table.
// Stubs must be fast-dispatchable, so variadic and unsafe.Pointer
// signatures are rejected here rather than at lookup time. Registering the
// same (owner, name, signature) twice fails.
func RegisterStub(s Stub) error {
	if s.Owner == nil {
		return fmt.Errorf("bind: stub %q: nil owner type", s.Name)
	}
	if s.Name == "" {
		return fmt.Errorf("bind: stub for %s: empty name", typeName(s.Owner))
	}
	owner := normalizeOwner(s.Owner)
	if s.Func == nil {
		return fmt.Errorf("bind: stub %s.%s: nil func", typeName(owner), s.Name)
	}
	fv := reflect.ValueOf(s.Func)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return fmt.Errorf("bind: stub %s.%s: func is %s, not a function", typeName(owner), s.Name, typeName(fv.Type()))
	}
	ft := fv.Type()

	skip := 0
	if !s.Static {
		if ft.NumIn() == 0 || ft.In(0) != owner {
			return fmt.Errorf("bind: stub %s.%s: unbound method must take %s first", typeName(owner), s.Name, typeName(owner))
		}
		if s.Binder == nil {
			return fmt.Errorf("bind: stub %s.%s: method stubs need a binder", typeName(owner), s.Name)
		}
		skip = 1
	}
	params := typesIn(ft, skip)
	if len(params) > MaxArity {
		return fmt.Errorf("bind: stub %s.%s: %w", typeName(owner), s.Name, &UnsupportedArityError{Count: len(params)})
	}
	if ft.IsVariadic() || hasUnsafe(ft, skip) {
		return fmt.Errorf("bind: stub %s.%s: variadic or unsafe.Pointer parameters cannot be fast-dispatched", typeName(owner), s.Name)
	}

	ps := &preparedStub{
		fn:      fv,
		binder:  s.Binder,
		params:  params,
		returns: typesOut(ft),
		static:  s.Static,
	}

	stubs.mu.Lock()
	defer stubs.mu.Unlock()
	byName := stubs.entries[owner]
	if byName == nil {
		byName = make(map[string][]*preparedStub)
		stubs.entries[owner] = byName
	}
	for _, prior := range byName[s.Name] {
		if len(prior.params) == len(params) && typesEqual(prior.params, params) {
			return fmt.Errorf("bind: stub %s.%s%s already registered", typeName(owner), s.Name, paramList(params))
		}
	}
	byName[s.Name] = append(byName[s.Name], ps)
	return nil
}

// MustRegisterStub is RegisterStub for generated init functions.
func MustRegisterStub(s Stub) {
	if err := RegisterStub(s); err != nil {
		panic(err)
	}
}

// StubCount reports how many stubs are registered process-wide.
func StubCount() int {
	stubs.mu.RLock()
	defer stubs.mu.RUnlock()
	n := 0
	for _, byName := range stubs.entries {
		for _, list := range byName {
			n += len(list)
		}
	}
	return n
}

// findStub resolves strictly from the stub table. Matching is exact; stub
// signatures are concrete, so no inference runs in prebound mode.
func findStub(owner reflect.Type, name string, params []reflect.Type) (*matchResult, error) {
	owner = normalizeOwner(owner)
	stubs.mu.RLock()
	list := stubs.entries[owner][name]
	stubs.mu.RUnlock()
	for _, ps := range list {
		if len(ps.params) != len(params) || !typesEqual(ps.params, params) {
			continue
		}
		return &matchResult{
			owner:   owner,
			name:    name,
			static:  ps.static,
			index:   -1,
			fn:      ps.fn,
			binder:  ps.binder,
			params:  copyTypes(params),
			returns: copyTypes(ps.returns),
		}, nil
	}
	return nil, &MethodNotFoundError{Owner: owner, Name: name, Params: copyTypes(params)}
}

// stubSignatures lists the registered parameter lists under (owner, name)
// in registration order.
func stubSignatures(owner reflect.Type, name string) [][]reflect.Type {
	owner = normalizeOwner(owner)
	stubs.mu.RLock()
	list := stubs.entries[owner][name]
	stubs.mu.RUnlock()
	var sigs [][]reflect.Type
	for _, ps := range list {
		sigs = append(sigs, copyTypes(ps.params))
	}
	return sigs
}
