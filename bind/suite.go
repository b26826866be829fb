package bind

import (
	"fmt"
	"reflect"
	"sync"
)

// FuncSuite registers plain functions as the static side of an owner type.
//
// Go has no static methods; a suite entry plays that role: a named function
// associated with an owner type and dispatched without a receiver. Several
// functions may share one name with distinct signatures, which is what
// gives the matcher genuine overload sets to pick from.
//
// The suite is append-only and safe for concurrent use. Registration
// typically happens at init time, lookups afterward.
type FuncSuite struct {
	mu      sync.RWMutex
	entries map[reflect.Type]map[string][]*suiteEntry
}

type suiteEntry struct {
	name      string
	fn        reflect.Value
	params    []reflect.Type
	returns   []reflect.Type
	variadic  bool
	hasUnsafe bool
}

// NewFuncSuite creates an empty suite.
func NewFuncSuite() *FuncSuite {
	return &FuncSuite{entries: make(map[reflect.Type]map[string][]*suiteEntry)}
}

// Register associates fn with (owner, name). A duplicate of an existing
// signature under the same name is rejected; distinct signatures accumulate
// as overloads in registration order, and that order is the tie-break the
// matcher uses.
//
// Variadic and unsafe.Pointer-bearing functions register successfully but
// are rejected at match time, so lookups can distinguish "no such function"
// from "function exists but cannot be fast-dispatched".
func (s *FuncSuite) Register(owner reflect.Type, name string, fn any) error {
	if owner == nil {
		return fmt.Errorf("bind: register %q: nil owner type", name)
	}
	if name == "" {
		return fmt.Errorf("bind: register function for %s: empty name", typeName(owner))
	}
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return fmt.Errorf("bind: register %s.%s: not a function", typeName(owner), name)
	}
	if fv.IsNil() {
		return fmt.Errorf("bind: register %s.%s: nil function", typeName(owner), name)
	}

	ft := fv.Type()
	e := &suiteEntry{
		name:      name,
		fn:        fv,
		params:    typesIn(ft, 0),
		returns:   typesOut(ft),
		variadic:  ft.IsVariadic(),
		hasUnsafe: hasUnsafe(ft, 0),
	}
	if len(e.params) > MaxArity {
		return fmt.Errorf("bind: register %s.%s: arity %d exceeds the supported maximum of %d",
			typeName(owner), name, len(e.params), MaxArity)
	}

	owner = normalizeOwner(owner)
	s.mu.Lock()
	defer s.mu.Unlock()
	byName := s.entries[owner]
	if byName == nil {
		byName = make(map[string][]*suiteEntry)
		s.entries[owner] = byName
	}
	for _, prev := range byName[name] {
		if typesEqual(prev.params, e.params) {
			return fmt.Errorf("bind: register %s.%s: duplicate signature %s",
				typeName(owner), name, paramList(e.params))
		}
	}
	byName[name] = append(byName[name], e)
	return nil
}

// candidates returns the entries registered under (owner, name) in
// registration order. The caller must not mutate the result.
func (s *FuncSuite) candidates(owner reflect.Type, name string) []*suiteEntry {
	owner = normalizeOwner(owner)
	s.mu.RLock()
	defer s.mu.RUnlock()
	byName := s.entries[owner]
	if byName == nil {
		return nil
	}
	return byName[name]
}

// Len returns the total number of registered functions.
func (s *FuncSuite) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, byName := range s.entries {
		for _, es := range byName {
			n += len(es)
		}
	}
	return n
}
