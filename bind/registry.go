package bind

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TypeRegistry maps canonical names back to types so a snapshot taken in
// one process can be re-resolved in another. Names follow canonicalName:
// full import path for named types, structural spelling for composites.
// Pointer, slice, array, map and channel forms derive automatically from
// registered element types.
type TypeRegistry struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
}

var builtinTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[int](),
	reflect.TypeFor[int8](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[uint](),
	reflect.TypeFor[uint8](),
	reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](),
	reflect.TypeFor[uint64](),
	reflect.TypeFor[uintptr](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[complex64](),
	reflect.TypeFor[complex128](),
	reflect.TypeFor[string](),
	reflect.TypeFor[error](),
	reflect.TypeFor[any](),
	reflect.TypeFor[time.Time](),
	reflect.TypeFor[time.Duration](),
}

// NewTypeRegistry returns a registry seeded with the predeclared types.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{byName: make(map[string]reflect.Type, len(builtinTypes))}
	for _, t := range builtinTypes {
		r.byName[canonicalName(t)] = t
	}
	return r
}

// Register publishes t under its canonical name and returns that name.
// Registering a different type under a name that is already taken fails;
// re-registering the same type is a no-op.
func (r *TypeRegistry) Register(t reflect.Type) (string, error) {
	if t == nil {
		return "", fmt.Errorf("bind: cannot register a nil type")
	}
	name := canonicalName(t)
	r.mu.Lock()
	defer r.mu.Unlock()
	if prior, ok := r.byName[name]; ok {
		if prior == t {
			return name, nil
		}
		return "", fmt.Errorf("bind: type name %q is already bound to %s", name, typeName(prior))
	}
	r.byName[name] = t
	return name, nil
}

// Lookup resolves a canonical name. Exact registrations win; otherwise the
// name is decomposed structurally, so "[]*pkg.T" resolves once pkg.T is
// registered.
func (r *TypeRegistry) Lookup(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return t, true
	}
	return r.derive(name)
}

func (r *TypeRegistry) derive(name string) (reflect.Type, bool) {
	switch {
	case strings.HasPrefix(name, "*"):
		if el, ok := r.Lookup(name[1:]); ok {
			return reflect.PointerTo(el), true
		}
	case strings.HasPrefix(name, "[]"):
		if el, ok := r.Lookup(name[2:]); ok {
			return reflect.SliceOf(el), true
		}
	case strings.HasPrefix(name, "["):
		if i := strings.IndexByte(name, ']'); i > 1 {
			n, err := strconv.Atoi(name[1:i])
			if err != nil {
				return nil, false
			}
			if el, ok := r.Lookup(name[i+1:]); ok {
				return reflect.ArrayOf(n, el), true
			}
		}
	case strings.HasPrefix(name, "map["):
		if i := matchBracket(name, 3); i > 0 {
			key, kok := r.Lookup(name[4:i])
			el, eok := r.Lookup(name[i+1:])
			if kok && eok {
				return reflect.MapOf(key, el), true
			}
		}
	case strings.HasPrefix(name, "<-chan "):
		if el, ok := r.Lookup(name[7:]); ok {
			return reflect.ChanOf(reflect.RecvDir, el), true
		}
	case strings.HasPrefix(name, "chan<- "):
		if el, ok := r.Lookup(name[7:]); ok {
			return reflect.ChanOf(reflect.SendDir, el), true
		}
	case strings.HasPrefix(name, "chan "):
		if el, ok := r.Lookup(name[5:]); ok {
			return reflect.ChanOf(reflect.BothDir, el), true
		}
	}
	return nil, false
}

// matchBracket returns the index of the ']' closing the '[' at open,
// or -1. Key spellings can nest, as in map[[2]int]string.
func matchBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Count reports how many names are registered, builtins included.
func (r *TypeRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Names lists the registered names in sorted order.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}
