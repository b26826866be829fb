package bind

import (
	"fmt"
	"reflect"
	"strings"
)

// normalizeOwner returns the pointer form of an owner type. The method set
// of *T contains both pointer- and value-receiver methods, so cache keys
// and candidate enumeration always use the pointer form.
func normalizeOwner(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return t
	}
	return reflect.PointerTo(t)
}

// typeName formats a type for error messages, tolerating nil.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// paramList formats a parameter type list for error messages.
func paramList(params []reflect.Type) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeName(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// canonicalName returns a stable, structural name for a type, usable as a
// registry key and in snapshot entries. Named types use their full import
// path so same-named types from different packages cannot collide;
// composites are spelled out recursively.
func canonicalName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + t.Name()
		}
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + canonicalName(t.Elem())
	case reflect.Slice:
		return "[]" + canonicalName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), canonicalName(t.Elem()))
	case reflect.Map:
		return "map[" + canonicalName(t.Key()) + "]" + canonicalName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + canonicalName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + canonicalName(t.Elem())
		default:
			return "chan " + canonicalName(t.Elem())
		}
	default:
		// Func types and anonymous structs/interfaces: reflect's own
		// spelling is as canonical as these get.
		return t.String()
	}
}

// copyTypes duplicates a type list so callers cannot mutate published
// records through a retained slice.
func copyTypes(ts []reflect.Type) []reflect.Type {
	if ts == nil {
		return nil
	}
	out := make([]reflect.Type, len(ts))
	copy(out, ts)
	return out
}

// typesIn collects a func type's parameter types, skipping the first skip
// entries (the receiver slot of an unbound method func).
func typesIn(ft reflect.Type, skip int) []reflect.Type {
	n := ft.NumIn()
	if skip >= n {
		return nil
	}
	out := make([]reflect.Type, 0, n-skip)
	for i := skip; i < n; i++ {
		out = append(out, ft.In(i))
	}
	return out
}

// typesOut collects a func type's return types.
func typesOut(ft reflect.Type) []reflect.Type {
	n := ft.NumOut()
	if n == 0 {
		return nil
	}
	out := make([]reflect.Type, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ft.Out(i))
	}
	return out
}

// hasUnsafe reports whether any parameter (past skip) or return of a func
// type is an unsafe.Pointer. Such signatures are excluded from the fast
// dispatch paths.
func hasUnsafe(ft reflect.Type, skip int) bool {
	for i := skip; i < ft.NumIn(); i++ {
		if ft.In(i).Kind() == reflect.UnsafePointer {
			return true
		}
	}
	for i := 0; i < ft.NumOut(); i++ {
		if ft.Out(i).Kind() == reflect.UnsafePointer {
			return true
		}
	}
	return false
}
