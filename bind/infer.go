package bind

import "reflect"

// Type-variable inference.
//
// A named, non-empty interface parameter acts as a type variable: its first
// positional occurrence binds the caller-supplied concrete type, later
// occurrences must bind to the identical type, and the bound type must
// implement the interface. The empty interface is a plain wildcard, not a
// variable. A variable that appears only in the return types can never be
// bound from arguments, so candidates carrying one fail inference.

// TypeBinding records one inferred type-variable assignment.
type TypeBinding struct {
	Var   reflect.Type // the named interface parameter acting as a variable
	Bound reflect.Type // the concrete type inferred for it
}

// isTypeVar reports whether a declared parameter type acts as a variable.
func isTypeVar(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.NumMethod() > 0 && t.Name() != ""
}

// isWildcard reports whether a declared parameter accepts any type.
func isWildcard(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.NumMethod() == 0
}

// hasTypeVars reports whether a declared parameter list contains at least
// one variable or wildcard, making the candidate a template.
func hasTypeVars(declared []reflect.Type) bool {
	for _, d := range declared {
		if isTypeVar(d) || isWildcard(d) {
			return true
		}
	}
	return false
}

// infer matches supplied concrete types against a template's declared
// parameters, producing bindings in first-occurrence order. It fails when a
// variable would bind inconsistently, a binding does not satisfy its
// interface, a concrete position differs, or a return-only variable remains
// unbound.
func infer(declared, supplied, returns []reflect.Type) ([]TypeBinding, bool) {
	if len(declared) != len(supplied) {
		return nil, false
	}
	var bindings []TypeBinding
	lookup := func(v reflect.Type) (reflect.Type, bool) {
		for _, b := range bindings {
			if b.Var == v {
				return b.Bound, true
			}
		}
		return nil, false
	}

	for i, d := range declared {
		sup := supplied[i]
		switch {
		case isTypeVar(d):
			if bound, ok := lookup(d); ok {
				if bound != sup {
					return nil, false
				}
				continue
			}
			if sup == nil || !sup.Implements(d) {
				return nil, false
			}
			bindings = append(bindings, TypeBinding{Var: d, Bound: sup})
		case isWildcard(d):
			// Accepts any supplied type.
		default:
			if d != sup {
				return nil, false
			}
		}
	}

	for _, r := range returns {
		if isTypeVar(r) {
			if _, ok := lookup(r); !ok {
				return nil, false
			}
		}
	}
	return bindings, true
}
