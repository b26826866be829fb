package bind

import (
	"reflect"
)

// matchResult carries everything the cache needs to build a Record from a
// successful lookup.
type matchResult struct {
	owner    reflect.Type
	name     string
	static   bool
	index    int           // method-set index; -1 for suite entries and stubs
	fn       reflect.Value // unbound entry point
	binder   func(recv any) any
	params   []reflect.Type
	returns  []reflect.Type
	template bool
	bindings []TypeBinding
}

// findMethod locates the candidate of owner matching name and the ordered
// parameter list. Suite entries are searched before the owner's method set,
// each in declared order, and the first exact match wins; that ordering is
// the only tie-break, so callers wanting determinism use distinguishable
// signatures.
//
// Candidates whose name and arity match but whose signature cannot be
// fast-dispatched (variadic, unsafe.Pointer) are skipped; if only such
// candidates existed, the failure is UnsupportedSignatureError rather than
// MethodNotFoundError.
func findMethod(owner reflect.Type, name string, params []reflect.Type, suite *FuncSuite) (*matchResult, error) {
	owner = normalizeOwner(owner)
	rejected := false

	if suite != nil {
		for _, e := range suite.candidates(owner, name) {
			if len(e.params) != len(params) {
				continue
			}
			if e.variadic || e.hasUnsafe {
				rejected = true
				continue
			}
			bindings, template, ok := matchSignature(e.params, e.returns, params)
			if !ok {
				continue
			}
			return &matchResult{
				owner:    owner,
				name:     name,
				static:   true,
				index:    -1,
				fn:       e.fn,
				params:   copyTypes(params),
				returns:  copyTypes(e.returns),
				template: template,
				bindings: bindings,
			}, nil
		}
	}

	if m, ok := owner.MethodByName(name); ok {
		mt := m.Func.Type() // receiver occupies In(0)
		declared := typesIn(mt, 1)
		if len(declared) == len(params) {
			switch {
			case len(declared) > MaxArity:
				return nil, &UnsupportedArityError{Count: len(declared)}
			case mt.IsVariadic() || hasUnsafe(mt, 1):
				rejected = true
			default:
				returns := typesOut(mt)
				bindings, template, ok := matchSignature(declared, returns, params)
				if ok {
					return &matchResult{
						owner:    owner,
						name:     name,
						static:   false,
						index:    m.Index,
						fn:       m.Func,
						params:   copyTypes(params),
						returns:  returns,
						template: template,
						bindings: bindings,
					}, nil
				}
			}
		}
	}

	if rejected {
		return nil, &UnsupportedSignatureError{
			Owner:  owner,
			Name:   name,
			Reason: "variadic or unsafe.Pointer parameters cannot be fast-dispatched",
		}
	}
	return nil, &MethodNotFoundError{Owner: owner, Name: name, Params: copyTypes(params)}
}

// matchSignature decides whether a candidate's declared signature accepts
// the supplied parameter list, running inference when the candidate is a
// template. Non-template candidates require exact positional equality, with
// no widening and no interface satisfaction at match time.
func matchSignature(declared, returns, supplied []reflect.Type) (bindings []TypeBinding, template, ok bool) {
	if len(declared) != len(supplied) {
		return nil, false, false
	}
	if hasTypeVars(declared) {
		b, ok := infer(declared, supplied, returns)
		return b, true, ok
	}
	return nil, false, typesEqual(declared, supplied)
}

// candidateSignatures lists the parameter lists available under
// (owner, name): suite overloads in registration order, then the instance
// method if one exists. Name-only binds use this to detect the unambiguous
// single-candidate case.
func candidateSignatures(owner reflect.Type, name string, suite *FuncSuite) [][]reflect.Type {
	owner = normalizeOwner(owner)
	var sigs [][]reflect.Type
	if suite != nil {
		for _, e := range suite.candidates(owner, name) {
			sigs = append(sigs, copyTypes(e.params))
		}
	}
	if m, ok := owner.MethodByName(name); ok {
		sigs = append(sigs, typesIn(m.Func.Type(), 1))
	}
	return sigs
}
