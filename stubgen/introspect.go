package stubgen

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/chazu/methodbind/bind"
)

// IntrospectPackage loads a Go package by import path and returns its stub
// surface. The typeFilter, if non-nil, restricts which exported types are
// included.
func IntrospectPackage(importPath string, typeFilter map[string]bool) (*PackageModel, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", importPath, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %s", importPath)
	}
	if len(pkgs[0].Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkgs[0].Errors)
	}

	pkg := pkgs[0]
	if pkg.Types == nil {
		return nil, fmt.Errorf("type information not available for %s", importPath)
	}

	model := &PackageModel{
		ImportPath: pkg.PkgPath,
		Name:       pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if typeFilter != nil && !typeFilter[name] {
			continue
		}
		tm := extractType(tn)
		if tm != nil && len(tm.Methods) > 0 {
			model.Types = append(model.Types, *tm)
		}
	}

	return model, nil
}

func extractType(tn *types.TypeName) *TypeModel {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	if named.TypeParams().Len() > 0 {
		// A generic type cannot be spelled without instantiating it.
		log.Debugf("skipping generic type %s", tn.Name())
		return nil
	}

	tm := &TypeModel{Name: tn.Name()}

	// The pointer method set covers value-receiver methods too.
	ptrType := types.NewPointer(named)
	mset := types.NewMethodSet(ptrType)
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		// Only include methods directly defined on this type (not inherited)
		if sel.Index() != nil && len(sel.Index()) > 1 {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if reason := stubbable(sig); reason != "" {
			log.Debugf("skipping %s.%s: %s", tn.Name(), fn.Name(), reason)
			continue
		}
		tm.Methods = append(tm.Methods, MethodModel{
			Name:  fn.Name(),
			Arity: sig.Params().Len(),
		})
	}

	return tm
}

// stubbable reports the reason a signature cannot be stubbed, or "" when it
// can. The rules mirror runtime registration, so a generated file never
// panics in init.
func stubbable(sig *types.Signature) string {
	if sig.Variadic() {
		return "variadic"
	}
	if n := sig.Params().Len(); n > bind.MaxArity {
		return fmt.Sprintf("arity %d exceeds the supported maximum of %d", n, bind.MaxArity)
	}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if isUnsafePointer(params.At(i).Type()) {
			return "unsafe.Pointer parameter"
		}
	}
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		if isUnsafePointer(results.At(i).Type()) {
			return "unsafe.Pointer result"
		}
	}
	return ""
}

func isUnsafePointer(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.UnsafePointer
}
