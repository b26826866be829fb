package stubgen

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/imports"
)

// Generator renders Go source for stub files and the typed call family.
// Rendered output goes through the imports processor, so it comes back
// gofmt-formatted with a correct import block.
type Generator struct {
	sb     strings.Builder
	indent int
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateStubs renders one stubs file covering every model. Each stub
// registers the unbound method expression plus a typed binder, so a
// prebound cache never touches reflection on the call path.
func (g *Generator) GenerateStubs(pkgName string, models []*PackageModel) ([]byte, error) {
	g.sb.Reset()
	g.indent = 0

	sorted := make([]*PackageModel, len(models))
	copy(sorted, models)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ImportPath < sorted[j].ImportPath })

	alias := assignAliases(sorted)

	g.writeLine("// Code generated by methodbind stubs; DO NOT EDIT.")
	g.writeLine("")
	g.writeLine("package %s", pkgName)
	g.writeLine("")
	g.writeLine("import (")
	g.indent++
	g.writeLine("%q", "reflect")
	g.writeLine("")
	g.writeLine("%q", "github.com/chazu/methodbind/bind")
	for _, m := range sorted {
		if len(m.Types) == 0 {
			continue
		}
		if a := alias[m.ImportPath]; a != m.Name {
			g.writeLine("%s %q", a, m.ImportPath)
		} else {
			g.writeLine("%q", m.ImportPath)
		}
	}
	g.indent--
	g.writeLine(")")

	for _, m := range sorted {
		a := alias[m.ImportPath]
		for _, t := range m.Types {
			owner := fmt.Sprintf("*%s.%s", a, t.Name)
			g.writeLine("")
			g.writeLine("func init() {")
			g.indent++
			for _, meth := range t.Methods {
				g.writeLine("bind.MustRegisterStub(bind.Stub{")
				g.indent++
				g.writeLine("Owner:  reflect.TypeFor[%s](),", owner)
				g.writeLine("Name:   %q,", meth.Name)
				g.writeLine("Func:   (%s).%s,", owner, meth.Name)
				g.writeLine("Binder: func(recv any) any { return recv.(%s).%s },", owner, meth.Name)
				g.indent--
				g.writeLine("})")
			}
			g.indent--
			g.writeLine("}")
		}
	}

	return g.finish(pkgName + ".go")
}

// assignAliases gives each import path a unique local name, suffixing a
// counter when short package names collide.
func assignAliases(models []*PackageModel) map[string]string {
	alias := make(map[string]string, len(models))
	taken := make(map[string]string)
	for _, m := range models {
		a := m.Name
		for i := 2; ; i++ {
			prior, ok := taken[a]
			if !ok || prior == m.ImportPath {
				break
			}
			a = fmt.Sprintf("%s%d", m.Name, i)
		}
		taken[a] = m.ImportPath
		alias[m.ImportPath] = a
	}
	return alias
}

// GenerateArity renders the typed call family up to max arguments. The
// bind package's call_arity.go is this generator's output for max 15.
func (g *Generator) GenerateArity(max int) ([]byte, error) {
	if max < 0 {
		return nil, fmt.Errorf("negative arity %d", max)
	}
	g.sb.Reset()
	g.indent = 0

	g.writeLine("// Code generated by methodbind arity; DO NOT EDIT.")
	g.writeLine("")
	g.writeLine("package bind")
	g.writeLine("")
	g.writeLine("import %q", "reflect")

	for n := 0; n <= max; n++ {
		g.arityVoid(n)
		g.arityTyped(n)
	}
	return g.finish("call_arity.go")
}

func (g *Generator) arityVoid(n int) {
	g.writeLine("")
	g.writeLine("// Call%d invokes h with %s and no result.", n, argWord(n))
	if n == 0 {
		g.writeLine("func Call0(h *Handle) error {")
	} else {
		g.writeLine("func Call%d[%s any](h *Handle, %s) error {", n, typeParams(n), valueParams(n))
	}
	g.indent++
	g.writeLine("if h.disposed {")
	g.indent++
	g.writeLine("return ErrUseAfterDispose")
	g.indent--
	g.writeLine("}")
	g.writeLine("if h.strict {")
	g.indent++
	if n == 0 {
		g.writeLine("if err := h.strictCheck(nil, nil); err != nil {")
	} else {
		g.writeLine("if err := h.strictCheck([]reflect.Type{%s}, nil); err != nil {", typeFors(n))
	}
	g.indent++
	g.writeLine("return err")
	g.indent--
	g.writeLine("}")
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("if fn, ok := h.boxed.(func()); ok {")
		g.indent++
		g.writeLine("fn()")
	} else {
		g.writeLine("if fn, ok := h.boxed.(func(%s)); ok {", typeParams(n))
		g.indent++
		g.writeLine("fn(%s)", callArgs(n))
	}
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("if fn, ok := h.boxed.(func() error); ok {")
		g.indent++
		g.writeLine("return fn()")
	} else {
		g.writeLine("if fn, ok := h.boxed.(func(%s) error); ok {", typeParams(n))
		g.indent++
		g.writeLine("return fn(%s)", callArgs(n))
	}
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("out, err := h.dispatch(nil)")
	} else {
		g.writeLine("out, err := h.dispatch([]reflect.Value{%s})", valueOfs(n))
	}
	g.writeLine("if err != nil {")
	g.indent++
	g.writeLine("return err")
	g.indent--
	g.writeLine("}")
	g.writeLine("return finishVoid(out)")
	g.indent--
	g.writeLine("}")
}

func (g *Generator) arityTyped(n int) {
	g.writeLine("")
	g.writeLine("// Call%dR invokes h with %s and one typed result.", n, argWord(n))
	if n == 0 {
		g.writeLine("func Call0R[R any](h *Handle) (R, error) {")
	} else {
		g.writeLine("func Call%dR[R, %s any](h *Handle, %s) (R, error) {", n, typeParams(n), valueParams(n))
	}
	g.indent++
	g.writeLine("if h.disposed {")
	g.indent++
	g.writeLine("var zero R")
	g.writeLine("return zero, ErrUseAfterDispose")
	g.indent--
	g.writeLine("}")
	g.writeLine("if h.strict {")
	g.indent++
	if n == 0 {
		g.writeLine("if err := h.strictCheck(nil, reflect.TypeFor[R]()); err != nil {")
	} else {
		g.writeLine("if err := h.strictCheck([]reflect.Type{%s}, reflect.TypeFor[R]()); err != nil {", typeFors(n))
	}
	g.indent++
	g.writeLine("var zero R")
	g.writeLine("return zero, err")
	g.indent--
	g.writeLine("}")
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("if fn, ok := h.boxed.(func() R); ok {")
		g.indent++
		g.writeLine("return fn(), nil")
	} else {
		g.writeLine("if fn, ok := h.boxed.(func(%s) R); ok {", typeParams(n))
		g.indent++
		g.writeLine("return fn(%s), nil", callArgs(n))
	}
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("if fn, ok := h.boxed.(func() (R, error)); ok {")
		g.indent++
		g.writeLine("return fn()")
	} else {
		g.writeLine("if fn, ok := h.boxed.(func(%s) (R, error)); ok {", typeParams(n))
		g.indent++
		g.writeLine("return fn(%s)", callArgs(n))
	}
	g.indent--
	g.writeLine("}")
	if n == 0 {
		g.writeLine("out, err := h.dispatch(nil)")
	} else {
		g.writeLine("out, err := h.dispatch([]reflect.Value{%s})", valueOfs(n))
	}
	g.writeLine("if err != nil {")
	g.indent++
	g.writeLine("var zero R")
	g.writeLine("return zero, err")
	g.indent--
	g.writeLine("}")
	g.writeLine("return finishAs[R](h.record.name, out)")
	g.indent--
	g.writeLine("}")
}

func joinN(n int, f func(i int) string) string {
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = f(i)
	}
	return strings.Join(parts, ", ")
}

func typeParams(n int) string {
	return joinN(n, func(i int) string { return fmt.Sprintf("A%d", i) })
}

func valueParams(n int) string {
	return joinN(n, func(i int) string { return fmt.Sprintf("a%d A%d", i, i) })
}

func callArgs(n int) string {
	return joinN(n, func(i int) string { return fmt.Sprintf("a%d", i) })
}

func typeFors(n int) string {
	return joinN(n, func(i int) string { return fmt.Sprintf("reflect.TypeFor[A%d]()", i) })
}

func valueOfs(n int) string {
	return joinN(n, func(i int) string { return fmt.Sprintf("reflect.ValueOf(a%d)", i) })
}

func argWord(n int) string {
	switch n {
	case 0:
		return "no arguments"
	case 1:
		return "1 argument"
	default:
		return fmt.Sprintf("%d arguments", n)
	}
}

func (g *Generator) finish(filename string) ([]byte, error) {
	out, err := imports.Process(filename, []byte(g.sb.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// writeLine emits one line at the current indent.
func (g *Generator) writeLine(format string, args ...interface{}) {
	for i := 0; i < g.indent; i++ {
		g.sb.WriteString("\t")
	}
	g.sb.WriteString(fmt.Sprintf(format, args...))
	g.sb.WriteString("\n")
}
