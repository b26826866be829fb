// Package stubgen introspects Go packages and generates ahead-of-time
// binding stubs.
package stubgen

// PackageModel is the in-memory representation of a package's stub surface.
type PackageModel struct {
	ImportPath string
	Name       string // short package name (e.g., "json")
	Types      []TypeModel
}

// TypeModel represents one exported type and its stub-eligible methods.
type TypeModel struct {
	Name    string
	Methods []MethodModel
}

// MethodModel represents one method a stub will be emitted for.
type MethodModel struct {
	Name  string
	Arity int
}
