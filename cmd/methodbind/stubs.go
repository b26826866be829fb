package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chazu/methodbind/manifest"
	"github.com/chazu/methodbind/profile"
	"github.com/chazu/methodbind/stubgen"
)

// handleStubsCommand processes the `methodbind stubs` subcommand.
// Usage:
//
//	methodbind stubs                  # packages from methodbind.toml
//	methodbind stubs encoding/json    # single package, ad-hoc
//	methodbind stubs -o ./stubs.go    # custom output file
//	methodbind stubs --profile        # restrict to hot call sites
func handleStubsCommand(args []string, verbose bool) {
	var output string
	var pkgName string
	var packages []string
	var typeFilter []string
	var dbPath string
	useProfile := false
	minHits := int64(-1)

	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--output", "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --output requires a file path")
				os.Exit(1)
			}
		case "--package", "-p":
			if i+1 < len(args) {
				pkgName = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --package requires a name")
				os.Exit(1)
			}
		case "--profile":
			useProfile = true
		case "--db":
			if i+1 < len(args) {
				dbPath = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --db requires a file path")
				os.Exit(1)
			}
		case "--min-hits":
			if i+1 < len(args) {
				v, err := strconv.ParseInt(args[i+1], 10, 64)
				if err != nil || v < 0 {
					fmt.Fprintf(os.Stderr, "Error: invalid --min-hits value %q\n", args[i+1])
					os.Exit(1)
				}
				minHits = v
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --min-hits requires a number")
				os.Exit(1)
			}
		default:
			remaining = append(remaining, args[i])
		}
	}

	var m *manifest.Manifest
	if len(remaining) > 0 {
		packages = remaining
	} else {
		var err error
		m, err = manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		if m == nil {
			fmt.Fprintln(os.Stderr, "Error: no packages given and no methodbind.toml found")
			fmt.Fprintln(os.Stderr, "Usage: methodbind stubs [packages...], or configure [stubs] in methodbind.toml")
			os.Exit(1)
		}
		if len(m.Stubs.Packages) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no [stubs] packages configured in methodbind.toml")
			os.Exit(1)
		}
		packages = m.Stubs.Packages
		typeFilter = m.Stubs.Types
		if output == "" {
			output = m.StubsOutputPath()
		}
		if pkgName == "" {
			pkgName = m.Stubs.Package
		}
	}

	if output == "" {
		output = "stubs_gen.go"
	}
	if pkgName == "" {
		pkgName = "stubs"
	}

	models := make([]*stubgen.PackageModel, 0, len(packages))
	for _, pkg := range packages {
		model, err := stubgen.IntrospectPackage(pkg, typeFilterFor(pkg, typeFilter))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error introspecting %s: %v\n", pkg, err)
			os.Exit(1)
		}
		if verbose {
			methods := 0
			for _, t := range model.Types {
				methods += len(t.Methods)
			}
			fmt.Printf("%s: %d types, %d methods\n", model.ImportPath, len(model.Types), methods)
		}
		models = append(models, model)
	}

	if useProfile {
		if dbPath == "" || minHits < 0 {
			if m == nil {
				var err error
				m, err = manifest.FindAndLoad(".")
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
					os.Exit(1)
				}
			}
			if m != nil {
				if dbPath == "" {
					dbPath = m.ProfileDBPath()
				}
				if minHits < 0 {
					minHits = m.Profile.MinHits
				}
			}
		}
		if dbPath == "" {
			dbPath = ".methodbind/profile.db"
		}
		if minHits < 0 {
			minHits = 2
		}

		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: no profile database at %s\n", dbPath)
			os.Exit(1)
		}
		store, err := profile.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
			os.Exit(1)
		}
		sites, err := store.HotSites(minHits)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading call sites: %v\n", err)
			os.Exit(1)
		}
		models = pruneCold(models, sites)
		if len(models) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no introspected method matches a call site with %d or more hits\n", minHits)
			os.Exit(1)
		}
		if verbose {
			kept := 0
			for _, model := range models {
				for _, t := range model.Types {
					kept += len(t.Methods)
				}
			}
			fmt.Printf("profile: %d hot methods kept\n", kept)
		}
	}

	src, err := stubgen.NewGenerator().GenerateStubs(pkgName, models)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating stubs: %v\n", err)
		os.Exit(1)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}

// pruneCold drops every introspected method no recorded call site refers
// to, then drops emptied types and packages. Profile owners use the
// canonical pointer spelling, so a method of pkg.T matches under "*pkg.T";
// hot suite functions have no introspected counterpart and fall away here.
func pruneCold(models []*stubgen.PackageModel, sites []profile.Site) []*stubgen.PackageModel {
	hot := make(map[string]map[string]bool)
	for _, site := range sites {
		byMethod := hot[site.Owner]
		if byMethod == nil {
			byMethod = make(map[string]bool)
			hot[site.Owner] = byMethod
		}
		byMethod[site.Method] = true
	}

	kept := make([]*stubgen.PackageModel, 0, len(models))
	for _, model := range models {
		out := &stubgen.PackageModel{ImportPath: model.ImportPath, Name: model.Name}
		for _, t := range model.Types {
			byMethod := hot["*"+model.ImportPath+"."+t.Name]
			if byMethod == nil {
				continue
			}
			kt := stubgen.TypeModel{Name: t.Name}
			for _, method := range t.Methods {
				if byMethod[method.Name] {
					kt.Methods = append(kt.Methods, method)
				}
			}
			if len(kt.Methods) > 0 {
				out.Types = append(out.Types, kt)
			}
		}
		if len(out.Types) > 0 {
			kept = append(kept, out)
		}
	}
	return kept
}

// typeFilterFor narrows manifest type entries, which use the pkgpath.Name
// form, down to the bare names belonging to one package.
func typeFilterFor(importPath string, entries []string) map[string]bool {
	var filter map[string]bool
	for _, entry := range entries {
		i := strings.LastIndex(entry, ".")
		if i < 0 || entry[:i] != importPath {
			continue
		}
		if filter == nil {
			filter = make(map[string]bool)
		}
		filter[entry[i+1:]] = true
	}
	return filter
}
