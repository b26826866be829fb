package main

import (
	"testing"

	"github.com/chazu/methodbind/profile"
	"github.com/chazu/methodbind/stubgen"
)

func pruneFixture() []*stubgen.PackageModel {
	return []*stubgen.PackageModel{
		{
			ImportPath: "strings",
			Name:       "strings",
			Types: []stubgen.TypeModel{
				{Name: "Builder", Methods: []stubgen.MethodModel{
					{Name: "WriteString", Arity: 1},
					{Name: "Len", Arity: 0},
				}},
				{Name: "Reader", Methods: []stubgen.MethodModel{
					{Name: "Len", Arity: 0},
				}},
			},
		},
		{
			ImportPath: "bytes",
			Name:       "bytes",
			Types: []stubgen.TypeModel{
				{Name: "Buffer", Methods: []stubgen.MethodModel{
					{Name: "Write", Arity: 1},
				}},
			},
		},
	}
}

func TestPruneColdKeepsHotMethods(t *testing.T) {
	sites := []profile.Site{
		{Owner: "*strings.Builder", Method: "WriteString", Hits: 9},
		{Owner: "*bytes.Buffer", Method: "Write", Hits: 3},
	}

	kept := pruneCold(pruneFixture(), sites)
	if len(kept) != 2 {
		t.Fatalf("kept %d packages, want 2", len(kept))
	}

	sb := kept[0]
	if sb.ImportPath != "strings" || len(sb.Types) != 1 {
		t.Fatalf("strings pruned to %d types, want just Builder", len(sb.Types))
	}
	if sb.Types[0].Name != "Builder" {
		t.Errorf("kept type = %q, want Builder", sb.Types[0].Name)
	}
	if len(sb.Types[0].Methods) != 1 || sb.Types[0].Methods[0].Name != "WriteString" {
		t.Errorf("Builder methods = %v, want [WriteString]", sb.Types[0].Methods)
	}
	if kept[1].ImportPath != "bytes" || len(kept[1].Types) != 1 {
		t.Errorf("bytes package did not survive pruning intact")
	}
}

func TestPruneColdDropsEmptiedPackages(t *testing.T) {
	sites := []profile.Site{
		{Owner: "*strings.Reader", Method: "Len", Hits: 5},
	}

	kept := pruneCold(pruneFixture(), sites)
	if len(kept) != 1 {
		t.Fatalf("kept %d packages, want 1", len(kept))
	}
	if kept[0].ImportPath != "strings" {
		t.Errorf("kept = %q, want strings", kept[0].ImportPath)
	}
	if len(kept[0].Types) != 1 || kept[0].Types[0].Name != "Reader" {
		t.Errorf("kept types = %v, want just Reader", kept[0].Types)
	}
}

func TestPruneColdNoSites(t *testing.T) {
	if kept := pruneCold(pruneFixture(), nil); len(kept) != 0 {
		t.Errorf("kept %d packages with an empty profile, want 0", len(kept))
	}
}
