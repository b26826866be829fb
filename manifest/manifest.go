// Package manifest handles methodbind.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a methodbind.toml project configuration.
type Manifest struct {
	Project  Project  `toml:"project"`
	Stubs    Stubs    `toml:"stubs"`
	Arity    Arity    `toml:"arity"`
	Profile  Profile  `toml:"profile"`
	Snapshot Snapshot `toml:"snapshot"`

	// Dir is the directory containing the methodbind.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name string `toml:"name"`
}

// Stubs configures ahead-of-time stub generation.
type Stubs struct {
	// Packages lists the import paths to scan for exported method sets.
	Packages []string `toml:"packages"`
	// Types optionally restricts generation to these types, in
	// pkgpath.Name form. Empty means every exported type with methods.
	Types   []string `toml:"types"`
	Output  string   `toml:"output"`
	Package string   `toml:"package"`
}

// Arity configures regeneration of the typed call family.
type Arity struct {
	Max    int    `toml:"max"`
	Output string `toml:"output"`
}

// Profile configures call-site profile recording.
type Profile struct {
	Database string `toml:"database"`
	MinHits  int64  `toml:"min-hits"`
}

// Snapshot configures cache snapshot output.
type Snapshot struct {
	Output string `toml:"output"`
}

// Load parses a methodbind.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "methodbind.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Stubs.Output == "" {
		m.Stubs.Output = "stubs_gen.go"
	}
	if m.Stubs.Package == "" {
		m.Stubs.Package = "stubs"
	}
	if m.Arity.Max == 0 {
		m.Arity.Max = 15
	}
	if m.Arity.Output == "" {
		m.Arity.Output = "call_arity.go"
	}
	if m.Profile.Database == "" {
		m.Profile.Database = filepath.Join(".methodbind", "profile.db")
	}
	if m.Profile.MinHits == 0 {
		m.Profile.MinHits = 2
	}
	if m.Snapshot.Output == "" {
		m.Snapshot.Output = filepath.Join(".methodbind", "snapshot.cbor")
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a methodbind.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "methodbind.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// StubsOutputPath returns the absolute path of the generated stubs file.
func (m *Manifest) StubsOutputPath() string {
	return filepath.Join(m.Dir, m.Stubs.Output)
}

// ArityOutputPath returns the absolute path of the generated call family.
func (m *Manifest) ArityOutputPath() string {
	return filepath.Join(m.Dir, m.Arity.Output)
}

// ProfileDBPath returns the absolute path of the profile database.
func (m *Manifest) ProfileDBPath() string {
	return filepath.Join(m.Dir, m.Profile.Database)
}

// SnapshotOutputPath returns the absolute path of the snapshot file.
func (m *Manifest) SnapshotOutputPath() string {
	return filepath.Join(m.Dir, m.Snapshot.Output)
}
