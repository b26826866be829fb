package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chazu/methodbind/bind"
	"github.com/chazu/methodbind/manifest"
	"github.com/chazu/methodbind/profile"
)

// handleWarmCommand processes the `methodbind warm` subcommand. It folds
// the hot call sites of the profile database into a snapshot that
// bind.Cache.Warm can replay at startup.
// Usage:
//
//	methodbind warm                     # paths from methodbind.toml
//	methodbind warm -o snapshot.cbor    # custom output file
func handleWarmCommand(args []string, verbose bool) {
	var dbPath string
	var output string
	minHits := int64(-1)

	for i := 0; i < len(args); i++ {
		switch args[i] {
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
		case "--output", "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --output requires a file path")
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", args[i])
			os.Exit(1)
		}
	}

	if dbPath == "" || output == "" || minHits < 0 {
		m, err := manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		if m != nil {
			if dbPath == "" {
				dbPath = m.ProfileDBPath()
			}
			if output == "" {
				output = m.SnapshotOutputPath()
			}
			if minHits < 0 {
				minHits = m.Profile.MinHits
			}
		}
	}
	if dbPath == "" {
		dbPath = ".methodbind/profile.db"
	}
	if output == "" {
		output = ".methodbind/snapshot.cbor"
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
	defer store.Close()

	sites, err := store.HotSites(minHits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading call sites: %v\n", err)
		os.Exit(1)
	}
	if len(sites) == 0 {
		fmt.Fprintf(os.Stderr, "No call sites with %d or more hits\n", minHits)
		os.Exit(1)
	}

	data, err := bind.MarshalSnapshot(profile.Snapshot(sites))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d call sites)\n", output, len(sites))
}
