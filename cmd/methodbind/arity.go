package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chazu/methodbind/manifest"
	"github.com/chazu/methodbind/stubgen"
)

// handleArityCommand processes the `methodbind arity` subcommand.
// Usage:
//
//	methodbind arity                    # max from methodbind.toml
//	methodbind arity --max 8 -o call.go
func handleArityCommand(args []string, verbose bool) {
	max := 0
	var output string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--max", "-m":
			if i+1 < len(args) {
				v, err := strconv.Atoi(args[i+1])
				if err != nil || v < 1 {
					fmt.Fprintf(os.Stderr, "Error: invalid --max value %q\n", args[i+1])
					os.Exit(1)
				}
				max = v
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --max requires a number")
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

	if max == 0 || output == "" {
		m, err := manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		if m != nil {
			if max == 0 {
				max = m.Arity.Max
			}
			if output == "" {
				output = m.ArityOutputPath()
			}
		}
	}
	if max == 0 {
		max = 15
	}
	if output == "" {
		output = "call_arity.go"
	}

	src, err := stubgen.NewGenerator().GenerateArity(max)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating call family: %v\n", err)
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
	fmt.Printf("Wrote %s (arities 0..%d)\n", output, max)
}
