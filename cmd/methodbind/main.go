// Methodbind CLI - stub generation, call-family regeneration, and profile
// tooling for the bind runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: methodbind [options] <command> [args]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  stubs    Generate ahead-of-time binding stubs\n")
		fmt.Fprintf(os.Stderr, "  arity    Regenerate the typed call family\n")
		fmt.Fprintf(os.Stderr, "  profile  Inspect recorded call-site profiles\n")
		fmt.Fprintf(os.Stderr, "  warm     Build a warm snapshot from recorded profiles\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  methodbind stubs                   # packages from methodbind.toml\n")
		fmt.Fprintf(os.Stderr, "  methodbind stubs encoding/json     # ad-hoc package\n")
		fmt.Fprintf(os.Stderr, "  methodbind stubs --profile         # only methods hot in the profile\n")
		fmt.Fprintf(os.Stderr, "  methodbind arity --max 15          # regenerate the call family\n")
		fmt.Fprintf(os.Stderr, "  methodbind profile --min-hits 5    # show hot call sites\n")
		fmt.Fprintf(os.Stderr, "  methodbind warm -o snapshot.cbor   # write a warm snapshot\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "stubs":
		handleStubsCommand(rest, *verbose)
	case "arity":
		handleArityCommand(rest, *verbose)
	case "profile":
		handleProfileCommand(rest, *verbose)
	case "warm":
		handleWarmCommand(rest, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}
