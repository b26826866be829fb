package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chazu/methodbind/manifest"
	"github.com/chazu/methodbind/profile"
)

// handleProfileCommand processes the `methodbind profile` subcommand.
// Usage:
//
//	methodbind profile                  # hot call sites across all sessions
//	methodbind profile --sessions      # list recorded sessions
//	methodbind profile --session <id>  # call sites of one session
//	methodbind profile --min-hits 10   # raise the hotness threshold
func handleProfileCommand(args []string, verbose bool) {
	var dbPath string
	var sessionID string
	minHits := int64(-1)
	listSessions := false

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
		case "--sessions":
			listSessions = true
		case "--session":
			if i+1 < len(args) {
				sessionID = args[i+1]
				i++
			} else {
				fmt.Fprintln(os.Stderr, "Error: --session requires a session id")
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", args[i])
			os.Exit(1)
		}
	}

	if dbPath == "" || minHits < 0 {
		m, err := manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
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
	defer store.Close()

	if listSessions {
		sessions, err := store.Sessions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing sessions: %v\n", err)
			os.Exit(1)
		}
		if len(sessions) == 0 {
			fmt.Println("No recorded sessions")
			return
		}
		for _, s := range sessions {
			fmt.Printf("%s  %s  %s\n", s.ID, s.StartedAt.Format(time.RFC3339), s.Mode)
		}
		return
	}

	var sites []profile.Site
	if sessionID != "" {
		sites, err = store.SessionSites(sessionID)
	} else {
		sites, err = store.HotSites(minHits)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading call sites: %v\n", err)
		os.Exit(1)
	}
	if len(sites) == 0 {
		fmt.Println("No call sites recorded")
		return
	}
	for _, site := range sites {
		kind := "method"
		if site.Static {
			kind = "func"
		}
		fmt.Printf("%8d hits  %8d calls  %s  %s.%s(%s)\n",
			site.Hits, site.Calls, kind, site.Owner, site.Method, strings.Join(site.Params, ", "))
	}
}
