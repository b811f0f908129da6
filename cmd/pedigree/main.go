package main

import (
	"fmt"
	"os"
)

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: pedigree <command> [flags]

commands:
  stats    parse GEDCOM file(s) and print relationship graph statistics
  query    run ancestor/descendant/immediate-family queries against a file
  export   export the normalized model and graph as JSON or to a KuzuDB
  serve    run the MCP server exposing family tools
  version  print version and exit
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "stats":
		return runStats(args[1:])
	case "query":
		return runQuery(args[1:])
	case "export":
		return runExport(args[1:])
	case "serve":
		return runServe(args[1:])
	case "version", "-version", "--version":
		fmt.Println(version)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}
