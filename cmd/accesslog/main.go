// Package main provides a small CLI for inspecting access log files.
package main

import (
	"fmt"
	"os"
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stdout)
		return 1
	}

	switch args[1] {
	case "cat":
		return catCmd(args[2:])
	case "stats":
		return statsCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'accesslog help' for usage.")
		return 1
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: accesslog <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  cat <file>      Print one summary line per decoded message")
	fmt.Fprintln(w, "  stats <file>    Print message counts by type")
	fmt.Fprintln(w, "  help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -v              Log skipped records to stderr")
}
