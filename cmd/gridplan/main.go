package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	verbose := false
	for _, a := range os.Args[1:] {
		if a == "--verbose" || a == "-v" {
			verbose = true
		}
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			if verbose {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			} else {
				fmt.Fprintln(os.Stderr, "Run with --verbose for stack trace")
			}
			os.Exit(ExitError)
		}
	}()

	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(ExitSuccess)
}
