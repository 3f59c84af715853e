package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/nvolker/neoprobe/internal/cli"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(neoprobe.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(neoprobe.ExitCodeForError(err))
	}
}
