// ABOUTME: Main entry point for the DIP answer digest command
// ABOUTME: Runs the root command and maps fatal errors to exit status 1

package main

import (
	"fmt"
	"os"

	coreerrors "dip-digest/core/errors"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, fatalMessage(err))
		os.Exit(1)
	}
}

// fatalMessage prefixes err with the phase that failed
func fatalMessage(err error) string {
	switch {
	case coreerrors.IsConfig(err):
		return fmt.Sprintf("Configuration error: %v", err)
	case coreerrors.IsTransport(err), coreerrors.IsDecode(err):
		return fmt.Sprintf("DIP API error: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
