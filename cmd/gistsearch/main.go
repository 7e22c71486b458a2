// ABOUTME: Main entry point for the gist search service and CLI
// ABOUTME: Dispatches to the serve and search commands

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
